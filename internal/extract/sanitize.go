package extract

import (
	"fmt"
	"regexp"
	"strings"

	"jobtrack-engine/internal/domain"
)

// Limits caps free-text fields before persistence.
type Limits struct {
	NotesMax int // notes
	FieldMax int // title, company, location, salary, job_type, experience_level, status
}

func DefaultLimits() Limits {
	return Limits{NotesMax: 5000, FieldMax: 500}
}

// Tab/newline survive; the rest of C0 gets stripped before the record hits disk.
var controlChars = regexp.MustCompile("[\x00-\x08\x0B\x0C\x0E-\x1F]")

var cappedShortFields = map[string]bool{
	"title":            true,
	"company":          true,
	"location":         true,
	"salary":           true,
	"job_type":         true,
	"experience_level": true,
	"status":           true,
}

// Sanitize strips control characters from every field and enforces length
// caps on the free-text ones.
func Sanitize(rec domain.JobRecord, schema domain.Schema, lim Limits) domain.JobRecord {
	if lim.NotesMax <= 0 {
		lim.NotesMax = DefaultLimits().NotesMax
	}
	if lim.FieldMax <= 0 {
		lim.FieldMax = DefaultLimits().FieldMax
	}
	for _, f := range schema.Fields {
		s := controlChars.ReplaceAllString(rec.Value(f), "")
		if f == "notes" && len(s) > lim.NotesMax {
			s = s[:lim.NotesMax]
		}
		if cappedShortFields[f] && len(s) > lim.FieldMax {
			s = s[:lim.FieldMax]
		}
		rec.SetValue(f, strings.TrimSpace(s))
	}
	return rec
}

// ValidateRecord checks the fields persistence semantics depend on. Problems
// come back as warnings: the record is still saved with best-effort fields.
func ValidateRecord(rec domain.JobRecord) []string {
	var warnings []string
	for _, f := range []string{"source", "url", "status"} {
		if rec.Value(f) == "" {
			warnings = append(warnings, fmt.Sprintf("field %s is empty", f))
		}
	}
	return warnings
}
