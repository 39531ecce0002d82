package extract

import (
	"regexp"
	"strings"
	"time"

	"jobtrack-engine/internal/domain"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Calendar-text forms a user might paste by hand.
var looseDateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
}

// Normalize trims every canonical field, defaults the status, and
// re-normalizes the date fields. It is a fixed point: normalizing its own
// output changes nothing.
func Normalize(rec domain.JobRecord, schema domain.Schema) domain.JobRecord {
	for _, f := range schema.Fields {
		rec.SetValue(f, strings.TrimSpace(rec.Value(f)))
	}
	if rec.Status == "" {
		rec.Status = schema.DefaultStatus
	}
	rec.PostedDate = NormalizeDate(rec.PostedDate)
	rec.Deadline = NormalizeDate(rec.Deadline)
	return rec
}

// NormalizeDate passes YYYY-MM-DD through unchanged, converts the supported
// calendar-text forms, and turns everything else into "".
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if isoDateRe.MatchString(s) {
		return s
	}
	for _, layout := range looseDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
