package extract

import (
	"strconv"
	"strings"
	"time"
)

// Partial is what one extraction strategy yields. Missing fields stay empty;
// the orchestrator decides whether the result is usable.
type Partial struct {
	Title      string
	Company    string
	Location   string
	Salary     string
	PostedDate string
	Deadline   string
	JobType    string
}

// HasIdentity reports whether the partial carries enough to identify a
// posting. Below this bar the next fallback strategy runs.
func (p Partial) HasIdentity() bool {
	return p.Title != "" || p.Company != ""
}

// MapPosting converts a decoded JobPosting object into a Partial, tolerating
// the shape variants boards actually emit: organizations as object or string,
// locations as list or nested address, salaries as nested range objects.
func MapPosting(obj map[string]any) Partial {
	if obj == nil {
		return Partial{}
	}
	return Partial{
		Title:      asText(obj["title"]),
		Company:    mapCompany(obj),
		Location:   mapLocation(obj),
		Salary:     mapSalary(obj),
		PostedDate: isoDate(obj["datePosted"]),
		Deadline:   isoDate(obj["validThrough"]),
		JobType:    asText(obj["employmentType"]),
	}
}

// asText is the shared coercion for JSON-LD values: numbers render as their
// string form, strings are trimmed, lists comma-join their scalar elements,
// anything else becomes "".
func asText(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		var parts []string
		for _, item := range t {
			switch e := item.(type) {
			case string:
				if s := strings.TrimSpace(e); s != "" {
					parts = append(parts, s)
				}
			case float64:
				parts = append(parts, strconv.FormatFloat(e, 'f', -1, 64))
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

func mapCompany(obj map[string]any) string {
	if org, ok := obj["hiringOrganization"].(map[string]any); ok {
		return asText(org["name"])
	}
	return asText(obj["hiringOrganization"])
}

func mapLocation(obj map[string]any) string {
	loc := obj["jobLocation"]
	if list, ok := loc.([]any); ok && len(list) > 0 {
		loc = list[0]
	}
	if place, ok := loc.(map[string]any); ok {
		if addr, ok := place["address"].(map[string]any); ok {
			var parts []string
			for _, key := range []string{"addressLocality", "addressRegion", "addressCountry"} {
				if p := asText(addr[key]); p != "" {
					parts = append(parts, p)
				}
			}
			return strings.Join(parts, ", ")
		}
	}
	return asText(loc)
}

func mapSalary(obj map[string]any) string {
	pay, ok := obj["baseSalary"].(map[string]any)
	if !ok {
		return asText(obj["baseSalary"])
	}
	if val, ok := pay["value"].(map[string]any); ok {
		amount := asText(val["value"])
		if amount == "" {
			amount = asText(val["minValue"])
		}
		if amount == "" {
			amount = asText(val["maxValue"])
		}
		if amount != "" {
			currency := asText(val["currency"])
			if currency == "" {
				currency = asText(pay["currency"])
			}
			unit := asText(val["unitText"])
			return strings.TrimSpace(currency + amount + " " + unit)
		}
	}
	if currency := asText(pay["currency"]); currency != "" {
		return currency
	}
	return asText(pay)
}

var isoDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// isoDate reduces an ISO-8601 timestamp (trailing Z allowed) to its calendar
// date. Anything unparseable yields "".
func isoDate(v any) string {
	s := asText(v)
	if s == "" {
		return ""
	}
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
