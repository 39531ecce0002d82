package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobtrack-engine/internal/domain"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"iso passthrough", "2024-01-05", "2024-01-05"},
		{"abbreviated month", "Jan 5, 2024", "2024-01-05"},
		{"full month", "January 15, 2024", "2024-01-15"},
		{"padded day", "Feb 02, 2023", "2023-02-02"},
		{"whitespace", "  2024-06-30  ", "2024-06-30"},
		{"unparseable", "next Tuesday", ""},
		{"slashes", "15/01/2024", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.in))
		})
	}
}

func TestNormalizeTrimsAndDefaults(t *testing.T) {
	schema := domain.DefaultSchema()
	rec := domain.JobRecord{
		Source:     "URL",
		URL:        "  https://example.com/job  ",
		Company:    "  Acme  ",
		Title:      "\tEngineer\n",
		PostedDate: "Jan 5, 2024",
		Deadline:   "garbage",
	}

	got := Normalize(rec, schema)

	assert.Equal(t, "https://example.com/job", got.URL)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "Engineer", got.Title)
	assert.Equal(t, "2024-01-05", got.PostedDate)
	assert.Equal(t, "", got.Deadline)
	assert.Equal(t, "Saved", got.Status, "empty status takes the schema default")
}

func TestNormalizeIsFixedPoint(t *testing.T) {
	schema := domain.DefaultSchema()
	rec := domain.JobRecord{
		Source:     " URL ",
		URL:        " https://example.com ",
		Title:      " Staff Engineer ",
		PostedDate: "January 15, 2024",
		Deadline:   "not a date",
		Notes:      "  multi\nline  ",
	}

	once := Normalize(rec, schema)
	twice := Normalize(once, schema)
	assert.Equal(t, once, twice)
}

func TestNormalizeCoversCanonicalFields(t *testing.T) {
	schema := domain.DefaultSchema()
	got := Normalize(domain.JobRecord{}, schema)

	vals := got.Values(schema.Fields)
	assert.Len(t, vals, len(schema.Fields))
	for i, f := range schema.Fields {
		if f == "status" {
			assert.Equal(t, "Saved", vals[i])
			continue
		}
		assert.Equal(t, "", vals[i], "field %s defaults to empty string", f)
	}
}
