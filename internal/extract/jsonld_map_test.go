package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustObj(t *testing.T, raw string) map[string]any {
	t.Helper()
	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &obj))
	return obj
}

func TestMapPostingBasics(t *testing.T) {
	obj := mustObj(t, `{
		"@type": "JobPosting",
		"title": "Engineer",
		"hiringOrganization": {"name": "Acme"},
		"datePosted": "2024-01-05T00:00:00Z"
	}`)

	p := MapPosting(obj)
	assert.Equal(t, "Engineer", p.Title)
	assert.Equal(t, "Acme", p.Company)
	assert.Equal(t, "2024-01-05", p.PostedDate)
}

func TestMapPostingCompanyVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"organization object", `{"hiringOrganization":{"name":"Acme Corp"}}`, "Acme Corp"},
		{"plain string", `{"hiringOrganization":"Globex"}`, "Globex"},
		{"missing", `{}`, ""},
		{"object without name", `{"hiringOrganization":{"url":"https://acme.test"}}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapPosting(mustObj(t, tt.raw)).Company)
		})
	}
}

func TestMapPostingLocationVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			"list with nested address",
			`{"jobLocation":[{"address":{"addressLocality":"Austin","addressRegion":"TX","addressCountry":"US"}}]}`,
			"Austin, TX, US",
		},
		{
			"partial address",
			`{"jobLocation":{"address":{"addressLocality":"Berlin","addressCountry":"DE"}}}`,
			"Berlin, DE",
		},
		{"plain string", `{"jobLocation":"Remote"}`, "Remote"},
		{"string list", `{"jobLocation":["NYC","Boston"]}`, "NYC"},
		{"object without address", `{"jobLocation":{"name":"HQ"}}`, ""},
		{"missing", `{}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapPosting(mustObj(t, tt.raw)).Location)
		})
	}
}

func TestMapPostingSalaryVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			"nested range with currency on value",
			`{"baseSalary":{"currency":"USD","value":{"minValue":120000,"maxValue":150000,"unitText":"YEAR"}}}`,
			"USD120000 YEAR",
		},
		{
			"exact value, currency on outer object",
			`{"baseSalary":{"currency":"$","value":{"value":95000}}}`,
			"$95000",
		},
		{
			"currency only",
			`{"baseSalary":{"currency":"USD"}}`,
			"USD",
		},
		{"scalar salary", `{"baseSalary":"Competitive"}`, "Competitive"},
		{"missing", `{}`, ""},
		{"object with nothing usable", `{"baseSalary":{"value":{}}}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapPosting(mustObj(t, tt.raw)).Salary)
		})
	}
}

func TestMapPostingDates(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantPosted   string
		wantDeadline string
	}{
		{
			"trailing Z",
			`{"datePosted":"2024-01-05T00:00:00Z","validThrough":"2024-02-01T23:59:00Z"}`,
			"2024-01-05", "2024-02-01",
		},
		{
			"offset and bare date",
			`{"datePosted":"2024-03-10T08:00:00+02:00","validThrough":"2024-04-01"}`,
			"2024-03-10", "2024-04-01",
		},
		{"unparseable", `{"datePosted":"soon","validThrough":42}`, "", ""},
		{"missing", `{}`, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MapPosting(mustObj(t, tt.raw))
			assert.Equal(t, tt.wantPosted, p.PostedDate)
			assert.Equal(t, tt.wantDeadline, p.Deadline)
		})
	}
}

func TestMapPostingNilObject(t *testing.T) {
	assert.Equal(t, Partial{}, MapPosting(nil))
}

func TestAsText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string trimmed", "  hello  ", "hello"},
		{"integer-valued number", float64(100000), "100000"},
		{"fractional number", 42.5, "42.5"},
		{"mixed list", []any{" a ", float64(3), map[string]any{"x": 1}, "b"}, "a, 3, b"},
		{"object", map[string]any{"k": "v"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, asText(tt.in))
		})
	}
}
