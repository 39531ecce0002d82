package domain

// JobRecord is the canonical shape of one saved posting. Every field is a
// string and always present; posted_date/deadline are "" or YYYY-MM-DD.
// Records are built fresh per URL submission and not mutated after
// normalization — corrections produce a new value.
type JobRecord struct {
	Source          string `json:"source"`
	URL             string `json:"url"`
	Company         string `json:"company"`
	Title           string `json:"title"`
	Location        string `json:"location"`
	Salary          string `json:"salary"`
	PostedDate      string `json:"posted_date"`
	Deadline        string `json:"deadline"`
	JobType         string `json:"job_type"`
	ExperienceLevel string `json:"experience_level"`
	Notes           string `json:"notes"`
	Status          string `json:"status"`
}

// Value returns the field named by one of Schema.Fields.
func (r JobRecord) Value(field string) string {
	switch field {
	case "source":
		return r.Source
	case "url":
		return r.URL
	case "company":
		return r.Company
	case "title":
		return r.Title
	case "location":
		return r.Location
	case "salary":
		return r.Salary
	case "posted_date":
		return r.PostedDate
	case "deadline":
		return r.Deadline
	case "job_type":
		return r.JobType
	case "experience_level":
		return r.ExperienceLevel
	case "notes":
		return r.Notes
	case "status":
		return r.Status
	}
	return ""
}

// SetValue assigns the field named by one of Schema.Fields. Unknown field
// names are ignored so partial results can never widen the record.
func (r *JobRecord) SetValue(field, v string) {
	switch field {
	case "source":
		r.Source = v
	case "url":
		r.URL = v
	case "company":
		r.Company = v
	case "title":
		r.Title = v
	case "location":
		r.Location = v
	case "salary":
		r.Salary = v
	case "posted_date":
		r.PostedDate = v
	case "deadline":
		r.Deadline = v
	case "job_type":
		r.JobType = v
	case "experience_level":
		r.ExperienceLevel = v
	case "notes":
		r.Notes = v
	case "status":
		r.Status = v
	}
}

// Values lists the record in Schema.Fields order, for inserts and CSV rows.
func (r JobRecord) Values(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, r.Value(f))
	}
	return out
}
