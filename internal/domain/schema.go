package domain

// Schema carries the canonical field list and the table DDL so the
// normalizer and the store share one definition instead of ambient
// constants.
type Schema struct {
	Fields        []string
	DefaultStatus string
	Statuses      []string
	CreateTable   string
}

func DefaultSchema() Schema {
	return Schema{
		Fields: []string{
			"source", "url", "company", "title", "location", "salary",
			"posted_date", "deadline", "job_type", "experience_level",
			"notes", "status",
		},
		DefaultStatus: "Saved",
		Statuses:      []string{"Saved", "Applied", "Interview", "Offer", "Rejected"},
		CreateTable: `
CREATE TABLE IF NOT EXISTS jobs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  source TEXT NOT NULL DEFAULT '',
  url TEXT NOT NULL UNIQUE,
  company TEXT NOT NULL DEFAULT '',
  title TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  salary TEXT NOT NULL DEFAULT '',
  posted_date TEXT NOT NULL DEFAULT '',
  deadline TEXT NOT NULL DEFAULT '',
  job_type TEXT NOT NULL DEFAULT '',
  experience_level TEXT NOT NULL DEFAULT '',
  notes TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'Saved',
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	}
}
