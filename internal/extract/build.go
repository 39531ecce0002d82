package extract

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/singleflight"

	"jobtrack-engine/internal/domain"
)

// A strategy turns a parsed document into a Partial. Strategies run in order
// until one yields a usable title-or-company pair.
type strategy struct {
	name string
	run  func(*goquery.Document) Partial
}

var strategies = []strategy{
	{"jsonld", fromStructuredData},
	{"generic", ExtractGeneric},
}

func fromStructuredData(doc *goquery.Document) Partial {
	if obj, ok := ExtractJobPosting(doc); ok {
		return MapPosting(obj)
	}
	return Partial{}
}

// Builder runs the whole URL-to-record pipeline. Concurrent submissions of
// the same canonical URL share one fetch via singleflight.
type Builder struct {
	fetcher *Fetcher
	schema  domain.Schema
	group   singleflight.Group
}

func NewBuilder(f *Fetcher, schema domain.Schema) *Builder {
	return &Builder{fetcher: f, schema: schema}
}

// BuildJobFromURL always returns a normalized record; a failed fetch yields
// one with empty fields and an explanatory note instead of an error.
func (b *Builder) BuildJobFromURL(ctx context.Context, rawURL string) domain.JobRecord {
	key := CanonicalizeURL(rawURL)
	v, _, _ := b.group.Do(key, func() (any, error) {
		return b.build(ctx, rawURL), nil
	})
	return v.(domain.JobRecord)
}

func (b *Builder) build(ctx context.Context, rawURL string) domain.JobRecord {
	rec := domain.JobRecord{
		Source: "URL",
		URL:    CanonicalizeURL(rawURL),
		Status: b.schema.DefaultStatus,
	}

	body, finalURL, err := b.fetcher.Fetch(ctx, rawURL)
	if final := CanonicalizeURL(finalURL); final != "" {
		rec.URL = final
	}
	if err != nil {
		rec.Notes = "Fetch error: " + err.Error()
		return Normalize(rec, b.schema)
	}

	var parsed Partial
	if doc, derr := goquery.NewDocumentFromReader(strings.NewReader(body)); derr == nil {
		for _, s := range strategies {
			parsed = s.run(doc)
			if parsed.HasIdentity() {
				break
			}
		}
	}

	rec.Title = parsed.Title
	rec.Company = parsed.Company
	rec.Location = parsed.Location
	rec.Salary = parsed.Salary
	rec.PostedDate = parsed.PostedDate
	rec.Deadline = parsed.Deadline
	rec.JobType = parsed.JobType

	rec.ExperienceLevel = InferExperienceLevel(rec.Title, "")
	if rec.JobType == "" {
		rec.JobType = InferJobType(rec.Title)
	}
	return Normalize(rec, b.schema)
}
