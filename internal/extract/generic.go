package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractGeneric mines the title tag and social-preview meta tags when no
// structured data is present. Many boards render titles as
// "Backend Engineer - Acme Corp", so with no og:site_name the last " - "
// segment is treated as the company. That heuristic misfires on titles like
// "Senior Engineer - Platform Team"; accepted as-is.
func ExtractGeneric(doc *goquery.Document) Partial {
	var p Partial
	if doc == nil {
		return p
	}

	title := cleanText(doc.Find("title").First().Text())
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if t := cleanText(og); t != "" {
			title = t
		}
	}

	company := ""
	if site, ok := doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok {
		company = cleanText(site)
	}
	if company == "" && strings.Contains(title, " - ") {
		parts := strings.Split(title, " - ")
		company = strings.TrimSpace(parts[len(parts)-1])
		title = strings.TrimSpace(strings.Join(parts[:len(parts)-1], " - "))
	}

	p.Title = title
	p.Company = company

	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		p.Salary = ExtractSalary(desc)
		p.JobType = InferJobType(desc)
	}
	return p
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
