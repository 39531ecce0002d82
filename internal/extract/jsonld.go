package extract

import (
	"encoding/json"

	"github.com/PuerkitoBio/goquery"
)

// ExtractJobPosting scans the document's application/ld+json script blocks
// and returns the first schema.org JobPosting object in document order.
// Malformed JSON in one block does not stop the scan. A block may hold a
// single object, an array of objects, or a @graph container.
func ExtractJobPosting(doc *goquery.Document) (map[string]any, bool) {
	if doc == nil {
		return nil, false
	}

	var found map[string]any
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var payload any
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return true // skip this block, keep scanning
		}
		if obj := findJobPosting(payload); obj != nil {
			found = obj
			return false
		}
		return true
	})
	return found, found != nil
}

func findJobPosting(payload any) map[string]any {
	switch t := payload.(type) {
	case map[string]any:
		if isJobPostingType(t["@type"]) {
			return t
		}
		if graph, ok := t["@graph"].([]any); ok {
			for _, item := range graph {
				if obj, ok := item.(map[string]any); ok && isJobPostingType(obj["@type"]) {
					return obj
				}
			}
		}
	case []any:
		for _, item := range t {
			if obj := findJobPosting(item); obj != nil {
				return obj
			}
		}
	}
	return nil
}

// @type may be a plain string or a list of type names.
func isJobPostingType(t any) bool {
	switch v := t.(type) {
	case string:
		return v == "JobPosting"
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == "JobPosting" {
				return true
			}
		}
	}
	return false
}
