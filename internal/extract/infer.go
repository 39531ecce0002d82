package extract

import (
	"regexp"
	"strings"
)

// Case-insensitive keyword classifiers over title+description text.
// First match wins, so the buckets are ordered most to least specific.

func InferExperienceLevel(title, description string) string {
	text := strings.ToLower(title + " " + description)
	switch {
	case containsAny(text, "intern", "internship", "co-op", "co op", "coop"):
		return "Intern"
	case containsAny(text, "new grad", "new-grad", "graduate program"):
		return "New Grad"
	case containsAny(text, "entry level", "entry-level", "junior", "jr."):
		return "Entry"
	case containsAny(text, "senior", "sr.", "staff", "principal", "lead"):
		return "Senior+"
	}
	return ""
}

func InferJobType(text string) string {
	t := strings.ToLower(text)
	switch {
	case containsAny(t, "full time", "full-time", "fulltime"):
		return "Full-time"
	case containsAny(t, "part time", "part-time", "parttime"):
		return "Part-time"
	case strings.Contains(t, "contract"):
		return "Contract"
	case containsAny(t, "intern", "internship"):
		return "Internship"
	case strings.Contains(t, "temporary"):
		return "Temporary"
	}
	return ""
}

// Matches "$80,000", "$40-50/hr", "120k" and similar. Best effort only: it
// will also bite on phone numbers and years in ambiguous text.
var salaryPattern = regexp.MustCompile(
	`\$?\s?\d{2,3}(?:,\d{3})?(?:\s*[-–]\s*\$?\d{2,3}(?:,\d{3})?)?\s*(?:k|K|/yr|per year|per hour|/hr|hour|annually)?`,
)

func ExtractSalary(text string) string {
	return strings.TrimSpace(salaryPattern.FindString(text))
}

func containsAny(text string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
