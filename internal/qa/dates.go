package qa

import "regexp"

type dateRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// dateRules recognise date expressions in message text. Order matters when
// extracting: the first rule that matches anywhere in the text wins, even if a
// later rule would match earlier in the text.
var dateRules = []dateRule{
	{
		Name: "month_day",
		Pattern: regexp.MustCompile(`(?i)\b(?:Jan|January|Feb|February|Mar|March|Apr|April|May|Jun|June|Jul|July|` +
			`Aug|August|Sep|September|Oct|October|Nov|November|Dec|December)\s+\d{1,2}(?:,\s*\d{4})?`),
	},
	{Name: "iso", Pattern: regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)},
	{Name: "slash", Pattern: regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)},
	{Name: "relative", Pattern: regexp.MustCompile(`(?i)\b(?:next week|next month|this weekend|tomorrow|day after tomorrow)\b`)},
}

// FindDate returns the first date expression in text, verbatim.
func FindDate(text string) (string, bool) {
	for _, rule := range dateRules {
		if m := rule.Pattern.FindString(text); m != "" {
			return m, true
		}
	}
	return "", false
}

// HasDate reports whether text contains any date expression.
func HasDate(text string) bool {
	for _, rule := range dateRules {
		if rule.Pattern.MatchString(text) {
			return true
		}
	}
	return false
}
