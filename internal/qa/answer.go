package qa

import (
	"regexp"
	"strings"
	"unicode"
)

// Fixed answers. Callers may match on these, so they must not change.
const (
	NoRelevantInfoAnswer = "I couldn't find any relevant information."
	NoDateAnswer         = "I couldn't find any date or time for that trip in the messages."
	NoNumberAnswer       = "I couldn't find any number related to that question."
	NoRestaurantsAnswer  = "I couldn't find any information about their favorite restaurants in the messages."
	NoInferenceAnswer    = "I couldn't infer an answer from the messages."
)

// snippetLimit bounds fallback answers, including the trailing ellipsis.
const snippetLimit = 180

const ellipsis = "..."

var (
	numberPattern        = regexp.MustCompile(`\b\d+\b`)
	restaurantListPrefix = regexp.MustCompile(`(?i)favou?rite restaurants?\s*(?:(?:are|is)\b\s*:?|:)\s*(.+)`)
	listSeparator        = regexp.MustCompile(`,| and `)
)

// answerRule handles one question shape. Matches receives the trimmed,
// lower-cased question.
type answerRule struct {
	Name    string
	Matches func(q string) bool
	Extract func(q, text string) string
}

var answerRules = []answerRule{
	{
		Name:    "date",
		Matches: func(q string) bool { return strings.HasPrefix(q, "when") },
		Extract: extractDateAnswer,
	},
	{
		Name:    "count",
		Matches: func(q string) bool { return strings.HasPrefix(q, "how many") },
		Extract: extractCountAnswer,
	},
	{
		Name: "restaurants",
		Matches: func(q string) bool {
			return strings.Contains(q, "favorite restaurant") || strings.Contains(q, "favourite restaurant")
		},
		Extract: extractRestaurantsAnswer,
	},
}

// ExtractAnswer pulls the fragment of text that answers question. A miss is
// answered with one of the fixed phrases above, never an error.
func ExtractAnswer(question, text string) string {
	q := strings.ToLower(strings.TrimSpace(question))
	for _, rule := range answerRules {
		if rule.Matches(q) {
			return rule.Extract(q, text)
		}
	}
	return snippet(text)
}

// IsMissAnswer reports whether answer is one of the fixed "couldn't find" phrases.
func IsMissAnswer(answer string) bool {
	switch answer {
	case NoRelevantInfoAnswer, NoDateAnswer, NoNumberAnswer, NoRestaurantsAnswer, NoInferenceAnswer:
		return true
	}
	return false
}

func extractDateAnswer(_, text string) string {
	if date, ok := FindDate(text); ok {
		return date
	}
	return NoDateAnswer
}

func extractCountAnswer(q, text string) string {
	// A number in a message about something other than cars is not an answer.
	if strings.Contains(q, "car") && !strings.Contains(strings.ToLower(text), "car") {
		return NoNumberAnswer
	}
	if n := numberPattern.FindString(text); n != "" {
		return n
	}
	return NoNumberAnswer
}

func extractRestaurantsAnswer(_, text string) string {
	m := restaurantListPrefix.FindStringSubmatch(text)
	if m == nil {
		return NoRestaurantsAnswer
	}

	var items []string
	for _, part := range listSeparator.Split(m[1], -1) {
		item := strings.TrimFunc(part, func(r rune) bool {
			return unicode.IsSpace(r) || r == '.' || r == '!'
		})
		if item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return NoRestaurantsAnswer
	}
	return strings.Join(items, ", ")
}

// snippet returns text trimmed, shortened at a word boundary with an ellipsis
// when it exceeds snippetLimit characters.
func snippet(text string) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return NoInferenceAnswer
	}

	runes := []rune(s)
	if len(runes) <= snippetLimit {
		return s
	}

	keep := snippetLimit - len(ellipsis)
	cut := string(runes[:keep])
	if !unicode.IsSpace(runes[keep]) {
		if i := strings.LastIndexFunc(cut, unicode.IsSpace); i > 0 {
			cut = cut[:i]
		}
	}
	return strings.TrimRightFunc(cut, unicode.IsSpace) + ellipsis
}
