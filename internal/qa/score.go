package qa

// stopWords never count towards relevance. Besides common English function words
// it holds a few words that appear in nearly every question about trips and
// favorites and so carry no signal.
var stopWords = map[string]struct{}{
	"the": {}, "is": {}, "are": {}, "a": {}, "an": {}, "to": {}, "of": {}, "for": {},
	"and": {}, "or": {}, "in": {}, "on": {}, "at": {}, "with": {}, "what": {},
	"when": {}, "how": {}, "many": {}, "does": {}, "have": {}, "his": {}, "her": {},
	"their": {}, "favorite": {}, "favorites": {}, "planning": {}, "trip": {},
}

// Score counts the question's non-stop-word tokens that occur in text. Repeated
// question tokens count once per occurrence; repeated message tokens do not add
// anything.
func Score(question, text string) int {
	messageTokens := make(map[string]struct{})
	for _, t := range Tokenize(text) {
		messageTokens[t] = struct{}{}
	}

	score := 0
	for _, t := range Tokenize(question) {
		if _, stop := stopWords[t]; stop {
			continue
		}
		if _, ok := messageTokens[t]; ok {
			score++
		}
	}
	return score
}
