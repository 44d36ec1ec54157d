package qa

import "regexp"

// nameRule is one way of spotting a member name in a question. The name is the
// first capture group of Pattern.
type nameRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// One or two capitalized words, e.g. "Maria" or "Maria Lopez".
const properName = `([A-Z][a-z]+(?: [A-Z][a-z]+)?)`

// memberNameRules are tried in order; the generic capitalized-words rule is last
// so that possessives and question phrasing win over sentence-initial words.
var memberNameRules = []nameRule{
	{Name: "possessive", Pattern: regexp.MustCompile(properName + `['’]s`)},
	{Name: "when_is", Pattern: regexp.MustCompile(`When is ` + properName)},
	{Name: "how_many_does_have", Pattern: regexp.MustCompile(`How many .+? does ` + properName + ` have`)},
	{Name: "capitalized", Pattern: regexp.MustCompile(properName)},
}

// ExtractMemberName returns the member name mentioned in question, if any.
func ExtractMemberName(question string) (string, bool) {
	for _, rule := range memberNameRules {
		if m := rule.Pattern.FindStringSubmatch(question); m != nil {
			return m[1], true
		}
	}
	return "", false
}
