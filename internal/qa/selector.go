package qa

import (
	"regexp"
	"strings"

	"memberqa-backend/internal/models"
)

// destinationBonus is added when the message names the question's destination.
const destinationBonus = 2

// noScore is the selector's starting point, below any real score.
const noScore = -1

var destinationPattern = regexp.MustCompile(`\bto ([A-Z][a-z]+)\b`)

// isWhenQuestion reports whether the question asks for a date.
func isWhenQuestion(question string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(question)), "when")
}

// extractDestination returns the lower-cased place in "... to Paris ...", if any.
func extractDestination(question string) (string, bool) {
	m := destinationPattern.FindStringSubmatch(question)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}

// SelectBest scores every message against question and returns the best one.
// Ties keep the earliest message. For a "when" question with a destination, only
// messages mentioning that destination and containing a date are eligible.
// ok is false when no message was eligible; score is then -1.
func SelectBest(question string, messages []models.Message) (best models.Message, score int, ok bool) {
	whenQuestion := isWhenQuestion(question)
	destination, hasDestination := extractDestination(question)

	score = noScore
	for _, msg := range messages {
		textLower := strings.ToLower(msg.Text)
		mentionsDestination := hasDestination && strings.Contains(textLower, destination)

		if whenQuestion && hasDestination && !(mentionsDestination && HasDate(msg.Text)) {
			continue
		}

		s := Score(question, msg.Text)
		if mentionsDestination {
			s += destinationBonus
		}
		if s > score {
			best, score, ok = msg, s, true
		}
	}
	return best, score, ok
}
