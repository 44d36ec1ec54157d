// Package qa answers natural-language questions about member messages without
// any language model: it finds the member the question is about, picks the most
// relevant message by token overlap and extracts a date, count, list or snippet
// from it depending on how the question is phrased.
package qa

import "memberqa-backend/internal/models"

// Result is the outcome of answering one question.
type Result struct {
	Answer     string
	MemberName string // empty when the question names nobody
	Score      int    // best relevance score, -1 when nothing was eligible
	Matched    bool   // a message with a positive score was selected
}

// Answer runs the whole pipeline for question over messages. It never fails: a
// question nothing in messages is relevant to gets NoRelevantInfoAnswer.
func Answer(question string, messages []models.Message) Result {
	var res Result

	candidates := messages
	if name, ok := ExtractMemberName(question); ok {
		res.MemberName = name
		candidates = FilterByMember(messages, name)
	}

	best, score, ok := SelectBest(question, candidates)
	res.Score = score
	if !ok || score <= 0 {
		res.Answer = NoRelevantInfoAnswer
		return res
	}

	res.Matched = true
	res.Answer = ExtractAnswer(question, best.Text)
	return res
}

// Outcome classifies res for logging and metrics.
func (r Result) Outcome() models.Outcome {
	switch {
	case !r.Matched:
		return models.OutcomeNoMatch
	case IsMissAnswer(r.Answer):
		return models.OutcomeFallback
	default:
		return models.OutcomeAnswered
	}
}
