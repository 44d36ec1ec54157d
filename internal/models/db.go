package models

import (
	"time"

	"github.com/google/uuid"
)

// Outcome classifies how a question was answered.
type Outcome string

const (
	// OutcomeAnswered means a message was selected and an answer fragment extracted.
	OutcomeAnswered Outcome = "answered"
	// OutcomeFallback means a message was selected but the type-specific extractor
	// fell back to its "couldn't find" phrase.
	OutcomeFallback Outcome = "fallback"
	// OutcomeNoMatch means no message was relevant to the question.
	OutcomeNoMatch Outcome = "no_match"
)

// QuestionLogEntry mirrors a row of the 'question_log' table.
type QuestionLogEntry struct {
	ID          uuid.UUID `json:"id"`
	Question    string    `json:"question"`
	Fingerprint string    `json:"fingerprint"`          // blake2b of the normalized question
	MemberName  *string   `json:"member_name,omitempty"` // nil when no name was extracted
	Answer      string    `json:"answer"`
	Outcome     Outcome   `json:"outcome"`
	Score       int       `json:"score"`
	CreatedAt   time.Time `json:"created_at"`
}
