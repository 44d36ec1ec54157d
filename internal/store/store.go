package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"memberqa-backend/internal/models"
)

// ErrNotFound is returned when a specific record is not found.
var ErrNotFound = errors.New("record not found")

// QuestionLog records answered questions. Fetched messages are never stored.
type QuestionLog interface {
	RecordQuestion(ctx context.Context, entry *models.QuestionLogEntry) error
	GetQuestionByID(ctx context.Context, id uuid.UUID) (*models.QuestionLogEntry, error)
}

// Compile-time check to ensure NopQuestionLog implements QuestionLog
var _ QuestionLog = NopQuestionLog{}

// NopQuestionLog discards entries. It is used when no database is configured.
type NopQuestionLog struct{}

func (NopQuestionLog) RecordQuestion(context.Context, *models.QuestionLogEntry) error {
	return nil
}

func (NopQuestionLog) GetQuestionByID(context.Context, uuid.UUID) (*models.QuestionLogEntry, error) {
	return nil, ErrNotFound
}
