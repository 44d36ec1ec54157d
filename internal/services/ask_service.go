package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"memberqa-backend/internal/crypto"
	"memberqa-backend/internal/integrations/messages"
	"memberqa-backend/internal/metrics"
	"memberqa-backend/internal/models"
	"memberqa-backend/internal/qa"
	"memberqa-backend/internal/store"
)

// Custom errors for ask service
var (
	ErrEmptyQuestion = errors.New("question must not be empty")
	ErrEmptyCorpus   = errors.New("no messages found from message source")
	ErrNotFound      = errors.New("question not found")
)

// MessageSource provides the full message collection for one request.
type MessageSource interface {
	FetchMessages(ctx context.Context) ([]models.Message, error)
}

// AskResult is what the handler needs to build a response.
type AskResult struct {
	Response   models.AskResponse
	QuestionID uuid.UUID
	Outcome    models.Outcome
}

// AskService answers questions about member messages. It holds no per-request
// state, so one instance serves concurrent requests.
type AskService struct {
	source      MessageSource
	questionLog store.QuestionLog
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewAskService creates a new AskService. questionLog, m and logger may be nil.
func NewAskService(source MessageSource, questionLog store.QuestionLog, m *metrics.Metrics, logger *zap.Logger) *AskService {
	if questionLog == nil {
		questionLog = store.NopQuestionLog{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AskService{
		source:      source,
		questionLog: questionLog,
		metrics:     m,
		logger:      logger.Named("ask"),
	}
}

// Ask fetches the current messages and answers question from them.
// Errors: ErrEmptyQuestion, ErrEmptyCorpus, or an error wrapping
// messages.ErrRetrieval.
func (s *AskService) Ask(ctx context.Context, question string) (*AskResult, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	msgs, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	res := qa.Answer(question, msgs)
	outcome := res.Outcome()
	s.metrics.ObserveQuestion(outcome)

	entry := &models.QuestionLogEntry{
		ID:          uuid.New(),
		Question:    question,
		Fingerprint: crypto.FingerprintQuestion(question),
		Answer:      res.Answer,
		Outcome:     outcome,
		Score:       res.Score,
		CreatedAt:   time.Now().UTC(),
	}
	if res.MemberName != "" {
		name := res.MemberName
		entry.MemberName = &name
	}

	s.logger.Info("answered question",
		zap.Stringer("question_id", entry.ID),
		zap.String("member", res.MemberName),
		zap.Int("candidates", len(msgs)),
		zap.Int("score", res.Score),
		zap.String("outcome", string(outcome)),
	)

	// The log is best effort: a failed insert never costs the caller an answer.
	if err := s.questionLog.RecordQuestion(ctx, entry); err != nil {
		s.logger.Warn("failed to record question", zap.Stringer("question_id", entry.ID), zap.Error(err))
	}

	return &AskResult{
		Response:   models.AskResponse{Answer: res.Answer},
		QuestionID: entry.ID,
		Outcome:    outcome,
	}, nil
}

// GetQuestion returns a previously answered question from the log.
func (s *AskService) GetQuestion(ctx context.Context, id uuid.UUID) (*models.QuestionLogEntry, error) {
	entry, err := s.questionLog.GetQuestionByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get question from store: %w", err)
	}
	return entry, nil
}

func (s *AskService) fetch(ctx context.Context) ([]models.Message, error) {
	start := time.Now()
	msgs, err := s.source.FetchMessages(ctx)
	elapsed := time.Since(start)

	if err != nil {
		kind := metrics.FetchFailureUpstream
		if errors.Is(err, messages.ErrUnexpectedPayload) {
			kind = metrics.FetchFailurePayload
		}
		s.metrics.ObserveFetch(elapsed, kind)
		s.logger.Error("failed to fetch messages", zap.Duration("elapsed", elapsed), zap.Error(err))
		if !errors.Is(err, messages.ErrRetrieval) {
			err = fmt.Errorf("%w: %v", messages.ErrUpstream, err)
		}
		return nil, err
	}

	if len(msgs) == 0 {
		s.metrics.ObserveFetch(elapsed, metrics.FetchFailureEmpty)
		s.logger.Error("message source returned no messages")
		return nil, ErrEmptyCorpus
	}

	s.metrics.ObserveFetch(elapsed, "")
	return msgs, nil
}
