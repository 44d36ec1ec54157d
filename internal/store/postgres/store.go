package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"memberqa-backend/internal/models"
	"memberqa-backend/internal/store"
)

// Compile-time check to ensure PostgresStore implements store.QuestionLog
var _ store.QuestionLog = (*PostgresStore)(nil)

var schemaStatements = []string{`
CREATE TABLE IF NOT EXISTS question_log (
	id          UUID PRIMARY KEY,
	question    TEXT NOT NULL,
	fingerprint TEXT NOT NULL,
	member_name TEXT,
	answer      TEXT NOT NULL,
	outcome     TEXT NOT NULL,
	score       INTEGER NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS question_log_fingerprint_idx ON question_log (fingerprint)`,
}

type PostgresStore struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresStore(db *pgxpool.Pool, logger *zap.Logger) *PostgresStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresStore{db: db, logger: logger.Named("postgres")}
}

// EnsureSchema creates the question_log table if it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("database error creating question_log schema: %w", err)
		}
	}
	return nil
}

// RecordQuestion inserts entry into question_log. CreatedAt is filled in from
// the database default.
func (s *PostgresStore) RecordQuestion(ctx context.Context, entry *models.QuestionLogEntry) error {
	query := `
		INSERT INTO question_log (id, question, fingerprint, member_name, answer, outcome, score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := s.db.QueryRow(ctx, query,
		entry.ID,
		entry.Question,
		entry.Fingerprint,
		entry.MemberName,
		entry.Answer,
		string(entry.Outcome),
		entry.Score,
	).Scan(&entry.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			s.logger.Error("insert into question_log failed",
				zap.Stringer("id", entry.ID),
				zap.String("code", pgErr.Code),
				zap.String("detail", pgErr.Detail),
				zap.Error(err),
			)
		} else {
			s.logger.Error("insert into question_log failed", zap.Stringer("id", entry.ID), zap.Error(err))
		}
		return fmt.Errorf("database error recording question: %w", err)
	}

	s.logger.Debug("recorded question", zap.Stringer("id", entry.ID), zap.String("outcome", string(entry.Outcome)))
	return nil
}

// GetQuestionByID retrieves a question log entry.
// Returns store.ErrNotFound if it does not exist.
func (s *PostgresStore) GetQuestionByID(ctx context.Context, id uuid.UUID) (*models.QuestionLogEntry, error) {
	query := `
		SELECT id, question, fingerprint, member_name, answer, outcome, score, created_at
		FROM question_log
		WHERE id = $1`

	entry := &models.QuestionLogEntry{}
	var outcome string
	err := s.db.QueryRow(ctx, query, id).Scan(
		&entry.ID,
		&entry.Question,
		&entry.Fingerprint,
		&entry.MemberName,
		&entry.Answer,
		&outcome,
		&entry.Score,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("database error fetching question %s: %w", id, err)
	}

	entry.Outcome = models.Outcome(outcome)
	return entry, nil
}
