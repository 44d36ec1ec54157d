package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"memberqa-backend/internal/integrations/messages"
	"memberqa-backend/internal/models"
	"memberqa-backend/internal/services"
	"memberqa-backend/pkg/httputil"
)

// QuestionIDHeader carries the question log ID of an answered question.
const QuestionIDHeader = "X-Question-ID"

// AskService defines the interface expected from the ask service.
type AskService interface {
	Ask(ctx context.Context, question string) (*services.AskResult, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*models.QuestionLogEntry, error)
}

type AskHandler struct {
	askService AskService
	logger     *zap.Logger
}

func NewAskHandler(askSvc AskService, logger *zap.Logger) *AskHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AskHandler{
		askService: askSvc,
		logger:     logger.Named("handlers"),
	}
}

// HandleAsk handles GET /ask?question=...
func (h *AskHandler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	question := r.URL.Query().Get("question")

	result, err := h.askService.Ask(r.Context(), question)
	if err != nil {
		// Error Mapping: Map service errors to HTTP status codes
		switch {
		case errors.Is(err, services.ErrEmptyQuestion):
			httputil.RespondError(w, http.StatusBadRequest, "Question must not be empty.") // 400
		case errors.Is(err, messages.ErrUnexpectedPayload):
			httputil.RespondError(w, http.StatusInternalServerError, "Unexpected /messages response format.")
		case errors.Is(err, messages.ErrRetrieval):
			httputil.RespondError(w, http.StatusBadGateway, "Error calling /messages: "+err.Error()) // 502
		case errors.Is(err, services.ErrEmptyCorpus):
			httputil.RespondError(w, http.StatusInternalServerError, "No messages found from /messages.")
		default:
			h.logger.Error("ask failed", zap.Error(err))
			httputil.RespondError(w, http.StatusInternalServerError, "Failed to answer question")
		}
		return
	}

	w.Header().Set(QuestionIDHeader, result.QuestionID.String())
	httputil.RespondJSON(w, http.StatusOK, result.Response)
}

// HandleGetQuestion handles GET /questions/{questionID}.
func (h *AskHandler) HandleGetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "questionID"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	entry, err := h.askService.GetQuestion(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			httputil.RespondError(w, http.StatusNotFound, "Question not found")
			return
		}
		h.logger.Error("get question failed", zap.Stringer("question_id", id), zap.Error(err))
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to get question")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, entry)
}
