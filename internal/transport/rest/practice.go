package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
	"github.com/bipbipboopboop/ielts-progressor/internal/service/practice"
)

type practiceService interface {
	GeneratePracticeText(ctx context.Context) (*domain.Attempt, error)
	ProcessSelectedWords(ctx context.Context, input practice.ProcessSelectedWordsInput) (*domain.SubmissionResult, error)
	CurrentAttempt(ctx context.Context) (*domain.Attempt, error)
	GetAttempt(ctx context.Context, id uuid.UUID) (*domain.Attempt, error)
	ListAttempts(ctx context.Context, input practice.ListAttemptsInput) ([]*domain.Attempt, error)
}

type profileService interface {
	GetProfile(ctx context.Context) (*domain.Profile, error)
}

// PracticeHandler serves the callable practice operations and the reads
// backing the client views.
type PracticeHandler struct {
	practice practiceService
	profiles profileService
	log      *slog.Logger
}

// NewPracticeHandler creates a PracticeHandler.
func NewPracticeHandler(svc practiceService, profiles profileService, logger *slog.Logger) *PracticeHandler {
	return &PracticeHandler{
		practice: svc,
		profiles: profiles,
		log:      logger.With("handler", "practice"),
	}
}

type vocabularyItemResponse struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}

type attemptResponse struct {
	ID             string                   `json:"id"`
	Text           string                   `json:"text"`
	UID            string                   `json:"uid"`
	Score          float64                  `json:"score"`
	CreatedAt      int64                    `json:"createdAt"`
	Completed      bool                     `json:"completed"`
	SuggestedWords []vocabularyItemResponse `json:"suggested_words"`
	UnknownWords   []string                 `json:"unknown_words"`
	CompletedAt    *int64                   `json:"completedAt,omitempty"`
}

type processSelectedWordsRequest struct {
	SelectedWords   []string `json:"selectedWords"`
	GeneratedTextID string   `json:"generatedTextId"`
}

type processSelectedWordsResponse struct {
	Success      bool              `json:"success"`
	NewScore     float64           `json:"newScore"`
	UnknownWords map[string]string `json:"unknownWords"`
}

type profileResponse struct {
	UID         string                   `json:"uid"`
	Email       *string                  `json:"email"`
	DisplayName string                   `json:"displayName"`
	Score       float64                  `json:"score"`
	Vocabulary  []vocabularyItemResponse `json:"vocabulary"`
	CreatedAt   int64                    `json:"createdAt"`
}

// GeneratePracticeText handles POST /v1/generatePracticeText.
func (h *PracticeHandler) GeneratePracticeText(w http.ResponseWriter, r *http.Request) {
	var req struct{}
	if err := decodeData(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	attempt, err := h.practice.GeneratePracticeText(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeResult(w, http.StatusOK, toAttemptResponse(attempt))
}

// ProcessSelectedWords handles POST /v1/processSelectedWords.
func (h *PracticeHandler) ProcessSelectedWords(w http.ResponseWriter, r *http.Request) {
	var req processSelectedWordsRequest
	if err := decodeData(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	result, err := h.practice.ProcessSelectedWords(r.Context(), practice.ProcessSelectedWordsInput{
		GeneratedTextID: req.GeneratedTextID,
		SelectedWords:   req.SelectedWords,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	unknown := result.UnknownWords
	if unknown == nil {
		unknown = map[string]string{}
	}
	writeResult(w, http.StatusOK, processSelectedWordsResponse{
		Success:      true,
		NewScore:     result.NewScore,
		UnknownWords: unknown,
	})
}

// Profile handles GET /v1/profile.
func (h *PracticeHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.GetProfile(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeResult(w, http.StatusOK, profileResponse{
		UID:         profile.UID,
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		Score:       profile.CurrentScore(),
		Vocabulary:  toVocabulary(profile.Vocabulary),
		CreatedAt:   profile.CreatedAt.UnixMilli(),
	})
}

// CurrentAttempt handles GET /v1/attempts/current.
func (h *PracticeHandler) CurrentAttempt(w http.ResponseWriter, r *http.Request) {
	attempt, err := h.practice.CurrentAttempt(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeResult(w, http.StatusOK, toAttemptResponse(attempt))
}

// GetAttempt handles GET /v1/attempts/{id}.
func (h *PracticeHandler) GetAttempt(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, h.log, invalidQuery("id"))
		return
	}

	attempt, err := h.practice.GetAttempt(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeResult(w, http.StatusOK, toAttemptResponse(attempt))
}

// ListAttempts handles GET /v1/attempts.
func (h *PracticeHandler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	var input practice.ListAttemptsInput

	q := r.URL.Query()
	if raw := q.Get("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, h.log, invalidQuery("completed"))
			return
		}
		input.Completed = &completed
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, h.log, invalidQuery("limit"))
			return
		}
		input.Limit = limit
	}

	attempts, err := h.practice.ListAttempts(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]attemptResponse, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, toAttemptResponse(a))
	}
	writeResult(w, http.StatusOK, out)
}

func toAttemptResponse(a *domain.Attempt) attemptResponse {
	unknown := a.UnknownWords
	if unknown == nil {
		unknown = []string{}
	}

	resp := attemptResponse{
		ID:             a.ID.String(),
		Text:           a.Text,
		UID:            a.UID,
		Score:          a.Score,
		CreatedAt:      a.CreatedAt.UnixMilli(),
		Completed:      a.Completed,
		SuggestedWords: toVocabulary(a.SuggestedWords),
		UnknownWords:   unknown,
	}
	if a.CompletedAt != nil {
		resp.CompletedAt = millis(*a.CompletedAt)
	}
	return resp
}

func toVocabulary(items []domain.VocabularyItem) []vocabularyItemResponse {
	out := make([]vocabularyItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, vocabularyItemResponse{Word: it.Word, Meaning: it.Meaning})
	}
	return out
}

func millis(t time.Time) *int64 {
	ms := t.UnixMilli()
	return &ms
}
