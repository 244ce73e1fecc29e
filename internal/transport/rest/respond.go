package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
)

const maxBodyBytes = 1 << 20

// Status codes of the callable error envelope.
const (
	statusUnauthenticated = "UNAUTHENTICATED"
	statusNotFound        = "NOT_FOUND"
	statusInvalidArgument = "INVALID_ARGUMENT"
	statusAlreadyExists   = "ALREADY_EXISTS"
	statusInternal        = "INTERNAL"
)

type callableRequest[T any] struct {
	Data T `json:"data"`
}

type callableResult struct {
	Result any `json:"result"`
}

type callableError struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Details []fieldError `json:"details,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// decodeData reads a {"data": ...} envelope into dst. An empty body leaves dst zero.
func decodeData[T any](w http.ResponseWriter, r *http.Request, dst *T) error {
	var req callableRequest[T]
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
	*dst = req.Data
	return nil
}

// decodeJSON reads a plain JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

func writeResult(w http.ResponseWriter, status int, v any) {
	writeJSON(w, status, callableResult{Result: v})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError maps a service error onto the callable error envelope.
// Anything outside the known taxonomy is logged and reported as INTERNAL
// without detail.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &ve):
		details := make([]fieldError, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			details = append(details, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, callableError{Error: errorBody{
			Status:  statusInvalidArgument,
			Message: ve.Error(),
			Details: details,
		}})
	case errors.Is(err, domain.ErrValidation):
		writeStatus(w, http.StatusBadRequest, statusInvalidArgument, "invalid argument")
	case errors.Is(err, domain.ErrUnauthorized):
		writeStatus(w, http.StatusUnauthorized, statusUnauthenticated, "authentication required")
	case errors.Is(err, domain.ErrNotFound):
		writeStatus(w, http.StatusNotFound, statusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeStatus(w, http.StatusConflict, statusAlreadyExists, "already exists")
	default:
		if !errors.Is(err, domain.ErrInternal) {
			log.ErrorContext(r.Context(), "unhandled error", slog.String("error", err.Error()))
		}
		writeStatus(w, http.StatusInternalServerError, statusInternal, "internal error")
	}
}

func writeStatus(w http.ResponseWriter, code int, status, message string) {
	writeJSON(w, code, callableError{Error: errorBody{Status: status, Message: message}})
}

func invalidQuery(name string) error {
	return domain.NewValidationError(name, fmt.Sprintf("invalid %s", name))
}
