package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"canasta/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already on the wire, so an encode failure here
	// cannot be reported to the client.
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a plain error response with the given status code.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeDomainError maps a service failure onto a response. Domain errors
// carry stable codes and map to specific statuses; anything else is an
// opaque internal error.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, statusForCode(domainErr.Code), model.ErrorResponse{
			Error:   domainErr.Code,
			Message: domainErr.Message,
		})
		return
	}

	logger.Error().Err(err).Msg("unexpected handler error")
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Error:   model.ErrCodeInternalError,
		Message: "Internal server error",
	})
}

// statusForCode maps a domain error code to an HTTP status.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeUnauthenticated:
		return http.StatusUnauthorized
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	case model.ErrCodeNotFound:
		return http.StatusNotFound
	case model.ErrCodeInvalidArgument, model.ErrCodeInvalidJSON:
		return http.StatusBadRequest
	case model.ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// pathID extracts and parses the {id} URL parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, model.NewDomainError(model.ErrCodeInvalidArgument, "Malformed identifier")
	}
	return id, nil
}

// pagination parses the limit/offset query parameters with defaults.
func pagination(r *http.Request) (limit, offset int, err error) {
	limit, err = queryInt(r, "limit", 10)
	if err != nil {
		return 0, 0, model.NewDomainError(model.ErrCodeInvalidArgument, "Invalid limit parameter")
	}
	offset, err = queryInt(r, "offset", 0)
	if err != nil {
		return 0, 0, model.NewDomainError(model.ErrCodeInvalidArgument, "Invalid offset parameter")
	}
	return limit, offset, nil
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
