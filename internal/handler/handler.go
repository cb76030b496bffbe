package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"mwell-store/internal/auth"
	"mwell-store/internal/model"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code. Encoding
// errors are dropped: the status line has already been sent.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("error", code).Str("message", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeDomainError maps err to a status code. Anything that is not a
// DomainError is reported as an opaque 500.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var de *model.DomainError
	if !errors.As(err, &de) || de.Kind == model.KindInternal {
		logger.Error().Err(err).Msg("unexpected error")
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
			Error:   model.ErrCodeInternalError,
			Message: "internal server error",
		})
		return
	}

	status := statusForKind(de.Kind)
	event := logger.Debug()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Str("code", de.Code).Int("status", status).Msg("request rejected")

	writeJSON(w, status, model.ErrorResponse{Error: de.Code, Message: de.Message, Field: de.Field})
}

func statusForKind(kind model.ErrorKind) int {
	switch kind {
	case model.KindValidation, model.KindWindowExpired:
		return http.StatusBadRequest
	case model.KindAuth:
		return http.StatusUnauthorized
	case model.KindForbidden:
		return http.StatusForbidden
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// decodeJSON reads the request body into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}, logger zerolog.Logger) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", logger)
		return false
	}
	return true
}

// paging reads limit and offset query parameters. Missing values are zero
// and left for the service to default.
func paging(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (limit, offset int, ok bool) {
	q := r.URL.Query()
	var err error
	if s := q.Get("limit"); s != "" {
		if limit, err = strconv.Atoi(s); err != nil {
			writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid limit parameter", logger)
			return 0, 0, false
		}
	}
	if s := q.Get("offset"); s != "" {
		if offset, err = strconv.Atoi(s); err != nil {
			writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid offset parameter", logger)
			return 0, 0, false
		}
	}
	return limit, offset, true
}

// identity returns the authenticated caller, writing a 401 when the request
// did not pass through BearerAuth.
func identity(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (auth.Identity, bool) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		writeDomainError(w, model.ErrUnauthorised, logger)
		return auth.Identity{}, false
	}
	return id, true
}

// pathUUID parses a UUID route variable; malformed IDs are reported as
// notFound since they cannot name an existing record.
func pathUUID(w http.ResponseWriter, r *http.Request, name string, notFound error, logger zerolog.Logger) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		writeDomainError(w, notFound, logger)
		return uuid.Nil, false
	}
	return id, true
}
