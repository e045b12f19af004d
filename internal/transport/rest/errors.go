package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
	"github.com/heartmarshall/bookflow-backend/pkg/ctxutil"
	"github.com/heartmarshall/bookflow-backend/pkg/envelope"
)

// writeDomainError maps domain sentinels to HTTP statuses. Anything
// unrecognised is logged and answered with a generic 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		envelope.WriteError(w, http.StatusBadRequest, "validation failed", ve.Errors)
	case errors.Is(err, domain.ErrValidation):
		envelope.WriteError(w, http.StatusBadRequest, "validation failed", nil)
	case errors.Is(err, domain.ErrUnauthorized):
		envelope.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
	case errors.Is(err, domain.ErrForbidden):
		envelope.WriteError(w, http.StatusForbidden, "forbidden", nil)
	case errors.Is(err, domain.ErrNotFound):
		envelope.WriteError(w, http.StatusNotFound, "not found", nil)
	case errors.Is(err, domain.ErrAlreadyExists):
		envelope.WriteError(w, http.StatusConflict, "already exists", nil)
	case errors.Is(err, domain.ErrConflict):
		envelope.WriteError(w, http.StatusConflict, "conflict", nil)
	case errors.Is(err, domain.ErrNotImplemented):
		envelope.WriteError(w, http.StatusNotImplemented, "not implemented", nil)
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		envelope.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
	}
}
