package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-dict-keeper/internal/app"
	"github.com/MKhiriev/go-dict-keeper/internal/service"
	"github.com/MKhiriev/go-dict-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidSyncToken:    http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrNoEntriesAffected: http.StatusNotFound,

	// the pool could not hand out a connection
	store.ErrBeginningTransaction: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// statusFromError maps err to a status code. Database errors that survived
// the repository retries but are still classified as retryable become 503
// so the client keeps its cache and tries again later.
func (h *Handler) statusFromError(err error) int {
	if h.classifier != nil && h.classifier.Classify(err) == store.Retryable {
		return http.StatusServiceUnavailable
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the response body for err. The client matches
// these strings, see [app].
func messageFromError(err error, status int) string {
	switch status {
	case http.StatusBadRequest:
		if errors.Is(err, service.ErrInvalidSyncToken) {
			return app.MsgInvalidSyncToken
		}
		return app.MsgInvalidDataProvided
	case http.StatusNotFound:
		return app.MsgNoEntriesAffected
	case http.StatusServiceUnavailable:
		return app.MsgServiceUnavailable
	default:
		return app.MsgInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := h.statusFromError(err)
	http.Error(w, messageFromError(err, status), status)
}
