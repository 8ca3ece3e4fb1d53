package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/internal/service"
	"github.com/MKhiriev/go-webhooks/internal/store"
	"github.com/MKhiriev/go-webhooks/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrEmptyEventParam:             http.StatusBadRequest,
	utils.ErrEmptyBody:             http.StatusBadRequest,

	store.ErrEventNotFound:      http.StatusNotFound,
	store.ErrEventHasNoURLs:     http.StatusNotFound,
	store.ErrURLNotFound:        http.StatusNotFound,
	store.ErrURLAlreadyExists:   http.StatusConflict,
	store.ErrEventAlreadyExists: http.StatusConflict,

	store.ErrStorageUnavailable: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with the mapped status. Client
// errors carry err's message as detail; server errors only the status text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	detail := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		detail = http.StatusText(status)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, detail, status)
}
