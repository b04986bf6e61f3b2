package http

import (
	"errors"
	"net/http"

	"github.com/avdeyev/go-journal-keeper/internal/service"
	"github.com/avdeyev/go-journal-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrValidationEmptyUsername: http.StatusBadRequest,
	service.ErrValidationEmptyEmail:    http.StatusBadRequest,
	service.ErrValidationBadEmail:      http.StatusBadRequest,
	service.ErrValidationEmptyPassword: http.StatusBadRequest,
	service.ErrValidationEmptyTitle:    http.StatusBadRequest,
	service.ErrValidationEmptyContent:  http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrUserAlreadyExists:    http.StatusBadRequest,
	store.ErrNoUserWasFound:       http.StatusUnauthorized,
	store.ErrJournalEntryNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
