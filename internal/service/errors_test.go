package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobconnect-backend/internal/repository"
	"jobconnect-backend/pkg/apperror"
)

func TestConvertRepoErr(t *testing.T) {
	tests := []struct {
		name       string
		in         error
		wantCode   string
		wantStatus int
	}{
		{"not found", repository.ErrNotFound, "NOT_FOUND", http.StatusNotFound},
		{"duplicate", repository.ErrDuplicateEntry, "DUPLICATE_ENTRY", http.StatusConflict},
		{"bad filter column", repository.ErrColumnNotAllowed, "VALIDATION_ERROR", http.StatusBadRequest},
		{"wrapped sentinel", fmt.Errorf("update client: %w", repository.ErrNotFound), "NOT_FOUND", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := convertRepoErr(tt.in, "Client")
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
		})
	}
}

func TestConvertRepoErrNamesEntity(t *testing.T) {
	err := convertRepoErr(repository.ErrNotFound, "Technician")
	assert.Contains(t, err.Error(), "Technician not found")
}

func TestConvertRepoErrPassesUnknownThrough(t *testing.T) {
	cause := errors.New("pq: connection refused")
	assert.Equal(t, cause, convertRepoErr(cause, "Client"))
}
