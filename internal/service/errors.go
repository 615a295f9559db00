// Package service shapes repository records into public responses and
// converts absence and integrity signals into domain errors.
package service

import (
	"errors"

	"jobconnect-backend/internal/repository"
	"jobconnect-backend/pkg/apperror"
)

// convertRepoErr maps repository sentinels onto domain errors; anything
// else passes through for the handler to wrap as internal.
func convertRepoErr(err error, entity string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperror.NewNotFound(entity + " not found")
	case errors.Is(err, repository.ErrDuplicateEntry):
		return apperror.NewDuplicateEntry("Email or phone number already exists")
	case errors.Is(err, repository.ErrColumnNotAllowed):
		return apperror.NewValidation("Unknown filter column")
	}
	return err
}
