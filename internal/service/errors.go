package service

import (
	"errors"

	"inventory-rest-api/internal/repository"
	"inventory-rest-api/pkg/apierror"
)

// mapStoreError converts repository sentinels into API errors with the given
// messages. Any other error passes through unchanged.
func mapStoreError(err error, notFound, conflict string) error {
	switch {
	case err == nil:
		return nil
	case notFound != "" && errors.Is(err, repository.ErrNotFound):
		return apierror.NotFound(notFound)
	case conflict != "" && errors.Is(err, repository.ErrConflict):
		return apierror.Conflict(conflict)
	}
	return err
}
