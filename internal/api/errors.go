package api

import (
	"errors"
	"net/http"

	"jdbc-bridge/internal/domain"
)

// httpStatusFromDomainError maps domain errors to HTTP status codes.
func httpStatusFromDomainError(err error) int {
	var (
		notFound    *domain.NotFoundError
		unknownRes  *domain.UnknownResourceError
		validation  *domain.ValidationError
		missing     *domain.MissingPropertyError
		wrongKind   *domain.WrongResourceKindError
		unsupported *domain.UnsupportedCapabilityError
		conflict    *domain.ConflictError
	)

	switch {
	case errors.As(err, &notFound), errors.As(err, &unknownRes):
		return http.StatusNotFound
	case errors.As(err, &validation),
		errors.As(err, &missing),
		errors.As(err, &wrongKind),
		errors.As(err, &unsupported):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
