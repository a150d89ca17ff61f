package http

import (
	"errors"
	"net/http"

	"taskflow/internal/user"
	pkgErrors "taskflow/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Name, email and password are required")
	case errors.Is(err, user.ErrPasswordTooShort):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Password must be at least 6 characters")
	case errors.Is(err, user.ErrWrongPassword):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Current password is incorrect")
	case errors.Is(err, user.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "User not found")
	case errors.Is(err, user.ErrEmailTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, "User already exists")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
