package autherrors

import (
	"go-employees/internal/shared/apperror"
	"net/http"
)

var (
	// Identical message whether the account is missing or the password is
	// wrong, so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid username/email or password",
		http.StatusUnauthorized,
	)
	ErrAccountAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Username or email already exists",
		http.StatusConflict,
	)
)
