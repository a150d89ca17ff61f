package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrInvalidPayload     = errors.New("invalid payload")
	ErrUnknownMember      = errors.New("unknown team member")
)
