package user

import "errors"

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmptyPassword      = errors.New("password must not be empty")
	ErrMissingFields      = errors.New("fullname, email and password are required")
)
