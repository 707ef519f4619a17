package auth

import "errors"

// Auth-related errors
var (
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrCodeNotFound   = errors.New("no sign-in code outstanding for this email")
	ErrCodeExpired    = errors.New("sign-in code has expired")
	ErrCodeMismatch   = errors.New("sign-in code does not match")
	ErrSessionInvalid = errors.New("session token is invalid")
	ErrSessionExpired = errors.New("session has expired")
)
