package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrOTPMismatch        = errors.New("otp mismatch")
	ErrOTPExpired         = errors.New("otp expired")
	ErrTooManyAttempts    = errors.New("too many attempts")
)
