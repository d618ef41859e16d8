package domain

import (
	"errors"
	"os"
)

const (
	RoleUser = "user"
)

var (
	MessageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID          = errors.New("failed to parse UUID")
	ErrUserNotAllowed     = errors.New("user not allowed")
	ErrTokenNotFound      = errors.New("failed to token not found")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrUnauthorizedAccess = errors.New("unauthorized access to record")
)
