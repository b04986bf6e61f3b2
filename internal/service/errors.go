package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrValidationEmptyUsername = errors.New("username must not be empty")
	ErrValidationEmptyEmail    = errors.New("email must not be empty")
	ErrValidationBadEmail      = errors.New("email has invalid format")
	ErrValidationEmptyPassword = errors.New("password must not be empty")
	ErrValidationEmptyTitle    = errors.New("entry title must not be empty")
	ErrValidationEmptyContent  = errors.New("entry content must not be empty")
)
