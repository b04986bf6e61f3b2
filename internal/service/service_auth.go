// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/avdeyev/go-journal-keeper/internal/config"
	"github.com/avdeyev/go-journal-keeper/internal/logger"
	"github.com/avdeyev/go-journal-keeper/internal/store"
	"github.com/avdeyev/go-journal-keeper/internal/utils"
	"github.com/avdeyev/go-journal-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that Username, Email, and PasswordHash (carrying the plain
// password at this point) are non-empty and that Email has a parseable
// address form, then replaces the plain password with its bcrypt digest
// before delegating persistence to the UserRepository. The plain password
// never reaches the storage layer.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided (with a wrapped validation error) if any field
//     fails validation.
//   - A wrapped storage error if the repository call fails (e.g. username or
//     email already taken — see store.ErrUserAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateNewUser(user); err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	digest, err := utils.HashPassword(user.PasswordHash)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = digest

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by username and plain password.
//
// A missing account and a wrong password both yield ErrInvalidCredentials so
// that a caller probing for registered usernames learns nothing from the
// response. The bcrypt comparison runs in constant time for a given digest.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrInvalidCredentials on any authentication failure.
//   - A wrapped storage error on unexpected repository failures.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("empty credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("username", username).Msg("login attempt for unknown user")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPasswordHash(password, foundUser.PasswordHash) {
		log.Error().Int64("id", foundUser.UserID).Str("username", username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the user's username as the "sub" claim,
// and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolveToken parses a raw JWT string and loads the account it identifies.
//
// Every failure mode, including a token whose subject no longer matches a
// stored account, collapses to ErrTokenIsExpiredOrInvalid.
func (a *authService) ResolveToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	username, err := token.GetUsername()
	if err != nil {
		log.Error().Err(err).Msg("token has no usable subject claim")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("token subject does not resolve to a user")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	return user, nil
}

// validateNewUser checks the fields of a registration request. The
// PasswordHash field still holds the plain password at this stage.
func validateNewUser(user models.User) error {
	if user.Username == "" {
		return ErrValidationEmptyUsername
	}
	if user.Email == "" {
		return ErrValidationEmptyEmail
	}
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return ErrValidationBadEmail
	}
	if user.PasswordHash == "" {
		return ErrValidationEmptyPassword
	}

	return nil
}
