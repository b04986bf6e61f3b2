// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avdeyev/go-journal-keeper/internal/logger"
	"github.com/avdeyev/go-journal-keeper/internal/store"
	"github.com/avdeyev/go-journal-keeper/internal/utils"
	"github.com/avdeyev/go-journal-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestAuthService(repo *mockUserRepository) *authService {
	return &authService{
		userRepository: repo,
		tokenSignKey:   "test-sign-key",
		tokenIssuer:    "test-issuer",
		tokenDuration:  time.Hour,
		logger:         logger.Nop(),
	}
}

var errRepository = errors.New("repository error")

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	var storedUser models.User
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			storedUser = user
			user.UserID = 42
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), models.User{
		Username:     "margarita",
		Email:        "rita@example.com",
		PasswordHash: "master-and",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), registered.UserID)
	assert.Equal(t, "margarita", registered.Username)

	// the repository must receive a bcrypt digest, not the plain password
	assert.NotEqual(t, "master-and", storedUser.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("master-and", storedUser.PasswordHash))
}

func TestAuthService_RegisterUser_Validation(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		wantErr error
	}{
		{
			name:    "empty username",
			user:    models.User{Email: "a@b.com", PasswordHash: "pw"},
			wantErr: ErrValidationEmptyUsername,
		},
		{
			name:    "empty email",
			user:    models.User{Username: "ivan", PasswordHash: "pw"},
			wantErr: ErrValidationEmptyEmail,
		},
		{
			name:    "malformed email",
			user:    models.User{Username: "ivan", Email: "not-an-email", PasswordHash: "pw"},
			wantErr: ErrValidationBadEmail,
		},
		{
			name:    "empty password",
			user:    models.User{Username: "ivan", Email: "a@b.com"},
			wantErr: ErrValidationEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{
				createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
					t.Fatal("CreateUser must not be called for invalid input")
					return models.User{}, nil
				},
			}
			svc := newTestAuthService(repo)

			_, err := svc.RegisterUser(context.Background(), tt.user)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_RegisterUser_DuplicateUser(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.User{
		Username:     "ivan",
		Email:        "ivan@example.com",
		PasswordHash: "pw",
	})

	require.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	digest, err := utils.HashPassword("correct horse")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			assert.Equal(t, "ivan", username)
			return models.User{UserID: 7, Username: "ivan", PasswordHash: digest}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), "ivan", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), "ivan", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// TestAuthService_Login_IndistinguishableFailures verifies that an unknown
// username and a wrong password produce the same error, so the response leaks
// nothing about which usernames are registered.
func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	digest, err := utils.HashPassword("real password")
	require.NoError(t, err)

	unknownUser := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	wrongPassword := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{UserID: 1, Username: "ivan", PasswordHash: digest}, nil
		},
	}

	_, errUnknown := newTestAuthService(unknownUser).Login(context.Background(), "ghost", "whatever")
	_, errWrongPw := newTestAuthService(wrongPassword).Login(context.Background(), "ivan", "wrong password")

	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestAuthService_Login_UnexpectedRepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errRepository
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "ivan", "pw")
	require.ErrorIs(t, err, errRepository)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestAuthService_CreateToken_ParseToken_Roundtrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 7, Username: "ivan"})
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(context.Background(), token.String())
	require.NoError(t, err)

	username, err := parsed.GetUsername()
	require.NoError(t, err)
	assert.Equal(t, "ivan", username)
}

func TestAuthService_ParseToken_InvalidToken(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.ParseToken(context.Background(), tokenString)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid, "token %q", tokenString)
	}
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	issuing := newTestAuthService(&mockUserRepository{})
	verifying := newTestAuthService(&mockUserRepository{})
	verifying.tokenSignKey = "another-key"

	token, err := issuing.CreateToken(context.Background(), models.User{Username: "ivan"})
	require.NoError(t, err)

	_, err = verifying.ParseToken(context.Background(), token.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ─────────────────────────────────────────────
// ResolveToken
// ─────────────────────────────────────────────

func TestAuthService_ResolveToken_Success(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			assert.Equal(t, "ivan", username)
			return models.User{UserID: 7, Username: "ivan"}, nil
		},
	}
	svc := newTestAuthService(repo)

	token, err := svc.CreateToken(context.Background(), models.User{Username: "ivan"})
	require.NoError(t, err)

	user, err := svc.ResolveToken(context.Background(), token.String())
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_ResolveToken_Failures(t *testing.T) {
	vanishedUser := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(vanishedUser)

	token, err := svc.CreateToken(context.Background(), models.User{Username: "deleted"})
	require.NoError(t, err)

	// subject no longer matches a stored account
	_, err = svc.ResolveToken(context.Background(), token.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	// malformed token never reaches the repository
	_, err = svc.ResolveToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
