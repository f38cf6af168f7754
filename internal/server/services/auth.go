// Package services contains server-side business logic. This file implements
// AuthService: account signup and login with bearer-token issuance.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stakeboard/stakeboard/internal/common"
	"github.com/stakeboard/stakeboard/internal/server/auth"
	"github.com/stakeboard/stakeboard/internal/server/config"
	"github.com/stakeboard/stakeboard/internal/server/models"
	"github.com/stakeboard/stakeboard/internal/server/repositories/repomanager"
)

// AuthResult is the in-band success payload of signup and login.
type AuthResult struct {
	Token    string
	Username string
}

// AuthService provides authentication-related operations:
// - Signup: create an account and mint its first token
// - Login: verify credentials and mint a token
//
// Failures stay in-band: callers receive sentinel errors from
// internal/common, never panics.
type AuthService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// NormalizeEmail canonicalizes an email for storage and lookup so accounts
// cannot differ only by case or surrounding whitespace.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new account and returns its first bearer token.
// A taken email yields common.ErrorAlreadyRegistered; the unique constraint
// on insert catches the race where two signups pass the existence check
// concurrently. Any other failure collapses to common.ErrorInternal.
func (s *AuthService) Signup(ctx context.Context, email, password, username string) (*AuthResult, error) {
	email = NormalizeEmail(email)
	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyRegistered
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyRegistered) {
			return nil, common.ErrorAlreadyRegistered
		}
		return nil, common.ErrorInternal
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{Token: token, Username: user.Username}, nil
}

// Login verifies credentials and mints a bearer token. An unknown email and
// a wrong password both return common.ErrorInvalidCredentials so the
// response cannot reveal whether the account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{Token: token, Username: user.Username}, nil
}
