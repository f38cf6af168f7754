// Package users implements the credential store: persistence of account
// records keyed by unique email.
package users

import (
	"context"

	"github.com/stakeboard/stakeboard/internal/server/models"
)

// Repository is the minimal store contract the auth core needs.
//
// Create must surface a unique-email violation as
// common.ErrorAlreadyRegistered; that constraint is the final arbiter when
// two concurrent signups race past the existence check.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
