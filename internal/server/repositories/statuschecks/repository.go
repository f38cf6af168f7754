// Package statuschecks persists client liveness pings.
package statuschecks

import (
	"context"

	"github.com/stakeboard/stakeboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, check *models.StatusCheck) (*models.StatusCheck, error)
	// List returns the most recent checks, newest first, capped at limit.
	List(ctx context.Context, limit int) ([]*models.StatusCheck, error)
}
