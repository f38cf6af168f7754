// Package httpapi exposes the public HTTP surface of the server: agent
// endpoints, authentication, status checks and the staking dashboard data.
package httpapi

import (
	"context"

	"github.com/stakeboard/stakeboard/internal/agents"
	"github.com/stakeboard/stakeboard/internal/logging"
	"github.com/stakeboard/stakeboard/internal/server/models"
	"github.com/stakeboard/stakeboard/internal/server/services"
)

// Service seams consumed by the handlers. Concrete implementations live in
// internal/server/services; tests substitute fakes.

type authService interface {
	Signup(ctx context.Context, email, password, username string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
}

type statusService interface {
	Create(ctx context.Context, clientName string) (*models.StatusCheck, error)
	List(ctx context.Context) ([]*models.StatusCheck, error)
}

type stakingService interface {
	Assets(userID string) []*models.StakingAsset
	Overview(userID string) *models.StakingOverview
	RewardsHistory(days int) []*models.RewardHistoryEntry
	Performance(days int) []*models.PerformancePoint
}

// Handlers bundles the dependencies of every endpoint.
type Handlers struct {
	auth     authService
	status   statusService
	staking  stakingService
	registry *agents.Registry
	logger   logging.Logger
}

func NewHandlers(
	auth authService,
	status statusService,
	staking stakingService,
	registry *agents.Registry,
	logger logging.Logger,
) *Handlers {
	return &Handlers{
		auth:     auth,
		status:   status,
		staking:  staking,
		registry: registry,
		logger:   logger,
	}
}
