package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/stakeboard/stakeboard/internal/common"
	"github.com/stakeboard/stakeboard/internal/server/models"
	"github.com/stakeboard/stakeboard/internal/server/repositories/repomanager"
)

// maxStatusChecks caps how many records a single listing returns.
const maxStatusChecks = 1000

// StatusService records and lists client liveness pings.
type StatusService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewStatusService(db *sql.DB, m repomanager.RepositoryManager) *StatusService {
	return &StatusService{db: db, repomanager: m}
}

func (s *StatusService) Create(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	check := &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}

	check, err := s.repomanager.StatusChecks(s.db).Create(ctx, check)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return check, nil
}

func (s *StatusService) List(ctx context.Context) ([]*models.StatusCheck, error) {
	checks, err := s.repomanager.StatusChecks(s.db).List(ctx, maxStatusChecks)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return checks, nil
}
