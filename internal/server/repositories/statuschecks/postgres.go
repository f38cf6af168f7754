package statuschecks

import (
	"context"
	"fmt"

	"github.com/stakeboard/stakeboard/internal/dbx"
	"github.com/stakeboard/stakeboard/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, check *models.StatusCheck) (*models.StatusCheck, error) {

	query :=
		`INSERT INTO status_checks (id, client_name, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		check.ID, check.ClientName, check.Timestamp).Scan(&check.Timestamp)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return check, nil
}

func (r *PostgresRepository) List(ctx context.Context, limit int) ([]*models.StatusCheck, error) {
	query :=
		`SELECT id, client_name, created_at FROM status_checks
		 ORDER BY created_at DESC
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	checks := make([]*models.StatusCheck, 0)
	for rows.Next() {
		check := &models.StatusCheck{}
		if err := rows.Scan(&check.ID, &check.ClientName, &check.Timestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		checks = append(checks, check)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return checks, nil
}
