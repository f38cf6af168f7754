// Package repomanager wires repository constructors to a database handle and
// owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/stakeboard/stakeboard/internal/dbx"
	"github.com/stakeboard/stakeboard/internal/server/repositories/statuschecks"
	"github.com/stakeboard/stakeboard/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX and
// exposes a schema migration hook. Passing a *sql.Tx instead of the root
// *sql.DB yields transactional repositories.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	StatusChecks(db dbx.DBTX) statuschecks.Repository
}
