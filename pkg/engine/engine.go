package engine

import (
	"context"

	"github.com/selebrow/dbquota/pkg/models"
)

// Engine is a blocking connection to the shared database server hosting tenant databases.
// Implementations run every call on the same underlying session, one at a time, until Release
// hands the session back. The next call after Release opens a new session.
type Engine interface {
	SelectDB(ctx context.Context, name string) error
	// SchemaSize returns total data and index length of all tables in schema, 0 if there are none
	SchemaSize(ctx context.Context, schema string) (int64, error)
	// SchemaSizes returns aggregated size per schema, schemas without tables are absent
	SchemaSizes(ctx context.Context) (map[string]int64, error)
	ListDatabases(ctx context.Context) ([]string, error)
	WritePrivileges(ctx context.Context, db string) ([]models.PrivilegeState, error)
	SetWritePrivileges(ctx context.Context, db string, granted bool) error
	FlushPrivileges(ctx context.Context) error
	ListProcesses(ctx context.Context) ([]models.Process, error)
	KillConnection(ctx context.Context, id uint64) error
	Release()
}
