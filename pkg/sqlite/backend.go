// Package sqlite provides the public API for the SQLite route table store.
// It exposes the factory for creating stores while keeping the schema and
// JSONL persistence internal.
package sqlite

import (
	"log/slog"

	"github.com/mesh-intelligence/breadcrumbs/internal/sqlite"
	"github.com/mesh-intelligence/breadcrumbs/pkg/types"
)

// NewStore creates a new SQLite route store that reports to logger; a nil
// logger means slog.Default(). The store is not attached; call Attach with
// a StoreConfig to initialize.
//
// Example:
//
//	store := sqlite.NewStore(nil)
//	err := store.Attach(types.StoreConfig{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".breadcrumbs",
//	})
//	defer store.Detach()
func NewStore(logger *slog.Logger) types.RouteStore {
	return sqlite.NewStore(sqlite.WithLogger(logger))
}
