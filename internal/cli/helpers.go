// Shared helpers for breadcrumbs CLI commands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mesh-intelligence/breadcrumbs/internal/routefile"
	"github.com/mesh-intelligence/breadcrumbs/pkg/sqlite"
	"github.com/mesh-intelligence/breadcrumbs/pkg/types"
)

// codedError carries the exit code a failed command should produce.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

func userError(err error) error { return &codedError{code: exitUserError, err: err} }
func sysError(err error) error  { return &codedError{code: exitSysError, err: err} }

// classify maps a domain error to the exit code category it belongs to.
func classify(err error) error {
	switch {
	case errors.Is(err, types.ErrTableNotFound),
		errors.Is(err, types.ErrInvalidTableName),
		errors.Is(err, types.ErrNoMatch),
		errors.Is(err, types.ErrInvalidPath),
		errors.Is(err, types.ErrEmptyPath),
		errors.Is(err, types.ErrUnknownFormat):
		return userError(err)
	default:
		return sysError(err)
	}
}

// attachStore resolves the store configuration and attaches it. The caller
// must defer store.Detach().
func (a *app) attachStore() (types.RouteStore, error) {
	store := sqlite.NewStore(a.logger)
	cfg := types.StoreConfig{Backend: types.BackendSQLite, DataDir: a.settings.DataDir}
	if err := store.Attach(cfg); err != nil {
		return nil, sysError(fmt.Errorf("attach store: %w", err))
	}
	return store, nil
}

// loadTable returns the route table named by --routes or --table, falling
// back to the table config key.
func (a *app) loadTable(routesFile, tableName string) (types.RouteTable, error) {
	if routesFile != "" {
		table, err := routefile.Load(routesFile)
		if err != nil {
			return types.RouteTable{}, userError(fmt.Errorf("load routes: %w", err))
		}
		return table, nil
	}
	if tableName == "" {
		tableName = a.settings.Table
	}
	if tableName == "" {
		return types.RouteTable{}, userError(errors.New("no route table: pass --routes FILE or --table NAME"))
	}

	store, err := a.attachStore()
	if err != nil {
		return types.RouteTable{}, err
	}
	defer store.Detach()

	table, err := store.LoadTable(tableName)
	if err != nil {
		return types.RouteTable{}, classify(err)
	}
	return table, nil
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return sysError(fmt.Errorf("encode output: %w", err))
	}
	return nil
}
