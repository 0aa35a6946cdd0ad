// Tests for the route table store lifecycle.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/breadcrumbs/pkg/types"
)

// attachStore attaches a fresh store on dataDir and detaches it at cleanup.
func attachStore(t *testing.T, dataDir string) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Attach(types.StoreConfig{Backend: types.BackendSQLite, DataDir: dataDir}))
	t.Cleanup(func() { s.Detach() })
	return s
}

func TestStore_Attach(t *testing.T) {
	tmpDir := t.TempDir()
	s := attachStore(t, tmpDir)

	for _, name := range []string{dbFile, routeTablesJSONL, routesJSONL} {
		_, err := os.Stat(filepath.Join(tmpDir, name))
		assert.NoError(t, err, "%s should exist after Attach", name)
	}

	err := s.Attach(types.StoreConfig{Backend: types.BackendSQLite, DataDir: tmpDir})
	assert.ErrorIs(t, err, types.ErrAlreadyAttached)
}

func TestStore_AttachCreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")
	attachStore(t, dataDir)

	info, err := os.Stat(dataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStore_AttachValidatesConfig(t *testing.T) {
	tests := []struct {
		name   string
		config types.StoreConfig
		want   error
	}{
		{"empty backend", types.StoreConfig{DataDir: t.TempDir()}, types.ErrBackendEmpty},
		{"unknown backend", types.StoreConfig{Backend: "redis", DataDir: t.TempDir()}, types.ErrBackendUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewStore().Attach(tt.config)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStore_Detach(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Attach(types.StoreConfig{Backend: types.BackendSQLite, DataDir: t.TempDir()}))

	require.NoError(t, s.Detach())
	assert.NoError(t, s.Detach(), "Detach is idempotent")

	_, err := s.LoadTable("site")
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = s.SaveTable(types.RouteTable{Name: "site"})
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = s.ListTables()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	assert.ErrorIs(t, s.DeleteTable("site"), types.ErrStoreDetached)
}

func TestStore_ReattachAfterDetach(t *testing.T) {
	tmpDir := t.TempDir()
	s := NewStore()
	cfg := types.StoreConfig{Backend: types.BackendSQLite, DataDir: tmpDir}

	require.NoError(t, s.Attach(cfg))
	_, err := s.SaveTable(siteTable())
	require.NoError(t, err)
	require.NoError(t, s.Detach())

	require.NoError(t, s.Attach(cfg))
	defer s.Detach()
	table, err := s.LoadTable("site")
	require.NoError(t, err)
	assert.Len(t, table.Routes, 3)
}
