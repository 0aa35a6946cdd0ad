// Package sqlite implements the route table store. JSONL files in the data
// directory are the source of truth; SQLite is the query engine and is
// rebuilt from JSONL on every Attach.
package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/breadcrumbs/pkg/types"
)

// Store keeps named route tables. Every write goes to SQLite first and is
// then persisted to JSONL before the call returns.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.StoreConfig
	db       *sql.DB
	logger   *slog.Logger
}

var _ types.RouteStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger the store reports to.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore creates a new store. The store is not attached; call Attach with
// a StoreConfig to initialize.
func NewStore(opts ...Option) *Store {
	s := &Store{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach initializes the store with the given configuration. It creates
// DataDir if needed, recreates the SQLite schema and loads the JSONL files.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.StoreConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	dbPath := filepath.Join(dataDir, dbFile)
	// The database is a cache; start from an empty schema.
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	db.SetMaxOpenConns(1)

	for _, ddl := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	if err := initJSONLFiles(dataDir); err != nil {
		db.Close()
		return err
	}

	n, err := loadAllJSONL(db, dataDir)
	if err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	config.DataDir = dataDir
	s.db = db
	s.config = config
	s.attached = true
	s.logger.Debug("route store attached", "data_dir", dataDir, "rows", n)
	return nil
}

// Detach releases the SQLite connection. After Detach, all operations
// return ErrStoreDetached. Detach is idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	s.attached = false
	s.logger.Debug("route store detached", "data_dir", s.config.DataDir)
	return nil
}

// generateUUID generates a new UUID v7 for row IDs and table versions.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
