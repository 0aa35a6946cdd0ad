package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/mesh-intelligence/breadcrumbs/pkg/types"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidTableName reports whether name can name a stored route table.
func ValidTableName(name string) bool {
	return tableNamePattern.MatchString(name)
}

// SaveTable stores table under its name, replacing any table of the same
// name. The stored revision gets a fresh Version, which SaveTable returns
// with the table.
func (s *Store) SaveTable(table types.RouteTable) (types.RouteTable, error) {
	if !ValidTableName(table.Name) {
		return types.RouteTable{}, fmt.Errorf("%w: %q", types.ErrInvalidTableName, table.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return types.RouteTable{}, types.ErrStoreDetached
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	version := generateUUID()

	tx, err := s.db.Begin()
	if err != nil {
		return types.RouteTable{}, err
	}
	defer tx.Rollback()

	var tableID string
	err = tx.QueryRow(`SELECT table_id FROM route_tables WHERE name = ?`, table.Name).Scan(&tableID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		tableID = generateUUID()
		if _, err := tx.Exec(
			`INSERT INTO route_tables (table_id, name, version, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			tableID, table.Name, version, now, now,
		); err != nil {
			return types.RouteTable{}, fmt.Errorf("inserting table %s: %w", table.Name, err)
		}
	case err != nil:
		return types.RouteTable{}, err
	default:
		if _, err := tx.Exec(`DELETE FROM routes WHERE table_id = ?`, tableID); err != nil {
			return types.RouteTable{}, fmt.Errorf("clearing table %s: %w", table.Name, err)
		}
		if _, err := tx.Exec(
			`UPDATE route_tables SET version = ?, updated_at = ? WHERE table_id = ?`,
			version, now, tableID,
		); err != nil {
			return types.RouteTable{}, fmt.Errorf("updating table %s: %w", table.Name, err)
		}
	}

	if err := insertRoutes(tx, tableID, nil, table.Routes); err != nil {
		return types.RouteTable{}, err
	}
	if err := tx.Commit(); err != nil {
		return types.RouteTable{}, err
	}
	if err := s.persistJSONL(); err != nil {
		return types.RouteTable{}, err
	}

	table.Version = version
	s.logger.Info("route table saved", "table", table.Name, "version", version)
	return table, nil
}

func insertRoutes(tx *sql.Tx, tableID string, parentID *string, routes []types.Route) error {
	for i, r := range routes {
		id := generateUUID()
		meta, err := json.Marshal(r.Meta)
		if err != nil {
			return fmt.Errorf("encoding meta of %q: %w", r.Path, err)
		}
		var name any
		if r.Name != "" {
			name = r.Name
		}
		var parent any
		if parentID != nil {
			parent = *parentID
		}
		if _, err := tx.Exec(
			`INSERT INTO routes (route_id, table_id, parent_id, ordinal, path, name, meta) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, tableID, parent, i, r.Path, name, string(meta),
		); err != nil {
			return fmt.Errorf("inserting route %q: %w", r.Path, err)
		}
		if err := insertRoutes(tx, tableID, &id, r.Children); err != nil {
			return err
		}
	}
	return nil
}

// LoadTable returns the stored table with the given name.
// Returns ErrTableNotFound if no such table exists.
func (s *Store) LoadTable(name string) (types.RouteTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return types.RouteTable{}, types.ErrStoreDetached
	}

	var tableID, version string
	err := s.db.QueryRow(`SELECT table_id, version FROM route_tables WHERE name = ?`, name).Scan(&tableID, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return types.RouteTable{}, fmt.Errorf("%w: %s", types.ErrTableNotFound, name)
	}
	if err != nil {
		return types.RouteTable{}, err
	}

	rows, err := s.db.Query(
		`SELECT route_id, parent_id, path, name, meta FROM routes WHERE table_id = ? ORDER BY ordinal`,
		tableID,
	)
	if err != nil {
		return types.RouteTable{}, err
	}
	defer rows.Close()

	type node struct {
		route    types.Route
		children []string
	}
	nodes := make(map[string]*node)
	var roots []string
	var order []struct{ id, parent string }
	for rows.Next() {
		var (
			id, path, meta string
			parent, rname  sql.NullString
		)
		if err := rows.Scan(&id, &parent, &path, &rname, &meta); err != nil {
			return types.RouteTable{}, err
		}
		r := types.Route{Path: path, Name: rname.String}
		if err := json.Unmarshal([]byte(meta), &r.Meta); err != nil {
			return types.RouteTable{}, fmt.Errorf("decoding meta of %q: %w", path, err)
		}
		nodes[id] = &node{route: r}
		order = append(order, struct{ id, parent string }{id, parent.String})
		if !parent.Valid {
			roots = append(roots, id)
		}
	}
	if err := rows.Err(); err != nil {
		return types.RouteTable{}, err
	}
	for _, o := range order {
		if o.parent == "" {
			continue
		}
		if p, ok := nodes[o.parent]; ok {
			p.children = append(p.children, o.id)
		}
	}

	var assemble func(id string) types.Route
	assemble = func(id string) types.Route {
		n := nodes[id]
		r := n.route
		for _, c := range n.children {
			r.Children = append(r.Children, assemble(c))
		}
		return r
	}

	table := types.RouteTable{Name: name, Version: version, Routes: []types.Route{}}
	for _, id := range roots {
		table.Routes = append(table.Routes, assemble(id))
	}
	return table, nil
}

// ListTables summarizes every stored table, ordered by name.
func (s *Store) ListTables() ([]types.TableInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := s.db.Query(`SELECT t.name, t.version, t.updated_at, COUNT(r.route_id)
FROM route_tables t LEFT JOIN routes r ON r.table_id = t.table_id
GROUP BY t.table_id ORDER BY t.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	infos := []types.TableInfo{}
	for rows.Next() {
		var info types.TableInfo
		var updated string
		if err := rows.Scan(&info.Name, &info.Version, &updated, &info.RouteCount); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, updated); err == nil {
			info.UpdatedAt = t
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// DeleteTable removes the named table and its routes.
// Returns ErrTableNotFound if no such table exists.
func (s *Store) DeleteTable(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return types.ErrStoreDetached
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var tableID string
	err = tx.QueryRow(`SELECT table_id FROM route_tables WHERE name = ?`, name).Scan(&tableID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", types.ErrTableNotFound, name)
	}
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM routes WHERE table_id = ?`, tableID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM route_tables WHERE table_id = ?`, tableID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	if err := s.persistJSONL(); err != nil {
		return err
	}
	s.logger.Info("route table deleted", "table", name)
	return nil
}

// persistJSONL rewrites both JSONL files from the current SQLite state.
// The caller must hold s.mu.
func (s *Store) persistJSONL() error {
	tables, err := s.dumpRouteTables()
	if err != nil {
		return err
	}
	if err := writeJSONL(filepath.Join(s.config.DataDir, routeTablesJSONL), tables); err != nil {
		return fmt.Errorf("persisting %s: %w", routeTablesJSONL, err)
	}
	routes, err := s.dumpRoutes()
	if err != nil {
		return err
	}
	if err := writeJSONL(filepath.Join(s.config.DataDir, routesJSONL), routes); err != nil {
		return fmt.Errorf("persisting %s: %w", routesJSONL, err)
	}
	return nil
}

func (s *Store) dumpRouteTables() ([]json.RawMessage, error) {
	rows, err := s.db.Query(`SELECT table_id, name, version, created_at, updated_at FROM route_tables ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var rec routeTableJSON
		if err := rows.Scan(&rec.TableID, &rec.Name, &rec.Version, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		b, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		records = append(records, b)
	}
	return records, rows.Err()
}

func (s *Store) dumpRoutes() ([]json.RawMessage, error) {
	rows, err := s.db.Query(`SELECT route_id, table_id, parent_id, ordinal, path, name, meta FROM routes ORDER BY table_id, ordinal, route_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var (
			rec          routeJSON
			parent, name sql.NullString
			meta         string
		)
		if err := rows.Scan(&rec.RouteID, &rec.TableID, &parent, &rec.Ordinal, &rec.Path, &name, &meta); err != nil {
			return nil, err
		}
		if parent.Valid {
			rec.ParentID = &parent.String
		}
		rec.Name = name.String
		rec.Meta = json.RawMessage(meta)
		b, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		records = append(records, b)
	}
	return records, rows.Err()
}
