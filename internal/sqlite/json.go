// JSON record structures for route table persistence.
// These structures define the JSONL record format for data files.
package sqlite

import "encoding/json"

// JSONL file names in the data directory.
const (
	routeTablesJSONL = "route_tables.jsonl"
	routesJSONL      = "routes.jsonl"
)

// dbFile is the SQLite query cache rebuilt from JSONL on every Attach.
const dbFile = "tables.db"

// routeTableJSON represents a route table in route_tables.jsonl.
type routeTableJSON struct {
	TableID   string `json:"table_id"`
	Name      string `json:"name"`
	Version   string `json:"version"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// routeJSON represents one route row in routes.jsonl. Nested routes point
// at their parent by ParentID; Ordinal orders siblings.
type routeJSON struct {
	RouteID  string          `json:"route_id"`
	TableID  string          `json:"table_id"`
	ParentID *string         `json:"parent_id"`
	Ordinal  int             `json:"ordinal"`
	Path     string          `json:"path"`
	Name     string          `json:"name,omitempty"`
	Meta     json.RawMessage `json:"meta"`
}
