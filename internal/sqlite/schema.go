package sqlite

// Schema DDL for the route table store.
const (
	createRouteTables = `CREATE TABLE route_tables (
    table_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    version TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createRoutes = `CREATE TABLE routes (
    route_id TEXT PRIMARY KEY,
    table_id TEXT NOT NULL,
    parent_id TEXT,
    ordinal INTEGER NOT NULL,
    path TEXT NOT NULL,
    name TEXT,
    meta TEXT NOT NULL,
    FOREIGN KEY (table_id) REFERENCES route_tables(table_id) ON DELETE CASCADE
);`
)

// Index DDL for common queries.
const (
	idxRoutesTable  = `CREATE INDEX idx_routes_table ON routes(table_id, ordinal);`
	idxRoutesParent = `CREATE INDEX idx_routes_parent ON routes(parent_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createRouteTables,
	createRoutes,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxRoutesTable,
	idxRoutesParent,
}
