package types

// RouteStore keeps named route tables across process restarts. Callers
// attach to a backend, save or load tables by name, and detach when done.
type RouteStore interface {
	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config StoreConfig) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, every other operation returns ErrStoreDetached.
	Detach() error

	// SaveTable stores table under its name, replacing any previous table
	// of that name, and returns it with the Version of the stored revision.
	// Returns ErrInvalidTableName if the name is not acceptable.
	SaveTable(table RouteTable) (RouteTable, error)

	// LoadTable returns the table with the given name.
	// Returns ErrTableNotFound if no such table exists.
	LoadTable(name string) (RouteTable, error)

	// ListTables summarizes every stored table, ordered by name.
	ListTables() ([]TableInfo, error)

	// DeleteTable removes the table with the given name.
	// Returns ErrTableNotFound if no such table exists.
	DeleteTable(name string) error
}
