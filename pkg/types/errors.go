package types

import "errors"

// Path and matching errors.
var (
	ErrEmptyPath   = errors.New("path must not be empty")
	ErrInvalidPath = errors.New("path must start with /")
	ErrNoMatch     = errors.New("no route matches path")
)

// Route table store errors.
var (
	ErrStoreDetached    = errors.New("store is detached")
	ErrAlreadyAttached  = errors.New("store is already attached")
	ErrTableNotFound    = errors.New("route table not found")
	ErrInvalidTableName = errors.New("invalid route table name")
)

// Route file errors.
var (
	ErrUnknownFormat = errors.New("unknown route file format")
)
