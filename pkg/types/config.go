package types

import (
	"errors"
	"regexp"
)

// DefaultPrefix names the rendering component (<Prefix>Breadcrumbs) and the
// composable (use<Prefix>Breadcrumbs) when no layer sets a prefix.
const DefaultPrefix = "Sgx"

// Config holds the settings that shape a computed trail.
//
// TrailingSlash is tri-state: nil leaves every resolved target as joined,
// true forces a trailing slash and false strips it.
type Config struct {
	Prefix        string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	TrailingSlash *bool  `json:"trailingSlash,omitempty" yaml:"trailingSlash,omitempty"`
}

// Config validation errors.
var (
	ErrPrefixInvalid = errors.New("prefix must start with a letter and contain only letters and digits")
)

var prefixPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// Validate checks that the Config is well-formed. An empty prefix is valid
// and means "use the default".
func (c Config) Validate() error {
	if c.Prefix != "" && !prefixPattern.MatchString(c.Prefix) {
		return ErrPrefixInvalid
	}
	return nil
}

// Bool returns a pointer to b, for building Config literals.
func Bool(b bool) *bool {
	return &b
}

// StoreConfig holds backend selection and parameters for the route table
// store.
type StoreConfig struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// StoreConfig validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the StoreConfig is well-formed.
func (c StoreConfig) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}
