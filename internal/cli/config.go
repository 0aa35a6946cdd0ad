// Config loading for the breadcrumbs CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/breadcrumbs/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "BREADCRUMBS"

	// Config keys.
	cfgKeyPrefix        = "prefix"
	cfgKeyTrailingSlash = "trailing_slash"
	cfgKeyDataDir       = "data_dir"
	cfgKeyTable         = "table"
	cfgKeyLogLevel      = "log_level"

	defaultLogLevel = "info"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# breadcrumbs configuration

# Prefix of the rendering component (<prefix>Breadcrumbs) and the
# composable (use<prefix>Breadcrumbs).
prefix: Sgx

# Trailing slash policy for link targets: true, false, or leave empty to
# keep targets as joined.
trailing_slash:

# Route table used when --table and --routes are not given.
# table: site

# Data directory (optional; overridable by --data-dir and BREADCRUMBS_DATA_DIR)
# data_dir:

log_level: info
`

// settings are the effective CLI settings after flags, environment and
// config.yaml are combined.
type settings struct {
	ConfigDir string
	DataDir   string
	Config    types.Config
	Table     string
	LogLevel  string
}

// loadSettings reads config.yaml from configDir with BREADCRUMBS_* env
// overrides. It creates the config directory and a default config.yaml on
// first run.
func loadSettings(configDir string) (settings, error) {
	v, err := loadConfig(configDir)
	if err != nil {
		return settings{}, err
	}

	s := settings{
		ConfigDir: configDir,
		DataDir:   v.GetString(cfgKeyDataDir),
		Table:     v.GetString(cfgKeyTable),
		LogLevel:  v.GetString(cfgKeyLogLevel),
		Config:    types.Config{Prefix: v.GetString(cfgKeyPrefix)},
	}
	ts, err := parseTrailingSlash(v.GetString(cfgKeyTrailingSlash))
	if err != nil {
		return settings{}, fmt.Errorf("config %s: %w", cfgKeyTrailingSlash, err)
	}
	s.Config.TrailingSlash = ts
	if err := s.Config.Validate(); err != nil {
		return settings{}, fmt.Errorf("config %s: %w", cfgKeyPrefix, err)
	}
	return s, nil
}

// loadConfig reads config.yaml from the resolved config directory using Viper.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyPrefix, types.DefaultPrefix)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// parseTrailingSlash reads the tri-state trailing slash policy. Empty and
// "unset" leave targets as joined.
func parseTrailingSlash(raw string) (*bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "unset") {
		return nil, nil
	}
	b, err := cast.ToBoolE(raw)
	if err != nil {
		return nil, fmt.Errorf("want true, false or unset, got %q", raw)
	}
	return &b, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
