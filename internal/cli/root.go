// Package cli implements the breadcrumbs command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/breadcrumbs/internal/paths"
	"github.com/mesh-intelligence/breadcrumbs/pkg/breadcrumbs"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
}

// app is the state shared by the subcommands of one root command.
type app struct {
	flags    rootFlags
	settings settings
	logger   *slog.Logger
	stderr   io.Writer
}

// NewRootCmd creates the top-level "breadcrumbs" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: slog.Default(), stderr: os.Stderr}

	root := &cobra.Command{
		Use:     "breadcrumbs",
		Short:   "Compute navigation breadcrumb trails from a route table",
		Long:    "Breadcrumbs derives the trail for a URL path from a table of routes\nand their metadata, and stores named route tables locally.",
		Version: breadcrumbs.Version,
		// Errors are printed once by Execute.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.stderr = cmd.ErrOrStderr()
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/breadcrumbs)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $XDG_DATA_HOME/breadcrumbs)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newTrailCmd(a))
	root.AddCommand(newRoutesCmd(a))
	root.AddCommand(newServeCmd(a))
	root.AddCommand(newConfigCmd(a))

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "Error:", err)
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	// Flag and argument errors come from cobra itself.
	return exitUserError
}

// setup loads .env, resolves directories, reads config.yaml and builds the
// logger. It runs before every subcommand.
func (a *app) setup() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return userError(fmt.Errorf("load .env: %w", err))
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	s, err := loadSettings(configDir)
	if err != nil {
		return userError(err)
	}

	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, s.DataDir, configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	s.DataDir = dataDir
	if a.flags.logLevel != "" {
		s.LogLevel = a.flags.logLevel
	}

	logger, err := newLogger(s.LogLevel, a.stderr)
	if err != nil {
		return userError(err)
	}
	a.settings = s
	a.logger = logger
	return nil
}

// newLogger builds a text logger on w at the named level.
func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}
