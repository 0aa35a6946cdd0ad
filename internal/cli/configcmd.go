package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/breadcrumbs/pkg/breadcrumbs"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := breadcrumbs.ResolveConfig(a.settings.Config)
			trailingSlash := "unset"
			if cfg.TrailingSlash != nil {
				trailingSlash = strconv.FormatBool(*cfg.TrailingSlash)
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"config_dir":     a.settings.ConfigDir,
					"data_dir":       a.settings.DataDir,
					"prefix":         cfg.Prefix,
					"trailing_slash": trailingSlash,
					"table":          a.settings.Table,
					"log_level":      a.settings.LogLevel,
					"component":      breadcrumbs.ComponentName(cfg),
					"composable":     breadcrumbs.ComposableName(cfg),
				})
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			rows := [][2]string{
				{"config_dir", a.settings.ConfigDir},
				{"data_dir", a.settings.DataDir},
				{"prefix", cfg.Prefix},
				{"trailing_slash", trailingSlash},
				{"table", a.settings.Table},
				{"log_level", a.settings.LogLevel},
				{"component", breadcrumbs.ComponentName(cfg)},
				{"composable", breadcrumbs.ComposableName(cfg)},
			}
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1])
			}
			return tw.Flush()
		},
	}
}
