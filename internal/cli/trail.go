package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/breadcrumbs/internal/router"
	"github.com/mesh-intelligence/breadcrumbs/pkg/breadcrumbs"
	"github.com/mesh-intelligence/breadcrumbs/pkg/types"
)

func newTrailCmd(a *app) *cobra.Command {
	var (
		routesFile    string
		tableName     string
		trailingSlash string
	)
	cmd := &cobra.Command{
		Use:   "trail <path>",
		Short: "Print the breadcrumb trail for a path",
		Long: `Trail matches the path against a route table and prints the computed
breadcrumb trail, one "label -> to" line per item with * marking the current page.

Example:
  breadcrumbs trail /docs/getting-started --routes routes.yaml
  breadcrumbs trail /users/42 --table site --trailing-slash true --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.loadTable(routesFile, tableName)
			if err != nil {
				return err
			}

			ts, err := parseTrailingSlash(trailingSlash)
			if err != nil {
				return userError(fmt.Errorf("--trailing-slash: %w", err))
			}
			cfg := breadcrumbs.ResolveConfig(types.Config{TrailingSlash: ts}, a.settings.Config)

			current, err := router.Match(args[0], table.Routes)
			if err != nil {
				return classify(err)
			}
			res := breadcrumbs.Compute(current, table.Routes, cfg)
			a.logger.Debug("trail computed", "path", current.Path, "table", table.Name, "items", len(res.Items))

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			printTrail(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVar(&routesFile, "routes", "", "route file (YAML or JSON)")
	cmd.Flags().StringVar(&tableName, "table", "", "stored route table name")
	cmd.Flags().StringVar(&trailingSlash, "trailing-slash", "", "trailing slash policy: true or false (default: config trailing_slash)")
	cmd.MarkFlagsMutuallyExclusive("routes", "table")
	return cmd
}

func printTrail(w io.Writer, res types.Result) {
	for _, item := range res.Items {
		marker := " "
		if item.Current {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s -> %s\n", marker, item.Label, item.To)
	}
	if !res.Visible {
		fmt.Fprintln(w, "(hidden)")
	}
}
