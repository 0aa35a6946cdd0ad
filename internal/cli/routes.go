package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/breadcrumbs/internal/routefile"
	"github.com/mesh-intelligence/breadcrumbs/pkg/breadcrumbs"
)

func newRoutesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Manage stored route tables",
	}
	cmd.AddCommand(newRoutesImportCmd(a))
	cmd.AddCommand(newRoutesListCmd(a))
	cmd.AddCommand(newRoutesShowCmd(a))
	cmd.AddCommand(newRoutesDeleteCmd(a))
	return cmd
}

func newRoutesImportCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a YAML or JSON route file as a named table",
		Long: `Import reads a route file and stores it as a route table, replacing any
table of the same name. The name comes from --name, then the file's name
field, then the file name without extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := routefile.Load(args[0])
			if err != nil {
				return userError(fmt.Errorf("load routes: %w", err))
			}
			if name != "" {
				table.Name = name
			}

			store, err := a.attachStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			saved, err := store.SaveTable(table)
			if err != nil {
				return classify(err)
			}
			count := len(breadcrumbs.FlattenRoutes(saved.Routes))

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"name":        saved.Name,
					"version":     saved.Version,
					"route_count": count,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%d routes, version %s)\n", saved.Name, count, saved.Version)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "table name (default: name field or file name)")
	return cmd
}

func newRoutesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored route tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.attachStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			infos, err := store.ListTables()
			if err != nil {
				return sysError(err)
			}
			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), infos)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tROUTES\tUPDATED\tVERSION")
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", info.Name, info.RouteCount, info.UpdatedAt.Local().Format(time.DateTime), info.Version)
			}
			return tw.Flush()
		},
	}
}

func newRoutesShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the routes of a stored table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.loadTable("", args[0])
			if err != nil {
				return err
			}
			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), table)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tNAME\tTITLE")
			for _, r := range breadcrumbs.FlattenRoutes(table.Routes) {
				path := r.Path
				if !r.IsLeaf() {
					path += " (layout)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", path, r.Name, r.Meta.Title)
			}
			return tw.Flush()
		},
	}
}

func newRoutesDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored route table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.attachStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			if err := store.DeleteTable(args[0]); err != nil {
				return classify(err)
			}
			if !a.flags.jsonMode {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			}
			return nil
		},
	}
}
