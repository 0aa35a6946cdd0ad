package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/breadcrumbs/internal/server"
	"github.com/mesh-intelligence/breadcrumbs/pkg/breadcrumbs"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr       string
		routesFile string
		tableName  string
		memoSize   int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve breadcrumb trails over HTTP",
		Long: `Serve answers GET /breadcrumbs?path=... with the computed trail for one
route table. It also exposes /routes, /healthz and Prometheus /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.loadTable(routesFile, tableName)
			if err != nil {
				return err
			}

			srv := server.New(table, server.Options{
				Config:   a.settings.Config,
				Logger:   a.logger,
				MemoSize: memoSize,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := srv.Run(ctx, addr); err != nil {
				return sysError(fmt.Errorf("serve: %w", err))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&routesFile, "routes", "", "route file (YAML or JSON)")
	cmd.Flags().StringVar(&tableName, "table", "", "stored route table name")
	cmd.Flags().IntVar(&memoSize, "memo-size", breadcrumbs.DefaultMemoSize, "number of computed trails to keep")
	cmd.MarkFlagsMutuallyExclusive("routes", "table")
	return cmd
}
