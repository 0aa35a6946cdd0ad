package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/breadcrumbs/pkg/breadcrumbs"
)

const modulePath = "github.com/mesh-intelligence/breadcrumbs"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the breadcrumbs version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "breadcrumbs %s\nmodule: %s\n", breadcrumbs.Version, modulePath)
			return nil
		},
	}
}
