package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize breadcrumbs configuration and storage",
		Long:  "Create the configuration and data directories, write a default config.yaml\nif none exists, and initialize the route table store.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// setup has already written config.yaml; attaching creates the data files.
			store, err := a.attachStore()
			if err != nil {
				return err
			}
			if err := store.Detach(); err != nil {
				return sysError(fmt.Errorf("finalize storage: %w", err))
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"config_dir": a.settings.ConfigDir,
					"data_dir":   a.settings.DataDir,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized breadcrumbs\n  config: %s\n  data:   %s\n",
				a.settings.ConfigDir, a.settings.DataDir)
			return nil
		},
	}
}
