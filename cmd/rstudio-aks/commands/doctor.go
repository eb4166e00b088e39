package commands

import (
	"github.com/spf13/cobra"

	"github.com/mamonaco1973/azure-rstudio-aks/cmd/rstudio-aks/handlers"
)

// Doctor returns the command for diagnosing the local environment.
func Doctor() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that this machine can run a deployment",
		Long: `Check the local environment for everything a deployment needs:
terraform and docker on PATH, a loadable configuration, and an Azure
subscription to target.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Doctor(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: rstudio-aks.yaml)")

	return cmd
}
