package commands

import (
	"github.com/spf13/cobra"

	"github.com/mamonaco1973/azure-rstudio-aks/cmd/rstudio-aks/handlers"
)

// Destroy returns the command for tearing the environment down.
func Destroy() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Destroy the RStudio environment",
		Long: `Destroy all infrastructure layers of the RStudio environment.

Layers are destroyed in reverse order of creation: the AKS cluster
first, then the supporting services, then the domain services layer.
The private DNS zone virtual network link is removed ahead of the rest
of the services layer so the dependent resources release cleanly.

Examples:
  # Destroy using rstudio-aks.yaml in current directory
  rstudio-aks destroy

  # Destroy using a specific config file
  rstudio-aks destroy -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: rstudio-aks.yaml)")

	return cmd
}
