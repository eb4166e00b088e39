package commands

import (
	"github.com/spf13/cobra"

	"github.com/mamonaco1973/azure-rstudio-aks/cmd/rstudio-aks/handlers"
)

// Apply returns the command for deploying the full environment.
//
// Optional flags:
//
//	--config, -c: Path to deployment configuration YAML file (default: auto-detect rstudio-aks.yaml)
//
// Environment variables:
//
//	AZURE_SUBSCRIPTION_ID: Azure subscription to deploy into (required unless set in config)
func Apply() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Deploy the RStudio environment",
		Long: `Deploy the complete RStudio environment on Azure.

This command applies the three infrastructure layers in order: the
Microsoft Entra Domain Services layer, the supporting services (key
vault, storage, container registry), and the AKS cluster. The RStudio
container image is built and pushed between the services and cluster
layers, unless the configured tag is already in the registry.

After the last layer is applied, the kubeconfig is written locally and
the RStudio sign-in page is polled until it answers.

If no config file is specified, it looks for rstudio-aks.yaml in the
current directory and falls back to built-in defaults.

Examples:
  # Deploy using rstudio-aks.yaml in current directory
  rstudio-aks apply

  # Deploy using a specific config file
  rstudio-aks apply -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: rstudio-aks.yaml)")

	return cmd
}
