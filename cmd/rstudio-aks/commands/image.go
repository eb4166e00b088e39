package commands

import (
	"github.com/spf13/cobra"

	"github.com/mamonaco1973/azure-rstudio-aks/cmd/rstudio-aks/handlers"
)

// Image returns the command for building the container image on its own.
func Image() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "image",
		Short: "Build and push the RStudio container image",
		Long: `Build and push the RStudio container image without touching any
infrastructure layer.

The target container registry must already exist; it is discovered by
name prefix the same way apply discovers it. If the configured tag is
already present in the registry nothing is built.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Image(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: rstudio-aks.yaml)")

	return cmd
}
