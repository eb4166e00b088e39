package commands

import (
	"github.com/spf13/cobra"

	"github.com/mamonaco1973/azure-rstudio-aks/cmd/rstudio-aks/handlers"
)

// Validate returns the command for checking a deployed environment.
func Validate() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that the deployed environment answers",
		Long: `Check a deployed RStudio environment without changing it.

The ingress DNS name is resolved from the public IP resource and the
RStudio sign-in page is polled until it answers with the expected
status or the attempt budget runs out.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Validate(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: rstudio-aks.yaml)")

	return cmd
}
