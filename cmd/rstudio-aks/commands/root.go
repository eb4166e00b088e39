// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the rstudio-aks CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rstudio-aks",
		Short: "Deploy RStudio Server on Azure Kubernetes Service",
	}

	cmd.AddCommand(Apply())
	cmd.AddCommand(Destroy())
	cmd.AddCommand(Validate())
	cmd.AddCommand(Image())
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Version())

	return cmd
}
