// Package main is the entry point for the rstudio-aks CLI.
//
// rstudio-aks deploys an RStudio Server environment on Azure Kubernetes
// Service: a Microsoft Entra Domain Services layer, supporting services
// (key vault, storage, container registry), a container image build, and
// the AKS cluster itself, applied as ordered terraform layers.
//
// Commands: apply, destroy, validate, image, doctor, version.
//
// For detailed usage information, run:
//
//	rstudio-aks --help
package main

import (
	"fmt"
	"os"

	"github.com/mamonaco1973/azure-rstudio-aks/cmd/rstudio-aks/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
