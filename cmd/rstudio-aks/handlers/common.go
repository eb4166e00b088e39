// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/config"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/healthcheck"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/platform/azure"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/platform/docker"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/platform/terraform"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/util/prerequisites"
)

// ReadinessWaiter blocks until the deployed endpoint answers.
// Matches healthcheck.Poller.
type ReadinessWaiter interface {
	Wait(ctx context.Context) error
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newAzureClient creates an Azure control-plane client.
	newAzureClient = func(subscriptionID string) (azure.Client, error) {
		return azure.NewRealClient(subscriptionID)
	}

	// newTerraformRunner creates a terraform CLI runner.
	newTerraformRunner = func() terraform.Runner {
		return terraform.NewCLIRunner()
	}

	// newDockerRunner creates a docker CLI runner.
	newDockerRunner = func() docker.Runner {
		return docker.NewCLIRunner()
	}

	// newPoller creates the endpoint readiness poller.
	newPoller = func(resolver healthcheck.AddressResolver, cfg *config.Config, observer provisioning.Observer) ReadinessWaiter {
		return healthcheck.NewPoller(resolver, cfg, observer)
	}

	// checkDefaultPrereqs runs prerequisite checks.
	checkDefaultPrereqs = prerequisites.CheckDefault

	// loadConfig resolves the effective configuration.
	loadConfig = config.Load
)

// checkPrerequisites verifies required client tools are available and
// logs the ones that were found.
func checkPrerequisites(observer provisioning.Observer) error {
	results := checkDefaultPrereqs()

	for _, r := range results.Results {
		if r.Found {
			version := r.Version
			if version == "" {
				version = "unknown version"
			}
			observer.Infof("Found %s (%s)", r.Tool.Name, version)
		}
	}

	if err := results.Error(); err != nil {
		return fmt.Errorf("prerequisites check failed: %w", err)
	}

	return nil
}
