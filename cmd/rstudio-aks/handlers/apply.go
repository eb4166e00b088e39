package handlers

import (
	"context"
	"fmt"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/config"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning/access"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning/cluster"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning/directory"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning/image"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning/services"
)

// applyPhases returns the deployment pipeline in order. Each phase
// depends on resource names the previous ones discovered.
func applyPhases() []provisioning.Phase {
	return []provisioning.Phase{
		directory.NewProvisioner(),
		services.NewProvisioner(),
		image.NewBuilder(),
		cluster.NewProvisioner(),
		access.NewProvisioner(),
	}
}

// Apply deploys the full RStudio environment.
//
// This function orchestrates the complete deployment workflow:
//  1. Loads and validates the deployment configuration
//  2. Verifies terraform and docker are installed
//  3. Applies the directory, services, and cluster terraform layers,
//     building and pushing the RStudio image in between
//  4. Writes the kubeconfig and verifies the admin secret is readable
//  5. Polls the RStudio sign-in page until it answers
//
// The pipeline stops at the first failing phase; already-applied layers
// are left in place so a re-run can continue from where it stopped.
func Apply(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	observer := provisioning.NewObserver()
	if err := checkPrerequisites(observer); err != nil {
		return err
	}

	az, err := newAzureClient(cfg.SubscriptionID)
	if err != nil {
		return err
	}

	pCtx := provisioning.NewContext(ctx, cfg, az, newTerraformRunner(), newDockerRunner())
	pCtx.Observer = observer

	if err := provisioning.RunPhases(pCtx, applyPhases()); err != nil {
		return err
	}

	if err := newPoller(az, cfg, observer).Wait(ctx); err != nil {
		return fmt.Errorf("deployment applied but the endpoint never became ready: %w", err)
	}

	printApplySuccess(cfg)
	return nil
}

// printApplySuccess outputs completion message and next steps for the user.
func printApplySuccess(cfg *config.Config) {
	fmt.Printf("\nDeployment complete!\n")
	fmt.Printf("Kubeconfig saved to: %s\n", cfg.KubeconfigPath)
	fmt.Printf("\nYou can now inspect the cluster with:\n")
	fmt.Printf("  export KUBECONFIG=%s\n", cfg.KubeconfigPath)
	fmt.Printf("  kubectl get pods\n")
	fmt.Printf("\nSign-in credentials are in the %q secret of the key vault.\n", cfg.AdminSecretName)
}
