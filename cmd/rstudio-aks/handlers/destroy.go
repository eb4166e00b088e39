package handlers

import (
	"context"
	"fmt"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning/destroy"
)

// Destroy tears the deployment down.
//
// Layers are destroyed in reverse dependency order: the AKS cluster
// first, then the supporting services, then the domain services layer.
// Resource names the cluster layer was applied with are re-discovered
// from the subscription before the first destroy runs.
func Destroy(ctx context.Context, configPath string) error {
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

	// No docker runner: destroy never touches images.
	pCtx := provisioning.NewContext(ctx, cfg, az, newTerraformRunner(), nil)
	pCtx.Observer = observer

	if err := provisioning.RunPhases(pCtx, destroy.Phases()); err != nil {
		return fmt.Errorf("destroy failed: %w", err)
	}

	observer.Infof("All layers destroyed")
	return nil
}
