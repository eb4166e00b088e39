package handlers

import (
	"context"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning/image"
)

// Image builds and pushes the RStudio container image on its own,
// without applying any terraform layer. The target registry must
// already exist; it is discovered by prefix the same way apply does it.
//
// If the configured tag is already present in the registry, nothing is
// built and the command succeeds immediately.
func Image(ctx context.Context, configPath string) error {
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

	pCtx := provisioning.NewContext(ctx, cfg, az, nil, newDockerRunner())
	pCtx.Observer = observer

	registry, err := az.RegistryByPrefix(ctx, cfg.ResourcePrefix)
	if err != nil {
		return err
	}
	pCtx.State.Registry = registry

	return provisioning.RunPhases(pCtx, []provisioning.Phase{image.NewBuilder()})
}
