package handlers

import (
	"context"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning"
)

// Validate checks a deployed environment without changing it: it
// resolves the ingress DNS name and polls the sign-in page until it
// answers or the attempt budget runs out.
func Validate(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	az, err := newAzureClient(cfg.SubscriptionID)
	if err != nil {
		return err
	}

	return newPoller(az, cfg, provisioning.NewObserver()).Wait(ctx)
}
