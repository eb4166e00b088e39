// Package services provisions the shared services layer: virtual network,
// the NFS storage account for home directories and the container registry.
package services

import (
	"fmt"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning"
)

// Provisioner applies the services terraform layer and discovers the
// storage account and container registry it created.
type Provisioner struct{}

// NewProvisioner creates a services provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the Phase interface.
func (p *Provisioner) Name() string {
	return "services"
}

// Provision implements the Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	if ctx.State.Vault.Name == "" {
		return &provisioning.PreconditionError{Name: "vault name from directory phase"}
	}

	dir := ctx.Config.Terraform.ServicesDir
	vars := map[string]string{"vault_name": ctx.State.Vault.Name}

	if err := ctx.Terraform.Init(ctx, dir); err != nil {
		return err
	}
	if err := ctx.Terraform.Apply(ctx, dir, vars); err != nil {
		return fmt.Errorf("services layer: %w", err)
	}

	account, err := ctx.Azure.StorageAccountByPrefix(ctx, ctx.Config.ResourcePrefix)
	if err != nil {
		return err
	}
	registry, err := ctx.Azure.RegistryByPrefix(ctx, ctx.Config.ResourcePrefix)
	if err != nil {
		return err
	}

	ctx.Observer.Infof("[services] storage account: %s", account)
	ctx.Observer.Infof("[services] container registry: %s (%s)", registry.Name, registry.LoginServer)
	ctx.State.StorageAccount = account
	ctx.State.Registry = registry
	return nil
}
