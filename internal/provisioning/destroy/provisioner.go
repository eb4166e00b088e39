// Package destroy tears the deployment down in dependency order. The
// order is deliberately not the mirror of creation: the private-DNS
// virtual-network link has to go before the rest of the services layer,
// and its deletion needs time to settle.
package destroy

import (
	"fmt"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning"
)

// Phases returns the teardown pipeline: cluster, then services, then
// directory.
func Phases() []provisioning.Phase {
	return []provisioning.Phase{
		&ClusterTeardown{},
		&ServicesTeardown{},
		&DirectoryTeardown{},
	}
}

// ClusterTeardown destroys the AKS layer. It re-discovers the resource
// names the layer was applied with; if any of them is gone already the
// teardown cannot proceed coherently and fails instead of guessing.
type ClusterTeardown struct{}

// Name implements the Phase interface.
func (t *ClusterTeardown) Name() string {
	return "cluster-teardown"
}

// Provision implements the Phase interface.
func (t *ClusterTeardown) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config

	vault, err := ctx.Azure.VaultByPrefix(ctx, cfg.VaultPrefix)
	if err != nil {
		return err
	}
	account, err := ctx.Azure.StorageAccountByPrefix(ctx, cfg.ResourcePrefix)
	if err != nil {
		return err
	}
	registry, err := ctx.Azure.RegistryByPrefix(ctx, cfg.ResourcePrefix)
	if err != nil {
		return err
	}
	ctx.State.Vault = vault
	ctx.State.StorageAccount = account
	ctx.State.Registry = registry

	dir := cfg.Terraform.ClusterDir
	vars := map[string]string{
		"vault_name":           vault.Name,
		"acr_name":             registry.Name,
		"storage_account_name": account,
	}

	if err := ctx.Terraform.Init(ctx, dir); err != nil {
		return err
	}
	if err := ctx.Terraform.Destroy(ctx, dir, vars); err != nil {
		return fmt.Errorf("cluster layer: %w", err)
	}
	return nil
}

// ServicesTeardown destroys the services layer, DNS vnet link first.
type ServicesTeardown struct{}

// Name implements the Phase interface.
func (t *ServicesTeardown) Name() string {
	return "services-teardown"
}

// Provision implements the Phase interface.
func (t *ServicesTeardown) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config
	if ctx.State.Vault.Name == "" {
		return &provisioning.PreconditionError{Name: "vault name from cluster teardown"}
	}

	dir := cfg.Terraform.ServicesDir
	vars := map[string]string{"vault_name": ctx.State.Vault.Name}

	if err := ctx.Terraform.Init(ctx, dir); err != nil {
		return err
	}

	// The vnet link blocks AD DNS teardown; destroy it on its own and
	// give the deletion time to propagate before the full destroy.
	if err := ctx.Terraform.Destroy(ctx, dir, vars, cfg.Terraform.DNSLinkTarget); err != nil {
		return fmt.Errorf("DNS vnet link: %w", err)
	}
	ctx.Observer.Infof("[services-teardown] waiting %v for DNS link deletion to settle", cfg.Terraform.DNSSettle())
	if err := provisioning.Sleep(ctx, cfg.Terraform.DNSSettle()); err != nil {
		return err
	}

	if err := ctx.Terraform.Destroy(ctx, dir, vars); err != nil {
		return fmt.Errorf("services layer: %w", err)
	}
	return nil
}

// DirectoryTeardown destroys the mini-AD layer.
type DirectoryTeardown struct{}

// Name implements the Phase interface.
func (t *DirectoryTeardown) Name() string {
	return "directory-teardown"
}

// Provision implements the Phase interface.
func (t *DirectoryTeardown) Provision(ctx *provisioning.Context) error {
	dir := ctx.Config.Terraform.DirectoryDir

	if err := ctx.Terraform.Init(ctx, dir); err != nil {
		return err
	}
	if err := ctx.Terraform.Destroy(ctx, dir, nil); err != nil {
		return fmt.Errorf("directory layer: %w", err)
	}
	return nil
}
