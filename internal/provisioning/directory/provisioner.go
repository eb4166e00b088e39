// Package directory provisions the mini-AD layer: the Samba domain
// controller, its virtual network pieces and the Key Vault holding the
// directory credentials.
package directory

import (
	"fmt"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning"
)

// Provisioner applies the directory terraform layer and discovers the
// resulting Key Vault.
type Provisioner struct{}

// NewProvisioner creates a directory provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the Phase interface.
func (p *Provisioner) Name() string {
	return "directory"
}

// Provision implements the Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	dir := ctx.Config.Terraform.DirectoryDir

	if err := ctx.Terraform.Init(ctx, dir); err != nil {
		return err
	}
	if err := ctx.Terraform.Apply(ctx, dir, nil); err != nil {
		return fmt.Errorf("directory layer: %w", err)
	}

	// The vault name carries a random suffix, so it has to be discovered.
	// An empty result here means the layer did not converge; nothing
	// downstream can run without the vault.
	vault, err := ctx.Azure.VaultByPrefix(ctx, ctx.Config.VaultPrefix)
	if err != nil {
		return err
	}

	ctx.Observer.Infof("[directory] key vault: %s", vault.Name)
	ctx.State.Vault = vault
	return nil
}
