// Package cluster provisions the AKS layer: the managed cluster, its node
// pool joined to the directory, and the RStudio workload bound to the NFS
// share and the registry image.
package cluster

import (
	"fmt"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning"
)

// Provisioner applies the cluster terraform layer with the names the
// earlier phases discovered.
type Provisioner struct{}

// NewProvisioner creates a cluster provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the Phase interface.
func (p *Provisioner) Name() string {
	return "cluster"
}

// Provision implements the Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	st := ctx.State
	if st.Vault.Name == "" || st.Registry.Name == "" || st.StorageAccount == "" {
		return &provisioning.PreconditionError{Name: "discovered names from earlier phases"}
	}

	dir := ctx.Config.Terraform.ClusterDir
	vars := map[string]string{
		"vault_name":           st.Vault.Name,
		"acr_name":             st.Registry.Name,
		"storage_account_name": st.StorageAccount,
	}

	if err := ctx.Terraform.Init(ctx, dir); err != nil {
		return err
	}
	if err := ctx.Terraform.Apply(ctx, dir, vars); err != nil {
		return fmt.Errorf("cluster layer: %w", err)
	}
	return nil
}
