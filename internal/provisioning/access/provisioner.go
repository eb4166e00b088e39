// Package access wires up operator access to the provisioned cluster:
// it fetches the AKS kubeconfig and confirms the directory admin
// credentials exist in the vault.
package access

import (
	"fmt"
	"os"

	"k8s.io/client-go/tools/clientcmd"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning"
)

// Provisioner fetches cluster credentials and verifies the directory
// admin secret. Any missing credential is fatal; a cluster nobody can
// reach or sign in to is not a successful deployment.
type Provisioner struct {
	// writeFile is an injection seam for tests.
	writeFile func(name string, data []byte, perm os.FileMode) error
}

// NewProvisioner creates an access provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{writeFile: os.WriteFile}
}

// Name implements the Phase interface.
func (p *Provisioner) Name() string {
	return "access"
}

// Provision implements the Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config

	kubeconfig, err := ctx.Azure.ClusterUserKubeconfig(ctx, cfg.ClusterResourceGroup, cfg.ClusterName)
	if err != nil {
		return err
	}

	// Reject credentials that would not load in kubectl before writing them.
	if _, err := clientcmd.Load(kubeconfig); err != nil {
		return fmt.Errorf("cluster %s returned an unparseable kubeconfig: %w", cfg.ClusterName, err)
	}

	if err := p.writeFile(cfg.KubeconfigPath, kubeconfig, 0o600); err != nil {
		return fmt.Errorf("failed to write kubeconfig: %w", err)
	}
	ctx.Observer.Infof("[access] kubeconfig written to %s", cfg.KubeconfigPath)
	ctx.State.Kubeconfig = kubeconfig

	if ctx.State.Vault.URI == "" {
		return &provisioning.PreconditionError{Name: "vault URI from directory phase"}
	}
	if _, err := ctx.Azure.Secret(ctx, ctx.State.Vault.URI, cfg.AdminSecretName); err != nil {
		return fmt.Errorf("directory admin credentials missing: %w", err)
	}
	ctx.Observer.Infof("[access] admin credentials present in %s", ctx.State.Vault.Name)
	return nil
}
