package handlers

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/config"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/util/prerequisites"
)

const validKubeconfig = `apiVersion: v1
kind: Config
clusters:
- cluster:
    server: https://rstudio-aks.hcp.centralus.azmk8s.io:443
  name: rstudio-aks
contexts:
- context:
    cluster: rstudio-aks
    user: clusterUser
  name: rstudio-aks
current-context: rstudio-aks
users:
- name: clusterUser
  user:
    token: abc123
`

// restoreFactories snapshots the factory seams and restores them when
// the test finishes.
func restoreFactories(t *testing.T) {
	t.Helper()
	origLoad := loadConfig
	origPrereqs := checkDefaultPrereqs
	origAll := checkAllPrereqs
	origAzure := newAzureClient
	origTerraform := newTerraformRunner
	origDocker := newDockerRunner
	origPoller := newPoller
	t.Cleanup(func() {
		loadConfig = origLoad
		checkDefaultPrereqs = origPrereqs
		checkAllPrereqs = origAll
		newAzureClient = origAzure
		newTerraformRunner = origTerraform
		newDockerRunner = origDocker
		newPoller = origPoller
	})
}

// stubConfig returns defaults tuned for tests: no sleeps, kubeconfig in
// a scratch directory.
func stubConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.SubscriptionID = "11111111-2222-3333-4444-555555555555"
	cfg.KubeconfigPath = filepath.Join(t.TempDir(), "kubeconfig")
	cfg.Health.IntervalSeconds = 0
	cfg.Terraform.DNSSettleSeconds = 0
	return cfg
}

func noMissingPrereqs() *prerequisites.CheckResults {
	return &prerequisites.CheckResults{}
}

type fakeWaiter struct {
	err    error
	called bool
}

func (w *fakeWaiter) Wait(context.Context) error {
	w.called = true
	return w.err
}
