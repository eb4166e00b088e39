// Package testing provides shared mocks for the platform interfaces.
package testing

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/platform/azure"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/platform/docker"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/platform/terraform"
)

// MockAzureClient is a testify mock of azure.Client.
type MockAzureClient struct {
	mock.Mock
}

var _ azure.Client = &MockAzureClient{}

// PublicIPFQDN returns the mocked DNS name.
func (m *MockAzureClient) PublicIPFQDN(ctx context.Context, resourceGroup, name string) (string, error) {
	args := m.Called(ctx, resourceGroup, name)
	return args.String(0), args.Error(1)
}

// VaultByPrefix returns the mocked vault.
func (m *MockAzureClient) VaultByPrefix(ctx context.Context, prefix string) (azure.Vault, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(azure.Vault), args.Error(1)
}

// StorageAccountByPrefix returns the mocked storage account name.
func (m *MockAzureClient) StorageAccountByPrefix(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}

// RegistryByPrefix returns the mocked registry.
func (m *MockAzureClient) RegistryByPrefix(ctx context.Context, prefix string) (azure.Registry, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(azure.Registry), args.Error(1)
}

// RegistryCredentials returns the mocked admin credentials.
func (m *MockAzureClient) RegistryCredentials(ctx context.Context, registry azure.Registry) (azure.Credentials, error) {
	args := m.Called(ctx, registry)
	return args.Get(0).(azure.Credentials), args.Error(1)
}

// TagExists returns the mocked tag presence.
func (m *MockAzureClient) TagExists(ctx context.Context, loginServer, repository, tag string) (bool, error) {
	args := m.Called(ctx, loginServer, repository, tag)
	return args.Bool(0), args.Error(1)
}

// Secret returns the mocked secret value.
func (m *MockAzureClient) Secret(ctx context.Context, vaultURI, name string) (string, error) {
	args := m.Called(ctx, vaultURI, name)
	return args.String(0), args.Error(1)
}

// ClusterUserKubeconfig returns the mocked kubeconfig bytes.
func (m *MockAzureClient) ClusterUserKubeconfig(ctx context.Context, resourceGroup, clusterName string) ([]byte, error) {
	args := m.Called(ctx, resourceGroup, clusterName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// TerraformCall records one terraform invocation.
type TerraformCall struct {
	Op      string
	Dir     string
	Vars    map[string]string
	Targets []string
}

// FakeTerraform records terraform invocations and fails on request.
type FakeTerraform struct {
	Calls []TerraformCall

	// FailOn aborts the invocation whose Op matches, e.g. "apply:02-services".
	FailOn string
	Err    error
}

var _ terraform.Runner = &FakeTerraform{}

// Init implements terraform.Runner.
func (f *FakeTerraform) Init(_ context.Context, dir string) error {
	return f.record(TerraformCall{Op: "init", Dir: dir})
}

// Apply implements terraform.Runner.
func (f *FakeTerraform) Apply(_ context.Context, dir string, vars map[string]string) error {
	return f.record(TerraformCall{Op: "apply", Dir: dir, Vars: vars})
}

// Destroy implements terraform.Runner.
func (f *FakeTerraform) Destroy(_ context.Context, dir string, vars map[string]string, targets ...string) error {
	return f.record(TerraformCall{Op: "destroy", Dir: dir, Vars: vars, Targets: targets})
}

func (f *FakeTerraform) record(c TerraformCall) error {
	f.Calls = append(f.Calls, c)
	if f.FailOn != "" && f.FailOn == c.Op+":"+c.Dir {
		return f.Err
	}
	return nil
}

// FakeDocker counts docker invocations and fails on request.
type FakeDocker struct {
	Builds []string
	Logins []string
	Pushes []string

	BuildErr error
	LoginErr error
	PushErr  error
}

var _ docker.Runner = &FakeDocker{}

// Build implements docker.Runner.
func (f *FakeDocker) Build(_ context.Context, ref, _ string) error {
	f.Builds = append(f.Builds, ref)
	return f.BuildErr
}

// Login implements docker.Runner.
func (f *FakeDocker) Login(_ context.Context, server, _, _ string) error {
	f.Logins = append(f.Logins, server)
	return f.LoginErr
}

// Push implements docker.Runner.
func (f *FakeDocker) Push(_ context.Context, ref string) error {
	f.Pushes = append(f.Pushes, ref)
	return f.PushErr
}
