package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/config"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/platform/azure"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning"
	itesting "github.com/mamonaco1973/azure-rstudio-aks/internal/testing"
)

func TestProvision_BindsVaultAndDiscovers(t *testing.T) {
	az := &itesting.MockAzureClient{}
	az.On("StorageAccountByPrefix", mock.Anything, "rstudio").Return("rstudiostorage7x2a", nil)
	az.On("RegistryByPrefix", mock.Anything, "rstudio").
		Return(azure.Registry{Name: "rstudioacr7x2a", LoginServer: "rstudioacr7x2a.azurecr.io", ResourceGroup: "rstudio-aks-rg"}, nil)
	tf := &itesting.FakeTerraform{}

	ctx := provisioning.NewContext(context.Background(), config.Default(), az, tf, nil)
	ctx.State.Vault = azure.Vault{Name: "ad-key-vault-7x2a"}

	err := NewProvisioner().Provision(ctx)
	require.NoError(t, err)

	require.Len(t, tf.Calls, 2)
	assert.Equal(t, "02-services", tf.Calls[1].Dir)
	assert.Equal(t, map[string]string{"vault_name": "ad-key-vault-7x2a"}, tf.Calls[1].Vars)

	assert.Equal(t, "rstudiostorage7x2a", ctx.State.StorageAccount)
	assert.Equal(t, "rstudioacr7x2a", ctx.State.Registry.Name)
}

func TestProvision_MissingVaultIsPrecondition(t *testing.T) {
	tf := &itesting.FakeTerraform{}
	ctx := provisioning.NewContext(context.Background(), config.Default(), &itesting.MockAzureClient{}, tf, nil)

	err := NewProvisioner().Provision(ctx)

	var preErr *provisioning.PreconditionError
	require.ErrorAs(t, err, &preErr)
	assert.Empty(t, tf.Calls)
}

func TestProvision_RegistryDiscoveryFailureIsFatal(t *testing.T) {
	az := &itesting.MockAzureClient{}
	az.On("StorageAccountByPrefix", mock.Anything, "rstudio").Return("rstudiostorage7x2a", nil)
	az.On("RegistryByPrefix", mock.Anything, "rstudio").
		Return(azure.Registry{}, &azure.DiscoveryError{Resource: "container registry", Prefix: "rstudio"})
	tf := &itesting.FakeTerraform{}

	ctx := provisioning.NewContext(context.Background(), config.Default(), az, tf, nil)
	ctx.State.Vault = azure.Vault{Name: "ad-key-vault-7x2a"}

	err := NewProvisioner().Provision(ctx)

	var discErr *azure.DiscoveryError
	require.ErrorAs(t, err, &discErr)
	assert.Equal(t, "container registry", discErr.Resource)
}
