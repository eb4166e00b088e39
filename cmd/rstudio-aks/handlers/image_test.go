package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/config"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/platform/azure"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/platform/docker"
	itesting "github.com/mamonaco1973/azure-rstudio-aks/internal/testing"
)

func TestImage_BuildsAndPushesWhenTagMissing(t *testing.T) {
	restoreFactories(t)

	loadConfig = func(string) (*config.Config, error) { return stubConfig(t), nil }
	checkDefaultPrereqs = noMissingPrereqs

	registry := azure.Registry{Name: "rstudioacr7x2a", LoginServer: "rstudioacr7x2a.azurecr.io"}
	az := &itesting.MockAzureClient{}
	az.On("RegistryByPrefix", mock.Anything, "rstudio").Return(registry, nil)
	az.On("TagExists", mock.Anything, "rstudioacr7x2a.azurecr.io", "rstudio-server", "latest").
		Return(false, nil)
	az.On("RegistryCredentials", mock.Anything, registry).
		Return(azure.Credentials{Username: "rstudioacr7x2a", Password: "s3cret"}, nil)
	newAzureClient = func(string) (azure.Client, error) { return az, nil }

	dk := &itesting.FakeDocker{}
	newDockerRunner = func() docker.Runner { return dk }

	err := Image(context.Background(), "")
	require.NoError(t, err)

	ref := "rstudioacr7x2a.azurecr.io/rstudio-server:latest"
	assert.Equal(t, []string{ref}, dk.Builds)
	assert.Equal(t, []string{"rstudioacr7x2a.azurecr.io"}, dk.Logins)
	assert.Equal(t, []string{ref}, dk.Pushes)
}

func TestImage_SkipsWhenTagPresent(t *testing.T) {
	restoreFactories(t)

	loadConfig = func(string) (*config.Config, error) { return stubConfig(t), nil }
	checkDefaultPrereqs = noMissingPrereqs

	az := &itesting.MockAzureClient{}
	az.On("RegistryByPrefix", mock.Anything, "rstudio").
		Return(azure.Registry{Name: "rstudioacr7x2a", LoginServer: "rstudioacr7x2a.azurecr.io"}, nil)
	az.On("TagExists", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(true, nil)
	newAzureClient = func(string) (azure.Client, error) { return az, nil }

	dk := &itesting.FakeDocker{}
	newDockerRunner = func() docker.Runner { return dk }

	require.NoError(t, Image(context.Background(), ""))
	assert.Empty(t, dk.Builds)
	assert.Empty(t, dk.Pushes)
}

func TestImage_NoRegistryIsFatal(t *testing.T) {
	restoreFactories(t)

	loadConfig = func(string) (*config.Config, error) { return stubConfig(t), nil }
	checkDefaultPrereqs = noMissingPrereqs

	az := &itesting.MockAzureClient{}
	az.On("RegistryByPrefix", mock.Anything, mock.Anything).
		Return(azure.Registry{}, &azure.DiscoveryError{Resource: "container registry", Prefix: "rstudio"})
	newAzureClient = func(string) (azure.Client, error) { return az, nil }
	newDockerRunner = func() docker.Runner { return &itesting.FakeDocker{} }

	err := Image(context.Background(), "")

	var discErr *azure.DiscoveryError
	require.ErrorAs(t, err, &discErr)
}
