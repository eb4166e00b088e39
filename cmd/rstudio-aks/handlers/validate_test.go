package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/config"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/healthcheck"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/platform/azure"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning"
	itesting "github.com/mamonaco1973/azure-rstudio-aks/internal/testing"
)

func TestValidate_DelegatesToPoller(t *testing.T) {
	restoreFactories(t)

	loadConfig = func(string) (*config.Config, error) { return stubConfig(t), nil }
	newAzureClient = func(string) (azure.Client, error) { return &itesting.MockAzureClient{}, nil }

	w := &fakeWaiter{}
	newPoller = func(healthcheck.AddressResolver, *config.Config, provisioning.Observer) ReadinessWaiter { return w }

	require.NoError(t, Validate(context.Background(), ""))
	assert.True(t, w.called)
}

func TestValidate_SurfacesPollerError(t *testing.T) {
	restoreFactories(t)

	loadConfig = func(string) (*config.Config, error) { return stubConfig(t), nil }
	newAzureClient = func(string) (azure.Client, error) { return &itesting.MockAzureClient{}, nil }

	w := &fakeWaiter{err: &healthcheck.TimeoutError{URL: "http://example/auth-sign-in", Attempts: 50}}
	newPoller = func(healthcheck.AddressResolver, *config.Config, provisioning.Observer) ReadinessWaiter { return w }

	err := Validate(context.Background(), "")

	var timeoutErr *healthcheck.TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, 50, timeoutErr.Attempts)
}

func TestValidate_BadConfigFailsBeforeAnyLookup(t *testing.T) {
	restoreFactories(t)

	loadConfig = func(string) (*config.Config, error) { return nil, assert.AnError }

	pollerBuilt := false
	newPoller = func(healthcheck.AddressResolver, *config.Config, provisioning.Observer) ReadinessWaiter {
		pollerBuilt = true
		return &fakeWaiter{}
	}

	err := Validate(context.Background(), "bad.yaml")
	require.ErrorIs(t, err, assert.AnError)
	assert.False(t, pollerBuilt)
}
