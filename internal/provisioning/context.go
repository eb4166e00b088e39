package provisioning

import (
	"context"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/config"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/platform/azure"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/platform/docker"
	"github.com/mamonaco1973/azure-rstudio-aks/internal/platform/terraform"
)

// Context wraps the dependencies and shared state a phase needs.
type Context struct {
	context.Context
	Config    *config.Config
	State     *State
	Azure     azure.Client
	Terraform terraform.Runner
	Docker    docker.Runner
	Observer  Observer
}

// NewContext creates a pipeline context. The docker runner may be nil for
// pipelines that never build images (destroy, validate).
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	az azure.Client,
	tf terraform.Runner,
	dk docker.Runner,
) *Context {
	return &Context{
		Context:   ctx,
		Config:    cfg,
		State:     NewState(),
		Azure:     az,
		Terraform: tf,
		Docker:    dk,
		Observer:  NewObserver(),
	}
}
