// Package image builds and pushes the RStudio Server container image.
package image

import (
	"fmt"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/provisioning"
)

// Builder pushes the RStudio image to the discovered registry, skipping
// the build entirely when the tag is already present.
type Builder struct{}

// NewBuilder creates an image builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Name implements the Phase interface.
func (b *Builder) Name() string {
	return "image"
}

// Provision implements the Phase interface.
func (b *Builder) Provision(ctx *provisioning.Context) error {
	registry := ctx.State.Registry
	if registry.LoginServer == "" {
		return &provisioning.PreconditionError{Name: "registry from services phase"}
	}

	cfg := ctx.Config.Image
	ref := fmt.Sprintf("%s/%s:%s", registry.LoginServer, cfg.Repository, cfg.Tag)

	exists, err := ctx.Azure.TagExists(ctx, registry.LoginServer, cfg.Repository, cfg.Tag)
	if err != nil {
		return err
	}
	if exists {
		ctx.Observer.Infof("[image] %s already in registry, skipping build", ref)
		return nil
	}

	ctx.Observer.Infof("[image] building %s from %s", ref, cfg.BuildContext)
	if err := ctx.Docker.Build(ctx, ref, cfg.BuildContext); err != nil {
		return err
	}

	creds, err := ctx.Azure.RegistryCredentials(ctx, registry)
	if err != nil {
		return err
	}
	if err := ctx.Docker.Login(ctx, registry.LoginServer, creds.Username, creds.Password); err != nil {
		return err
	}

	ctx.Observer.Infof("[image] pushing %s", ref)
	return ctx.Docker.Push(ctx, ref)
}
