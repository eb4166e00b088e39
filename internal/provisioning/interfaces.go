package provisioning

// Phase is one step of the deployment pipeline.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the phase. Any error aborts the remaining phases.
	Provision(ctx *Context) error
}
