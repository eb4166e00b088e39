package provisioning

import (
	"context"
	"fmt"
	"time"
)

// RunPhases executes all phases sequentially, aborting on the first error.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Infof("Starting with %d phases...", len(phases))

	for i, phase := range phases {
		phaseStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(phases))

		ctx.Observer.Infof("[%s] starting", name)

		if err := phase.Provision(ctx); err != nil {
			ctx.Observer.Errorf("[%s] failed: %v", name, err)
			return &PhaseError{Phase: phase.Name(), Err: err}
		}

		ctx.Observer.Infof("[%s] completed in %v", name, time.Since(phaseStart).Round(time.Millisecond))
	}

	ctx.Observer.Infof("All phases completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}

// Sleep pauses for d or until the context is cancelled.
func Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
