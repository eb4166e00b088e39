package provisioning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamonaco1973/azure-rstudio-aks/internal/config"
)

type stubPhase struct {
	name string
	err  error
	runs *[]string
}

func (p *stubPhase) Name() string { return p.name }

func (p *stubPhase) Provision(_ *Context) error {
	*p.runs = append(*p.runs, p.name)
	return p.err
}

func testContext(t *testing.T) *Context {
	t.Helper()
	return NewContext(context.Background(), config.Default(), nil, nil, nil)
}

func TestRunPhases_AllSucceed(t *testing.T) {
	var runs []string
	phases := []Phase{
		&stubPhase{name: "directory", runs: &runs},
		&stubPhase{name: "services", runs: &runs},
		&stubPhase{name: "cluster", runs: &runs},
	}

	err := RunPhases(testContext(t), phases)
	require.NoError(t, err)
	assert.Equal(t, []string{"directory", "services", "cluster"}, runs)
}

func TestRunPhases_AbortsOnFirstFailure(t *testing.T) {
	var runs []string
	boom := errors.New("apply failed")
	phases := []Phase{
		&stubPhase{name: "directory", runs: &runs},
		&stubPhase{name: "services", runs: &runs, err: boom},
		&stubPhase{name: "cluster", runs: &runs},
	}

	err := RunPhases(testContext(t), phases)
	require.Error(t, err)

	// Later phases must never run.
	assert.Equal(t, []string{"directory", "services"}, runs)

	var phaseErr *PhaseError
	require.ErrorAs(t, err, &phaseErr)
	assert.Equal(t, "services", phaseErr.Phase)
	assert.ErrorIs(t, err, boom)
}

func TestRunPhases_Empty(t *testing.T) {
	require.NoError(t, RunPhases(testContext(t), nil))
}

func TestSleep_CompletesAfterDuration(t *testing.T) {
	require.NoError(t, Sleep(context.Background(), time.Millisecond))
}

func TestSleep_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Sleep(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPreconditionError_Message(t *testing.T) {
	err := &PreconditionError{Name: "subscription"}
	assert.Contains(t, err.Error(), "subscription")

	wrapped := &PreconditionError{Name: "tools", Err: errors.New("terraform not found")}
	assert.Contains(t, wrapped.Error(), "terraform not found")
	assert.ErrorIs(t, wrapped, wrapped.Err)
}
