// Package terraform invokes the terraform CLI per infrastructure layer.
// The resource graphs themselves live in the layer directories; this
// package only sequences init/apply/destroy with variable bindings.
package terraform

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
)

// Runner executes terraform operations against a layer directory.
type Runner interface {
	// Init prepares the working directory (providers, backend).
	Init(ctx context.Context, dir string) error

	// Apply creates or updates the layer with the given variable bindings.
	Apply(ctx context.Context, dir string, vars map[string]string) error

	// Destroy tears the layer down. When targets are given, only those
	// resource addresses are destroyed.
	Destroy(ctx context.Context, dir string, vars map[string]string, targets ...string) error
}

// CLIRunner runs the terraform binary, streaming its output to the
// current process's stdout/stderr.
type CLIRunner struct {
	// run is the exec seam, replaced in tests.
	run func(ctx context.Context, args []string) error
}

var _ Runner = &CLIRunner{}

// NewCLIRunner returns a runner backed by the terraform binary on PATH.
func NewCLIRunner() *CLIRunner {
	return &CLIRunner{run: runTerraform}
}

// Init implements Runner.
func (r *CLIRunner) Init(ctx context.Context, dir string) error {
	if err := r.run(ctx, initArgs(dir)); err != nil {
		return fmt.Errorf("terraform init in %s: %w", dir, err)
	}
	return nil
}

// Apply implements Runner.
func (r *CLIRunner) Apply(ctx context.Context, dir string, vars map[string]string) error {
	if err := r.run(ctx, applyArgs(dir, vars)); err != nil {
		return fmt.Errorf("terraform apply in %s: %w", dir, err)
	}
	return nil
}

// Destroy implements Runner.
func (r *CLIRunner) Destroy(ctx context.Context, dir string, vars map[string]string, targets ...string) error {
	if err := r.run(ctx, destroyArgs(dir, vars, targets)); err != nil {
		return fmt.Errorf("terraform destroy in %s: %w", dir, err)
	}
	return nil
}

func runTerraform(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, "terraform", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func initArgs(dir string) []string {
	return []string{"-chdir=" + dir, "init", "-input=false"}
}

func applyArgs(dir string, vars map[string]string) []string {
	args := []string{"-chdir=" + dir, "apply", "-input=false", "-auto-approve"}
	return append(args, varArgs(vars)...)
}

func destroyArgs(dir string, vars map[string]string, targets []string) []string {
	args := []string{"-chdir=" + dir, "destroy", "-input=false", "-auto-approve"}
	for _, t := range targets {
		args = append(args, "-target="+t)
	}
	return append(args, varArgs(vars)...)
}

// varArgs renders variable bindings in sorted order so invocations are
// deterministic and testable.
func varArgs(vars map[string]string) []string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		args = append(args, "-var", fmt.Sprintf("%s=%s", k, vars[k]))
	}
	return args
}
