// Package docker drives the docker CLI for image build and push.
package docker

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes the container image operations the deployment needs.
type Runner interface {
	// Build builds contextDir into an image tagged ref.
	Build(ctx context.Context, ref, contextDir string) error

	// Login authenticates the local docker daemon against a registry.
	Login(ctx context.Context, server, username, password string) error

	// Push uploads the image ref to its registry.
	Push(ctx context.Context, ref string) error
}

// CLIRunner runs the docker binary, streaming output to the process's
// stdout/stderr.
type CLIRunner struct {
	// run is the exec seam, replaced in tests.
	run func(ctx context.Context, stdin io.Reader, args []string) error
}

var _ Runner = &CLIRunner{}

// NewCLIRunner returns a runner backed by the docker binary on PATH.
func NewCLIRunner() *CLIRunner {
	return &CLIRunner{run: runDocker}
}

// Build implements Runner.
func (r *CLIRunner) Build(ctx context.Context, ref, contextDir string) error {
	if err := r.run(ctx, nil, []string{"build", "-t", ref, contextDir}); err != nil {
		return fmt.Errorf("docker build %s: %w", ref, err)
	}
	return nil
}

// Login implements Runner. The password goes over stdin so it never
// appears in the process table.
func (r *CLIRunner) Login(ctx context.Context, server, username, password string) error {
	args := []string{"login", server, "--username", username, "--password-stdin"}
	if err := r.run(ctx, strings.NewReader(password), args); err != nil {
		return fmt.Errorf("docker login %s: %w", server, err)
	}
	return nil
}

// Push implements Runner.
func (r *CLIRunner) Push(ctx context.Context, ref string) error {
	if err := r.run(ctx, nil, []string{"push", ref}); err != nil {
		return fmt.Errorf("docker push %s: %w", ref, err)
	}
	return nil
}

func runDocker(ctx context.Context, stdin io.Reader, args []string) error {
	cmd := exec.CommandContext(ctx, "docker", args...)
	cmd.Stdin = stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
