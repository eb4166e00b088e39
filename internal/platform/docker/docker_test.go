package docker

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	stdin string
	args  []string
}

func recordingRunner(calls *[]call, err error) *CLIRunner {
	return &CLIRunner{run: func(_ context.Context, stdin io.Reader, args []string) error {
		c := call{args: args}
		if stdin != nil {
			data, _ := io.ReadAll(stdin)
			c.stdin = string(data)
		}
		*calls = append(*calls, c)
		return err
	}}
}

func TestBuild(t *testing.T) {
	var calls []call
	r := recordingRunner(&calls, nil)

	require.NoError(t, r.Build(context.Background(), "rstudioacr.azurecr.io/rstudio-server:latest", "docker"))
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"build", "-t", "rstudioacr.azurecr.io/rstudio-server:latest", "docker"}, calls[0].args)
}

func TestLogin_PasswordOverStdin(t *testing.T) {
	var calls []call
	r := recordingRunner(&calls, nil)

	require.NoError(t, r.Login(context.Background(), "rstudioacr.azurecr.io", "rstudioacr", "s3cret"))
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"login", "rstudioacr.azurecr.io", "--username", "rstudioacr", "--password-stdin"}, calls[0].args)
	assert.Equal(t, "s3cret", calls[0].stdin)
}

func TestPush_WrapsError(t *testing.T) {
	var calls []call
	r := recordingRunner(&calls, errors.New("denied"))

	err := r.Push(context.Background(), "rstudioacr.azurecr.io/rstudio-server:latest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docker push")
}
