package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/docwin/internal/app"
)

// newTestContainer creates a container over a temporary profile directory.
func newTestContainer(t *testing.T) *app.Container {
	t.Helper()
	c, err := app.New(t.TempDir(), t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// execute runs cmd with args and returns stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// mockLaunchTUI replaces launchTUIFunc for the duration of the test and
// returns a pointer to the routes it was called with.
func mockLaunchTUI(t *testing.T) *[]string {
	t.Helper()
	original := launchTUIFunc
	t.Cleanup(func() { launchTUIFunc = original })

	var routes []string
	launchTUIFunc = func(_ *app.Container, route string) error {
		routes = append(routes, route)
		return nil
	}
	return &routes
}
