package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/docwin/internal/app"
	"github.com/runoshun/docwin/internal/domain"
)

func TestProfileFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no args", args: nil, want: ""},
		{name: "separate value", args: []string{"--profile", "/tmp/p", "tasks", "list"}, want: "/tmp/p"},
		{name: "equals value", args: []string{"tasks", "--profile=/tmp/q", "list"}, want: "/tmp/q"},
		{name: "missing value", args: []string{"--profile"}, want: ""},
		{name: "after terminator", args: []string{"--", "--profile", "/tmp/p"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, profileFromArgs(tt.args))
		})
	}
}

func TestCanRunWithoutContainer(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "no args", args: nil, want: false},
		{name: "help flag", args: []string{"--help"}, want: true},
		{name: "help shorthand", args: []string{"tasks", "-h"}, want: true},
		{name: "help subcommand", args: []string{"help", "tasks"}, want: true},
		{name: "version flag", args: []string{"--version"}, want: true},
		{name: "regular command", args: []string{"tasks", "list"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canRunWithoutContainer(tt.args); got != tt.want {
				t.Fatalf("canRunWithoutContainer(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestRun_UsesProfileFlag(t *testing.T) {
	profileDir := t.TempDir()
	original := newRootCommand
	t.Cleanup(func() { newRootCommand = original })

	var got *app.Container
	newRootCommand = func(c *app.Container, _ string) *cobra.Command {
		got = c
		cmd := &cobra.Command{Use: "docwin", RunE: func(*cobra.Command, []string) error { return nil }}
		cmd.Flags().String("profile", "", "")
		return cmd
	}

	require.NoError(t, run([]string{"--profile", profileDir}))
	require.NotNil(t, got)
	assert.Equal(t, profileDir, got.Config.ProfileDir)
	assert.Equal(t, domain.RegistryStorePath(profileDir, domain.StoreJSON), got.Config.StorePath)
}

func TestRun_HelpWithoutProfile(t *testing.T) {
	// An unreadable config must not block --help
	profileDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(profileDir, domain.ConfigFileName), []byte("[registry]\nstore = \"redis\"\n"), 0o600))
	t.Setenv(profileEnv, profileDir)

	assert.NoError(t, run([]string{"--help"}))
	assert.ErrorIs(t, run([]string{"tasks", "list"}), domain.ErrUnknownStore)
}
