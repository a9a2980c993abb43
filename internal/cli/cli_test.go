package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conveyor/internal/cli"
	"github.com/katalvlaran/conveyor/internal/config"
)

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer
	inv, exit, err := cli.Parse([]string{"bags.txt"}, &out)
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, cli.ModeRoute, inv.Mode)

	want := config.Default()
	want.Input = "bags.txt"
	require.Equal(t, want, inv.Config)
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	inv, exit, err := cli.Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, inv)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_NoInputPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	_, exit, err := cli.Parse(nil, &out)
	require.NoError(t, err)
	require.True(t, exit)
	require.Contains(t, out.String(), "conveyor [options] [INPUT]")
}

func TestParse_Modes(t *testing.T) {
	var out bytes.Buffer
	inv, _, err := cli.Parse([]string{"-check", "-input", "in.txt"}, &out)
	require.NoError(t, err)
	require.Equal(t, cli.ModeCheck, inv.Mode)

	inv, _, err = cli.Parse([]string{"-serve", ":9090", "in.txt"}, &out)
	require.NoError(t, err)
	require.Equal(t, cli.ModeServe, inv.Mode)
	require.Equal(t, ":9090", inv.Config.Listen)

	inv, _, err = cli.Parse([]string{"-gen", "grid", "-size", "3", "-seed", "9"}, &out)
	require.NoError(t, err)
	require.Equal(t, cli.ModeGenerate, inv.Mode)
	require.Equal(t, "grid", inv.Topology)
	require.Equal(t, 3, inv.Size)
	require.Equal(t, int64(9), inv.Seed)
}

func TestParse_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
input          = "from-file.txt"
claim_junction = "Hall"
log {
  level = "debug"
}
`), 0o600))

	var out bytes.Buffer
	inv, _, err := cli.Parse([]string{"-config", path, "-log-level", "WARN", "-cache-size", "32"}, &out)
	require.NoError(t, err)
	require.Equal(t, 32, inv.Config.CacheSize)
	require.Equal(t, "from-file.txt", inv.Config.Input)
	require.Equal(t, "Hall", inv.Config.ClaimJunction)
	require.Equal(t, "warn", inv.Config.LogLevel)

	inv, _, err = cli.Parse([]string{"-config", path, "positional.txt"}, &out)
	require.NoError(t, err)
	require.Equal(t, "positional.txt", inv.Config.Input)
}

func TestParse_Errors(t *testing.T) {
	cases := [][]string{
		{"-nope"},
		{"-log-format", "xml", "in.txt"},
		{"-log-level", "loud", "in.txt"},
		{"-workers", "0", "in.txt"},
		{"-cache-size", "0", "in.txt"},
		{"-gen", "hypercube"},
		{"-config", "/does/not/exist.hcl"},
	}
	for _, args := range cases {
		var out bytes.Buffer
		_, _, err := cli.Parse(args, &out)
		var exitErr *cli.ExitError
		require.True(t, errors.As(err, &exitErr), "args %v: got %v", args, err)
		require.Equal(t, 2, exitErr.Code)
	}
}
