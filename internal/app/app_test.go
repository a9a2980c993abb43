package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conveyor/internal/app"
	"github.com/katalvlaran/conveyor/internal/cli"
	"github.com/katalvlaran/conveyor/internal/config"
	"github.com/katalvlaran/conveyor/internal/loader"
)

const denver = "../loader/testdata/denver.txt"

func run(t *testing.T, cfg config.Config, mode cli.Mode) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	a, err := app.NewApp(&out, &logs, cfg)
	require.NoError(t, err)
	err = a.Run(context.Background(), &cli.Invocation{Config: cfg, Mode: mode, Topology: "grid", Size: 3, Seed: 5})

	return out.String(), logs.String(), err
}

func TestRun_Route(t *testing.T) {
	cfg := config.Default()
	cfg.Input = denver
	cfg.Workers = 3

	out, logs, err := run(t, cfg, cli.ModeRoute)
	require.NoError(t, err)
	require.Equal(t, `0001 : 11 Concourse_A_Ticketing A5 A1
0002 : 9 A5 A1 A2 A3 A4
0003 : 1 A2 A1
0004 : 6 A8 A9 A10 A5
0005 : 12 A7 A8 A9 A10 A5 BaggageClaim
`, out)
	require.Contains(t, logs, "Bags routed.")
}

func TestRun_LogsRejectedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("# c\nA B x\nA B 1\n# d\nF B\n# b\n1 A F\n"), 0o600))

	cfg := config.Default()
	cfg.Input = path
	cfg.LogFormat = "json"

	out, logs, err := run(t, cfg, cli.ModeRoute)
	require.NoError(t, err)
	require.Equal(t, "1 : 1 A B\n", out)
	require.Contains(t, logs, `"msg":"Input line rejected."`)
	require.Contains(t, logs, `"line":2`)
}

func TestRun_MissingInput(t *testing.T) {
	cfg := config.Default()
	cfg.Input = "does-not-exist.txt"
	_, _, err := run(t, cfg, cli.ModeRoute)
	require.Error(t, err)
	require.Contains(t, err.Error(), "does-not-exist.txt")
}

func TestRun_RejectParallel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("# c\nA B 1\nB A 2\n# d\n# b\n"), 0o600))

	cfg := config.Default()
	cfg.Input = path
	_, _, err := run(t, cfg, cli.ModeRoute)
	require.NoError(t, err)

	cfg.ParallelLinks = config.ParallelReject
	_, _, err = run(t, cfg, cli.ModeRoute)
	require.Error(t, err)
}

func TestRun_CheckClean(t *testing.T) {
	cfg := config.Default()
	cfg.Input = denver
	out, _, err := run(t, cfg, cli.ModeCheck)
	require.NoError(t, err)
	require.Equal(t, `junctions: 12
connections: 22
isolated: 0
components: 1
claim: BaggageClaim (max 6 hops)
problems: 0
missing gates: 0
unrouted: 0
`, out)
}

func TestRun_CheckProblems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("# c\nA B 1\nC D 1\nbroken\n# d\nF1 Z\n# b\n1 A F1\n2 A ARRIVAL\n"), 0o600))

	cfg := config.Default()
	cfg.Input = path
	out, _, err := run(t, cfg, cli.ModeCheck)
	require.ErrorIs(t, err, app.ErrProblems)
	require.Contains(t, out, "components: 2\n")
	require.Contains(t, out, "claim: BaggageClaim (not in network)\n")
	require.Contains(t, out, "problems: 1\n")
	require.Contains(t, out, "missing gates: 1\n  F1 → Z\n")
	require.Contains(t, out, "unrouted: 2\n")
	require.Contains(t, out, "1 : no route (unknown junction Z)")
}

func TestRun_Generate(t *testing.T) {
	out, _, err := run(t, config.Default(), cli.ModeGenerate)
	require.NoError(t, err)

	m, err := loader.Parse(strings.NewReader(out))
	require.NoError(t, err)
	require.Empty(t, m.Problems)
	require.Len(t, m.Links, 13, "12 grid belts and the claim belt")
	require.Len(t, m.Departures, 9)
	require.Len(t, m.Bags, 9)

	again, _, err := run(t, config.Default(), cli.ModeGenerate)
	require.NoError(t, err)
	require.Equal(t, out, again)
}

func TestGenerate_RoutesEveryBag(t *testing.T) {
	for _, topo := range cli.Topologies {
		if topo == "random" {
			continue
		}
		m, err := app.Generate(topo, 6, 3, "BaggageClaim", "ARRIVAL")
		require.NoError(t, err, topo)
		path := filepath.Join(t.TempDir(), topo+".txt")
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, loader.Encode(f, m))
		require.NoError(t, f.Close())

		cfg := config.Default()
		cfg.Input = path
		_, _, err = run(t, cfg, cli.ModeCheck)
		require.NoError(t, err, topo)
	}

	_, err := app.Generate("hypercube", 3, 1, "C", "A")
	require.Error(t, err)
}

func TestNewApp_RejectsInvalidLogSettings(t *testing.T) {
	cases := map[string]func(*config.Config){
		"level":  func(c *config.Config) { c.LogLevel = "loud" },
		"format": func(c *config.Config) { c.LogFormat = "xml" },
		"cache":  func(c *config.Config) { c.CacheSize = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			var out, logs bytes.Buffer
			a, err := app.NewApp(&out, &logs, cfg)
			require.ErrorIs(t, err, config.ErrInvalid)
			require.Nil(t, a)
			require.Empty(t, logs.String())
		})
	}
}

func TestNewApp_DebugLevelLogs(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "debug"
	var out, logs bytes.Buffer
	_, err := app.NewApp(&out, &logs, cfg)
	require.NoError(t, err)
	require.Contains(t, logs.String(), "level=DEBUG")
	require.Contains(t, logs.String(), "Logger configured successfully.")
}
