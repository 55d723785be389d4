package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap/zaptest"

	"cldump/config"
	"cldump/state"
)

func runDumpConfig(t *testing.T, args ...string) string {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	require.NoError(t, err)
	cfg.Extraction.Errors = config.ErrorModeCollectAll

	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = zaptest.NewLogger(t)
	env.Cfg = cfg

	var out bytes.Buffer
	cmd := &cli.Command{
		Name:   "dumpconfig",
		Action: outputConfiguration,
		Writer: &out,
		Flags:  []cli.Flag{&cli.BoolFlag{Name: "default"}},
	}
	require.NoError(t, cmd.Run(ctx, append([]string{"dumpconfig"}, args...)))
	return out.String()
}

func TestOutputConfiguration(t *testing.T) {
	actual := runDumpConfig(t)
	assert.Contains(t, actual, "errors: collect-all")

	want, err := config.Prepare()
	require.NoError(t, err)
	assert.Equal(t, string(want), runDumpConfig(t, "--default"))
}

func TestOutputConfiguration_File(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "cldump.yaml")
	assert.Empty(t, runDumpConfig(t, fname))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(data), "errors: collect-all")

	// dumped configuration loads back
	cfg, err := config.LoadConfiguration(fname)
	require.NoError(t, err)
	assert.Equal(t, config.ErrorModeCollectAll, cfg.Extraction.Errors)
}
