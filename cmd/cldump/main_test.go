package main

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"cldump/state"
)

// mainArgsEnv carries command line for main when test binary re-executes
// itself, arguments are separated by new lines.
const mainArgsEnv = "CLDUMP_MAIN_ARGS"

func TestMain(m *testing.M) {
	if args, ok := os.LookupEnv(mainArgsEnv); ok {
		os.Args = append([]string{"cldump"}, strings.Split(args, "\n")...)
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// runMain executes main in a separate process and returns its exit code and
// combined output.
func runMain(t *testing.T, args ...string) (int, string) {
	t.Helper()
	exe, err := os.Executable()
	require.NoError(t, err)

	cmd := exec.Command(exe)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), mainArgsEnv+"="+strings.Join(args, "\n"))
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), string(out)
	}
	require.NoError(t, err)
	return 0, string(out)
}

func TestMain_ExitCode(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{name: "extract without cache", args: []string{"extract"}, code: 1, want: "no cache snapshot has been specified"},
		{name: "inspect without group", args: []string{"inspect", "--cachedir", "."}, code: 1, want: "record group has not been specified"},
		{name: "bad flag", args: []string{"--no-such-flag"}, code: 1, want: "Program ended with error"},
		{name: "missing configuration", args: []string{"--config", "absent.yaml", "extract"}, code: 1, want: "unable to prepare configuration"},
		{name: "default configuration", args: []string{"dumpconfig", "--default"}, code: 0, want: "version: 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := runMain(t, tt.args...)
			assert.Equal(t, tt.code, code, out)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestExitErrHandler(t *testing.T) {
	defer func() { errWasHandled = false }()

	ctx := state.ContextWithEnv(context.Background())
	errWasHandled = false
	exitErrHandler(ctx, nil, errors.New("early"))
	assert.False(t, errWasHandled, "error without logger must be left to main")

	core, logs := observer.New(zapcore.ErrorLevel)
	state.EnvFromContext(ctx).Log = zap.New(core)
	exitErrHandler(ctx, nil, errors.New("broken reference"))
	assert.True(t, errWasHandled)

	entries := logs.FilterMessage("Program ended with error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "broken reference", entries[0].ContextMap()["error"])
}
