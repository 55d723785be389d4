// Package state keeps per-run program state shared by all commands.
package state

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cldump/config"
)

type envKey struct{}

// LocalEnv is the state of a single program run. It is created before
// command line is parsed and filled in by the Before hook of the application.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// RunID identifies the run in logs, debug report and output names.
	RunID uuid.UUID

	start   time.Time
	undoStd func()
}

// EnvFromContext returns run state attached by ContextWithEnv.
func EnvFromContext(ctx context.Context) *LocalEnv {
	env, ok := ctx.Value(envKey{}).(*LocalEnv)
	if !ok {
		// this should never happen
		panic("run state is missing from context")
	}
	return env
}

// ContextWithEnv attaches fresh run state to ctx.
func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv(time.Now()))
}

// Component returns logger of the named program component. Until logging is
// configured everything is discarded.
func (e *LocalEnv) Component(name string) *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log.Named(name)
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// RedirectStdLog sends standard library log output to zap until
// RestoreStdLog is called.
func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.undoStd = zap.RedirectStdLog(e.Log)
}

// RestoreStdLog flushes logs and undoes RedirectStdLog.
func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.undoStd != nil {
		e.undoStd()
		e.undoStd = nil
	}
}
