package state

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextWithEnv(t *testing.T) {
	before := time.Now()
	env := EnvFromContext(ContextWithEnv(context.Background()))

	if env.start.Before(before) {
		t.Errorf("start = %v, want not before %v", env.start, before)
	}
	if env.RunID == uuid.Nil {
		t.Fatal("run id not set")
	}
	if env.RunID.Version() != 7 {
		t.Errorf("run id version = %d, want 7", env.RunID.Version())
	}
	if env.Cfg != nil || env.Rpt != nil || env.Log != nil {
		t.Error("fresh environment must not be configured")
	}
}

func TestNewRunID_Ordered(t *testing.T) {
	prev := newRunID()
	for range 100 {
		next := newRunID()
		if next == prev {
			t.Fatalf("run id %s repeated", next)
		}
		if next.String() < prev.String() {
			t.Fatalf("run id %s sorts before previous %s", next, prev)
		}
		prev = next
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic when run state is not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := newLocalEnv(time.Now().Add(-time.Minute))
	if up := env.Uptime(); up < time.Minute || up > 2*time.Minute {
		t.Errorf("Uptime() = %v, want about a minute", up)
	}
}

func TestLocalEnv_Component(t *testing.T) {
	env := &LocalEnv{}
	// discarded, must not panic
	env.Component("cache").Info("nothing")

	core, logs := observer.New(zapcore.DebugLevel)
	env.Log = zap.New(core).Named("cldump")
	env.Component("cache").Debug("loaded")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].LoggerName != "cldump.cache" {
		t.Errorf("logger name = %q, want %q", entries[0].LoggerName, "cldump.cache")
	}
}

func TestLocalEnv_StdLog(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	core, logs := observer.New(zapcore.InfoLevel)
	env := &LocalEnv{Log: zap.New(core)}

	for range 2 {
		env.RedirectStdLog()
		log.Print("from standard logger")
		env.RestoreStdLog()
		if env.undoStd != nil {
			t.Error("redirect must be undone")
		}
		// zap always hands standard logger back to stderr
		if log.Writer() != os.Stderr {
			t.Errorf("standard logger writes to %v after restore, want stderr", log.Writer())
		}
	}
	if n := logs.FilterMessage("from standard logger").Len(); n != 2 {
		t.Errorf("redirected %d messages, want 2", n)
	}

	// no logger - nothing to redirect
	env = &LocalEnv{}
	env.RedirectStdLog()
	if env.undoStd != nil {
		t.Error("nothing must be redirected without logger")
	}
	env.RestoreStdLog()
}
