package jail

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/potkit/potview/internal/config"
	"github.com/potkit/potview/internal/errors"
)

// fakeJls writes a stand-in jls script that reports only the jail named
// "web" as running.
func fakeJls(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test probe script needs a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "jls")
	script := "#!/bin/sh\nif [ \"$2\" = \"web\" ]; then exit 0; fi\nexit 1\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIsRunning(t *testing.T) {
	probe := &Probe{Command: fakeJls(t)}
	ctx := context.Background()

	running, err := probe.IsRunning(ctx, "web")
	if err != nil {
		t.Fatalf("IsRunning(web) failed: %v", err)
	}
	if !running {
		t.Error("IsRunning(web) = false, want true")
	}

	running, err = probe.IsRunning(ctx, "db")
	if err != nil {
		t.Fatalf("IsRunning(db) failed: %v", err)
	}
	if running {
		t.Error("IsRunning(db) = true, want false")
	}
}

func TestIsRunningSpawnFailure(t *testing.T) {
	probe := &Probe{Command: filepath.Join(t.TempDir(), "missing-jls")}

	running, err := probe.IsRunning(context.Background(), "web")
	if err == nil {
		t.Fatal("IsRunning succeeded with a missing probe binary")
	}
	if running {
		t.Error("IsRunning = true on spawn failure")
	}
	if code := errors.GetExitCode(err); code != errors.ExitProbeFailed {
		t.Errorf("GetExitCode = %d, want %d", code, errors.ExitProbeFailed)
	}
}

func TestRunning(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"web", "db"} {
		if err := os.MkdirAll(filepath.Join(root, "jails", name), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	probe := &Probe{Command: fakeJls(t)}
	sys := &config.SystemConf{FSRoot: &root}

	running := probe.Running(context.Background(), sys)
	if len(running) != 1 || running[0] != "web" {
		t.Errorf("Running = %v, want [web]", running)
	}
}

func TestRunningProbeFailureIsNotRunning(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "jails", "web"), 0o755); err != nil {
		t.Fatal(err)
	}

	probe := &Probe{Command: filepath.Join(t.TempDir(), "missing-jls")}
	sys := &config.SystemConf{FSRoot: &root}

	if running := probe.Running(context.Background(), sys); len(running) != 0 {
		t.Errorf("Running = %v, want none when every probe fails", running)
	}
}
