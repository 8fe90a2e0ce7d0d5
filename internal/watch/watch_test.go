package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeScript(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write script: %v", err)
	}
}

func waitRun(t *testing.T, runs <-chan string, timeout time.Duration) string {
	t.Helper()
	select {
	case content := <-runs:
		return content
	case <-time.After(timeout):
		t.Fatal("timed out waiting for script run")
		return ""
	}
}

func TestWatcher_RunsOnStartAndOnChange(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "cmds.txt")
	writeScript(t, script, "print_set SETA\n")

	runs := make(chan string, 10)
	w := New(script, 10*time.Millisecond, func(ctx context.Context, path string) error {
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		runs <- string(b)
		return nil
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	if got := waitRun(t, runs, 2*time.Second); got != "print_set SETA\n" {
		t.Errorf("initial run read %q", got)
	}

	writeScript(t, script, "stop\n")
	if got := waitRun(t, runs, 2*time.Second); got != "stop\n" {
		t.Errorf("rerun read %q, want stop", got)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "cmds.txt")
	writeScript(t, script, "stop\n")

	runs := make(chan string, 10)
	w := New(script, 10*time.Millisecond, func(ctx context.Context, path string) error {
		runs <- path
		return errors.New("run failures are logged, not fatal")
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	waitRun(t, runs, 2*time.Second)
	writeScript(t, filepath.Join(dir, "other.txt"), "noise\n")

	select {
	case p := <-runs:
		t.Errorf("unexpected run for %s", p)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "nope", "cmds.txt"), time.Millisecond, func(context.Context, string) error {
		return nil
	}, nil)
	if err := w.Run(context.Background()); err == nil {
		t.Error("Run() expected error for missing directory")
	}
}
