// Package testutil provides utilities for testing.
package testutil

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
)

// WriteOutputs creates files under dir. Keys are paths relative to dir,
// values are contents. Missing parent directories are created.
func WriteOutputs(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

// OutputDir creates a temporary output directory holding files.
func OutputDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	WriteOutputs(t, dir, files)
	return dir
}

// ListNames returns the sorted names of the immediate entries of dir.
// A missing directory yields nil.
func ListNames(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("failed to read %s: %v", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// AssertExists fails the test if path does not exist.
func AssertExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

// AssertAbsent fails the test if path exists.
func AssertAbsent(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected %s to be absent", path)
	} else if !os.IsNotExist(err) {
		t.Errorf("stat %s: %v", path, err)
	}
}

// ProjectRoot creates a temporary Flutter project root: a .git directory
// (so config discovery finds it) and the given output directory.
func ProjectRoot(t *testing.T, outputDir string) string {
	t.Helper()

	root := t.TempDir()
	for _, dir := range []string{".git", outputDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}
	return root
}

// LogBuffer is a concurrency-safe buffer for captured log output.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// CaptureLogger returns a debug-level text logger writing into a buffer.
func CaptureLogger(t *testing.T) (*slog.Logger, *LogBuffer) {
	t.Helper()

	buf := &LogBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, buf
}
