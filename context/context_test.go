package context

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/apksweep/artifact"
	"github.com/randalmurphal/apksweep/config"
	"github.com/randalmurphal/apksweep/notify"
	"github.com/randalmurphal/apksweep/runner"
)

func TestCleanerInjection(t *testing.T) {
	ctx := context.Background()
	if Cleaner(ctx) != nil {
		t.Error("Cleaner should return nil without injection")
	}

	c := artifact.NewCleaner(artifact.Config{Dir: t.TempDir()})
	ctx = WithCleaner(ctx, c)
	if Cleaner(ctx) != c {
		t.Error("Cleaner should return the injected cleaner")
	}
	if MustCleaner(ctx) != c {
		t.Error("MustCleaner should return the injected cleaner")
	}
}

func TestMustCleaner_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCleaner should panic without injection")
		}
	}()
	MustCleaner(context.Background())
}

func TestGetRunner(t *testing.T) {
	ctx := context.Background()

	if Runner(ctx) != nil {
		t.Error("Runner should return nil without injection")
	}
	if _, ok := GetRunner(ctx).(*runner.ExecRunner); !ok {
		t.Errorf("GetRunner fallback = %T, want *runner.ExecRunner", GetRunner(ctx))
	}

	mock := runner.NewMockRunner()
	ctx = WithRunner(ctx, mock)
	if GetRunner(ctx) != mock {
		t.Error("GetRunner should return the injected runner")
	}
}

func TestLogger(t *testing.T) {
	ctx := context.Background()
	if Logger(ctx) != slog.Default() {
		t.Error("Logger should fall back to slog.Default()")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if Logger(WithLogger(ctx, logger)) != logger {
		t.Error("Logger should return the injected logger")
	}
}

func TestServices_InjectAll(t *testing.T) {
	archiver := artifact.NewArchiver(t.TempDir())
	s := &Services{
		Cleaner:  artifact.NewCleaner(artifact.Config{Dir: t.TempDir()}),
		Archiver: archiver,
		Runner:   runner.NewMockRunner(),
		Notifier: notify.NopNotifier{},
	}

	ctx := s.InjectAll(context.Background())

	if Cleaner(ctx) != s.Cleaner {
		t.Error("cleaner not injected")
	}
	if Archiver(ctx) != archiver {
		t.Error("archiver not injected")
	}
	if Runner(ctx) != s.Runner {
		t.Error("runner not injected")
	}
	if notify.NotifierFromContext(ctx) == nil {
		t.Error("notifier not injected")
	}
}

func TestServices_InjectAll_SkipsNil(t *testing.T) {
	ctx := (&Services{}).InjectAll(context.Background())
	if Cleaner(ctx) != nil || Archiver(ctx) != nil || Runner(ctx) != nil {
		t.Error("nil services should not be injected")
	}
	if notify.NotifierFromContext(ctx) != nil {
		t.Error("nil notifier should not be injected")
	}
}

func TestNewServices(t *testing.T) {
	root := t.TempDir()
	settings := config.Settings{
		ProjectRoot:      root,
		OutputDir:        filepath.Join(root, "build", "app", "outputs", "flutter-apk"),
		PackageSuffixes:  []string{".apk"},
		ChecksumSuffixes: []string{".apk.sha1"},
		DryRun:           true,
		ArchiveDir:       filepath.Join(root, ".apksweep", "archive"),
		DebugCommand:     []string{"flutter", "build", "apk", "--debug"},
		ReleaseCommand:   []string{"flutter", "build", "apk", "--release"},
	}

	s := NewServices(settings, nil)

	if s.Cleaner.Dir() != settings.OutputDir {
		t.Errorf("Cleaner.Dir() = %q, want %q", s.Cleaner.Dir(), settings.OutputDir)
	}
	if !s.Cleaner.DryRun() {
		t.Error("Cleaner should be in dry-run mode")
	}
	if s.Archiver == nil || s.Archiver.BaseDir() != settings.ArchiveDir {
		t.Errorf("Archiver = %v, want base %q", s.Archiver, settings.ArchiveDir)
	}
	if got := s.Command("release"); len(got) != 4 || got[3] != "--release" {
		t.Errorf("Command(release) = %v", got)
	}
	if s.Command("profile") != nil {
		t.Error("unknown variant should have no command")
	}
	if _, ok := s.Notifier.(*notify.LogNotifier); !ok {
		t.Errorf("Notifier = %T, want *notify.LogNotifier without webhook URLs", s.Notifier)
	}
	if s.ProjectRoot != root {
		t.Errorf("ProjectRoot = %q", s.ProjectRoot)
	}
}

func TestNewServices_NoArchive(t *testing.T) {
	s := NewServices(config.Settings{}, nil)
	if s.Archiver != nil {
		t.Error("Archiver should be nil when archive_dir is empty")
	}
	if s.ProjectRoot != "." {
		t.Errorf("ProjectRoot = %q, want .", s.ProjectRoot)
	}
	if s.Cleaner.Dir() != artifact.DefaultOutputDir {
		t.Errorf("Cleaner.Dir() = %q", s.Cleaner.Dir())
	}
}
