package artifact

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "github.com/randalmurphal/apksweep/errors"
)

// DefaultOutputDir is where `flutter build apk` writes packages, relative to
// the Flutter project root.
const DefaultOutputDir = "build/app/outputs/flutter-apk"

// Config configures a Cleaner.
type Config struct {
	Dir        string       // Output directory to sweep (default: DefaultOutputDir)
	Classifier Classifier   // Suffix matching (default: .apk / .apk.sha1)
	DryRun     bool         // Report only, delete nothing
	Archiver   *Archiver    // Archive matches before deleting them (optional)
	Logger     *slog.Logger // Defaults to slog.Default()
}

// Cleaner sweeps stale artifacts out of one output directory.
type Cleaner struct {
	dir        string
	classifier Classifier
	dryRun     bool
	archiver   *Archiver
	logger     *slog.Logger

	// removeFile deletes one path; os.Remove outside tests.
	removeFile func(string) error
}

// NewCleaner creates a cleaner, filling in defaults.
func NewCleaner(cfg Config) *Cleaner {
	c := &Cleaner{
		dir:        cfg.Dir,
		classifier: cfg.Classifier,
		dryRun:     cfg.DryRun,
		archiver:   cfg.Archiver,
		logger:     cfg.Logger,
		removeFile: os.Remove,
	}
	if c.dir == "" {
		c.dir = DefaultOutputDir
	}
	if len(c.classifier.PackageSuffixes) == 0 && len(c.classifier.ChecksumSuffixes) == 0 {
		c.classifier = DefaultClassifier()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Dir returns the directory this cleaner sweeps.
func (c *Cleaner) Dir() string {
	return c.dir
}

// DryRun reports whether the cleaner only reports matches.
func (c *Cleaner) DryRun() bool {
	return c.dryRun
}

// CleanupResult summarizes a sweep
type CleanupResult struct {
	Dir        string     `json:"dir"`
	Deleted    []Artifact `json:"deleted"`
	Kept       []string   `json:"kept"`
	Errors     []string   `json:"errors,omitempty"`
	ArchiveID  string     `json:"archiveId,omitempty"`
	SpaceSaved int64      `json:"spaceSaved"`
	DryRun     bool       `json:"dryRun"`
}

func newCleanupResult(dir string, dryRun bool) *CleanupResult {
	return &CleanupResult{
		Dir:     dir,
		Deleted: make([]Artifact, 0),
		Kept:    make([]string, 0),
		Errors:  make([]string, 0),
		DryRun:  dryRun,
	}
}

// Clean removes stale package and checksum files from the output directory.
//
// A missing directory yields an empty result. Only immediate regular files
// are considered. A failed delete is recorded in Errors and logged; it does
// not stop the sweep and is not returned. The returned error is non-nil only
// when ctx is done, the path is not a directory, or it cannot be listed.
func (c *Cleaner) Clean(ctx context.Context) (*CleanupResult, error) {
	result := newCleanupResult(c.dir, c.dryRun)

	info, err := os.Stat(c.dir)
	if err != nil {
		if apperrors.IsVanished(err) {
			c.logger.Debug("output directory absent, nothing to clean", "dir", c.dir)
			return result, nil
		}
		return nil, fmt.Errorf("stat %s: %w", c.dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", c.dir, apperrors.ErrOutputNotDirectory)
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if apperrors.IsVanished(err) {
			return result, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.dir, err)
	}

	stale := make([]Artifact, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		// Subdirectories, symlinks and special files are never touched
		if !entry.Type().IsRegular() {
			continue
		}

		kind, ok := c.classifier.Classify(entry.Name())
		if !ok {
			result.Kept = append(result.Kept, entry.Name())
			continue
		}

		a := Artifact{Name: entry.Name(), Kind: kind}
		if fi, err := entry.Info(); err == nil {
			a.Size = fi.Size()
		}
		stale = append(stale, a)
	}

	if len(stale) > 0 && c.archiver != nil && !c.dryRun {
		id, err := c.archiver.Archive(ctx, c.dir, stale)
		switch {
		case err != nil:
			c.logger.Warn("archive failed, deleting without archive", "dir", c.dir, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("archive: %v", err))
		case id == "":
			c.logger.Debug("stale artifacts vanished before archiving", "dir", c.dir)
		default:
			result.ArchiveID = id
			c.logger.Info("archived old artifacts", "archive", id, "count", len(stale))
		}
	}

	for _, a := range stale {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		c.remove(a, result)
	}

	return result, nil
}

func (c *Cleaner) remove(a Artifact, result *CleanupResult) {
	msg := "deleting old APK"
	if a.Kind == KindChecksum {
		msg = "deleting old checksum"
	}

	if c.dryRun {
		c.logger.Info("dry run: "+msg, "file", a.Name)
		result.Deleted = append(result.Deleted, a)
		result.SpaceSaved += a.Size
		return
	}

	c.logger.Info(msg, "file", a.Name)
	err := c.removeFile(filepath.Join(c.dir, a.Name))
	if err != nil && !apperrors.IsVanished(err) {
		// External tooling may hold or rewrite the file; the build goes on.
		c.logger.Warn("delete failed", "file", a.Name, "error", err)
		result.Errors = append(result.Errors, fmt.Sprintf("delete %s: %v", a.Name, err))
		return
	}

	result.Deleted = append(result.Deleted, a)
	result.SpaceSaved += a.Size
}

// Count returns the number of deleted artifacts of the given kind.
func (r *CleanupResult) Count(kind Kind) int {
	n := 0
	for _, a := range r.Deleted {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

// HasErrors reports whether any delete or archive step failed.
func (r *CleanupResult) HasErrors() bool {
	return len(r.Errors) > 0
}
