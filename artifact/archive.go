package artifact

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"

	apperrors "github.com/randalmurphal/apksweep/errors"
)

const archiveExt = ".tar.gz"

// runIDAlphabet keeps run IDs lowercase and shell-safe.
const runIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewRunID returns a sweep run ID of the form "2025-01-15-k3x9q2mz".
// The date prefix decides which monthly archive directory the run lands in.
func NewRunID(now time.Time) (string, error) {
	suffix, err := nanoid.Generate(runIDAlphabet, 8)
	if err != nil {
		return "", fmt.Errorf("generate run id: %w", err)
	}
	return now.Format("2006-01-02") + "-" + suffix, nil
}

// Archiver stores swept artifacts as <baseDir>/<YYYY-MM>/<runID>.tar.gz.
type Archiver struct {
	baseDir string
	now     func() time.Time
}

// NewArchiver creates an archiver rooted at baseDir.
func NewArchiver(baseDir string) *Archiver {
	return &Archiver{
		baseDir: baseDir,
		now:     time.Now,
	}
}

// BaseDir returns the archive root.
func (a *Archiver) BaseDir() string {
	return a.baseDir
}

// Archive writes the named files from srcDir into a new archive and returns
// its run ID. Nothing is deleted here; the Cleaner removes the originals.
// When none of the files exist any more no archive is kept and the run ID
// is "".
func (a *Archiver) Archive(ctx context.Context, srcDir string, artifacts []Artifact) (string, error) {
	runID, err := NewRunID(a.now())
	if err != nil {
		return "", err
	}

	archiveDir := filepath.Join(a.baseDir, monthOf(runID))
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", err
	}

	archivePath := filepath.Join(archiveDir, runID+archiveExt)
	added, err := writeArchive(ctx, archivePath, srcDir, runID, artifacts)
	if err != nil {
		os.Remove(archivePath)
		return "", err
	}
	if added == 0 {
		if err := os.Remove(archivePath); err != nil {
			return "", fmt.Errorf("remove empty archive: %w", err)
		}
		return "", nil
	}

	return runID, nil
}

func writeArchive(ctx context.Context, archivePath, srcDir, runID string, artifacts []Artifact) (int, error) {
	f, err := os.Create(archivePath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	added := 0
	for _, art := range artifacts {
		if err := ctx.Err(); err != nil {
			return added, err
		}
		if err := addFile(tw, filepath.Join(srcDir, art.Name), runID+"/"+art.Name); err != nil {
			// The build may have removed it already; archive what is left.
			if apperrors.IsVanished(err) {
				continue
			}
			return added, fmt.Errorf("add %s: %w", art.Name, err)
		}
		added++
	}

	// Close writers in order so the gzip footer lands on disk
	if err := tw.Close(); err != nil {
		return added, err
	}
	if err := gz.Close(); err != nil {
		return added, err
	}
	return added, f.Close()
}

func addFile(tw *tar.Writer, path, name string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	header.Name = name

	if err := tw.WriteHeader(header); err != nil {
		return err
	}
	_, err = io.Copy(tw, file)
	return err
}

// ArchiveInfo describes one stored archive.
type ArchiveInfo struct {
	RunID   string    `json:"runId"`
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modTime"`
}

// List returns all archives, newest first. A missing archive root is empty.
func (a *Archiver) List() ([]ArchiveInfo, error) {
	var archives []ArchiveInfo

	err := filepath.Walk(a.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Ignore errors, just skip
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), archiveExt) {
			return nil
		}
		archives = append(archives, ArchiveInfo{
			RunID:   strings.TrimSuffix(info.Name(), archiveExt),
			Path:    path,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	sort.Slice(archives, func(i, j int) bool {
		if archives[i].ModTime.Equal(archives[j].ModTime) {
			return archives[i].RunID > archives[j].RunID
		}
		return archives[i].ModTime.After(archives[j].ModTime)
	})
	return archives, nil
}

// PruneResult summarizes archive pruning.
type PruneResult struct {
	Deleted    []string `json:"deleted"`
	Kept       []string `json:"kept"`
	Errors     []string `json:"errors,omitempty"`
	SpaceSaved int64    `json:"spaceSaved"`
}

// Prune removes archives older than retentionDays. A non-positive retention
// keeps everything.
func (a *Archiver) Prune(retentionDays int, dryRun bool) (*PruneResult, error) {
	result := &PruneResult{
		Deleted: make([]string, 0),
		Kept:    make([]string, 0),
		Errors:  make([]string, 0),
	}

	archives, err := a.List()
	if err != nil {
		return nil, err
	}

	threshold := a.now().Add(-time.Duration(retentionDays) * 24 * time.Hour)
	for _, arc := range archives {
		if retentionDays <= 0 || !arc.ModTime.Before(threshold) {
			result.Kept = append(result.Kept, arc.RunID)
			continue
		}
		if !dryRun {
			if err := os.Remove(arc.Path); err != nil && !os.IsNotExist(err) {
				result.Errors = append(result.Errors, fmt.Sprintf("delete archive %s: %v", arc.RunID, err))
				continue
			}
		}
		result.Deleted = append(result.Deleted, arc.RunID)
		result.SpaceSaved += arc.Size
	}

	return result, nil
}

// Restore extracts the files of one archive into destDir, overwriting files
// with the same name.
func (a *Archiver) Restore(runID, destDir string) ([]string, error) {
	archivePath := a.find(runID)
	if archivePath == "" {
		return nil, apperrors.NewArchiveNotFoundError(runID)
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, err
	}
	return extractArchive(archivePath, runID, destDir)
}

func (a *Archiver) find(runID string) string {
	path := filepath.Join(a.baseDir, monthOf(runID), runID+archiveExt)
	if _, err := os.Stat(path); err == nil {
		return path
	}

	// Try searching all archive directories
	var found string
	filepath.Walk(a.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.Name() == runID+archiveExt {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	return found
}

func extractArchive(archivePath, runID, destDir string) ([]string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	var restored []string

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return restored, err
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}

		name := strings.TrimPrefix(header.Name, runID+"/")
		target := filepath.Join(destDir, name)

		// Ensure target is within destDir
		rel, err := filepath.Rel(destDir, target)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return restored, fmt.Errorf("invalid path in archive: %s", header.Name)
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return restored, err
		}
		out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(header.Mode).Perm())
		if err != nil {
			return restored, err
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return restored, err
		}
		if err := out.Close(); err != nil {
			return restored, err
		}
		restored = append(restored, name)
	}

	return restored, nil
}

func monthOf(runID string) string {
	// Expected format: "2025-01-15-..."
	if len(runID) >= 7 {
		return runID[:7]
	}
	return time.Now().Format("2006-01")
}
