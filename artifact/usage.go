package artifact

import (
	"os"
)

// UsageStats contains disk usage statistics for an output directory and its
// archives.
type UsageStats struct {
	PackageCount  int   `json:"packageCount"`
	ChecksumCount int   `json:"checksumCount"`
	OtherCount    int   `json:"otherCount"`
	PackageSize   int64 `json:"packageSize"`
	ChecksumSize  int64 `json:"checksumSize"`
	ArchiveCount  int   `json:"archiveCount"`
	ArchiveSize   int64 `json:"archiveSize"`
}

// Reclaimable returns the bytes a sweep would free.
func (s *UsageStats) Reclaimable() int64 {
	return s.PackageSize + s.ChecksumSize
}

// DiskUsage reports what the cleaner would consider stale, without touching
// anything. archiver may be nil.
func DiskUsage(dir string, classifier Classifier, archiver *Archiver) (*UsageStats, error) {
	stats := &UsageStats{}

	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}

		kind, ok := classifier.Classify(entry.Name())
		switch {
		case !ok:
			stats.OtherCount++
		case kind == KindChecksum:
			stats.ChecksumCount++
			stats.ChecksumSize += info.Size()
		default:
			stats.PackageCount++
			stats.PackageSize += info.Size()
		}
	}

	if archiver != nil {
		archives, err := archiver.List()
		if err != nil {
			return nil, err
		}
		for _, a := range archives {
			stats.ArchiveCount++
			stats.ArchiveSize += a.Size
		}
	}

	return stats, nil
}
