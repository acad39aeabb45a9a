// Package artifact removes stale build outputs from an APK output directory.
//
// Core types:
//   - Classifier: Decides whether a file name is a package or a checksum sidecar
//   - Cleaner: Sweeps one output directory before a new build writes to it
//   - CleanupResult: What a sweep deleted, kept, and failed on
//   - Archiver: Optionally keeps swept files as tar.gz archives
//
// A sweep only looks at the immediate entries of the directory and only
// removes regular files whose names end in a configured suffix. A missing
// directory is an empty sweep. Failed deletes are recorded and logged; they
// never abort the sweep.
//
// Example usage:
//
//	cleaner := artifact.NewCleaner(artifact.Config{
//	    Dir: "build/app/outputs/flutter-apk",
//	})
//	result, err := cleaner.Clean(ctx)
//	fmt.Printf("removed %d files\n", len(result.Deleted))
package artifact
