package artifact

import "strings"

// Kind is the role a file plays in the output directory.
type Kind string

// Kind constants.
const (
	KindPackage  Kind = "package"
	KindChecksum Kind = "checksum"
)

// Default suffixes for Flutter's flutter-apk output directory.
const (
	DefaultPackageSuffix  = ".apk"
	DefaultChecksumSuffix = ".apk.sha1"
)

// Artifact is a file the sweep considers stale.
type Artifact struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
	Size int64  `json:"size"`
}

// Classifier matches file names against package and checksum suffixes.
// The zero value matches the Flutter defaults.
type Classifier struct {
	PackageSuffixes  []string
	ChecksumSuffixes []string
}

// DefaultClassifier returns a classifier for .apk and .apk.sha1 files.
func DefaultClassifier() Classifier {
	return Classifier{
		PackageSuffixes:  []string{DefaultPackageSuffix},
		ChecksumSuffixes: []string{DefaultChecksumSuffix},
	}
}

// Classify reports the kind of a file name. Checksum suffixes are tried
// first so "app.apk.sha1" is a checksum even though ".apk" is a substring.
func (c Classifier) Classify(name string) (Kind, bool) {
	pkg, sum := c.PackageSuffixes, c.ChecksumSuffixes
	if len(pkg) == 0 && len(sum) == 0 {
		pkg, sum = []string{DefaultPackageSuffix}, []string{DefaultChecksumSuffix}
	}

	if hasAnySuffix(name, sum) {
		return KindChecksum, true
	}
	if hasAnySuffix(name, pkg) {
		return KindPackage, true
	}
	return "", false
}

func hasAnySuffix(name string, suffixes []string) bool {
	for _, s := range suffixes {
		if s != "" && strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// ParseSuffixes splits a comma-separated suffix list, dropping blanks.
func ParseSuffixes(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
