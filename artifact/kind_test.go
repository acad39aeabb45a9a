package artifact

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		wantKind Kind
		wantOK   bool
	}{
		{"package", "app-release.apk", KindPackage, true},
		{"checksum", "app-release.apk.sha1", KindChecksum, true},
		{"split abi package", "app-arm64-v8a-release.apk", KindPackage, true},
		{"text file", "b.txt", "", false},
		{"apk infix only", "notes.apk.txt", "", false},
		{"other checksum", "app.aab.sha1", "", false},
		{"case sensitive", "APP.APK", "", false},
	}

	c := DefaultClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := c.Classify(tt.file)
			if ok != tt.wantOK || kind != tt.wantKind {
				t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)", tt.file, kind, ok, tt.wantKind, tt.wantOK)
			}
		})
	}
}

func TestClassifier_ZeroValueUsesDefaults(t *testing.T) {
	var c Classifier

	if kind, ok := c.Classify("a.apk"); !ok || kind != KindPackage {
		t.Errorf("zero classifier: a.apk = (%q, %v)", kind, ok)
	}
	if kind, ok := c.Classify("a.apk.sha1"); !ok || kind != KindChecksum {
		t.Errorf("zero classifier: a.apk.sha1 = (%q, %v)", kind, ok)
	}
}

func TestClassifier_CustomSuffixes(t *testing.T) {
	c := Classifier{
		PackageSuffixes:  []string{".apk", ".aab"},
		ChecksumSuffixes: []string{".sha1", ".sha256"},
	}

	tests := map[string]Kind{
		"app.aab":        KindPackage,
		"app.aab.sha256": KindChecksum,
		"app.apk.sha1":   KindChecksum,
	}
	for file, want := range tests {
		if kind, ok := c.Classify(file); !ok || kind != want {
			t.Errorf("Classify(%q) = (%q, %v), want %q", file, kind, ok, want)
		}
	}
}

func TestParseSuffixes(t *testing.T) {
	got := ParseSuffixes(" .apk, ,.aab,")
	want := []string{".apk", ".aab"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSuffixes mismatch (-want +got):\n%s", diff)
	}

	if got := ParseSuffixes(""); got != nil {
		t.Errorf("ParseSuffixes(\"\") = %v, want nil", got)
	}
}
