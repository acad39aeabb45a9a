package workflow

import (
	"errors"
	"testing"

	apperrors "github.com/randalmurphal/apksweep/errors"
)

func TestVariant_TaskName(t *testing.T) {
	tests := []struct {
		variant Variant
		want    string
	}{
		{VariantDebug, "assembleDebug"},
		{VariantRelease, "assembleRelease"},
	}
	for _, tt := range tests {
		if got := tt.variant.TaskName(); got != tt.want {
			t.Errorf("%s.TaskName() = %q, want %q", tt.variant, got, tt.want)
		}
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"debug", VariantDebug, false},
		{"Release", VariantRelease, false},
		{" RELEASE ", VariantRelease, false},
		{"assembleDebug", VariantDebug, false},
		{"assembleRelease", VariantRelease, false},
		{"profile", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVariant(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, apperrors.ErrUnknownVariant) {
				t.Errorf("error should wrap ErrUnknownVariant, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseVariant(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestVariant_Valid(t *testing.T) {
	if !VariantDebug.Valid() || !VariantRelease.Valid() {
		t.Error("built-in variants should be valid")
	}
	if Variant("profile").Valid() {
		t.Error("profile should not be valid")
	}
}
