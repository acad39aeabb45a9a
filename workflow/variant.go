package workflow

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	apperrors "github.com/randalmurphal/apksweep/errors"
)

// Variant is an Android build variant.
type Variant string

// Supported variants.
const (
	VariantDebug   Variant = "debug"
	VariantRelease Variant = "release"
)

// Variants returns every supported variant.
func Variants() []Variant {
	return []Variant{VariantDebug, VariantRelease}
}

// ParseVariant accepts a variant name ("release") or its task name
// ("assembleRelease"), case-insensitively.
func ParseVariant(s string) (Variant, error) {
	name := cases.Lower(language.Und).String(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "assemble")

	for _, v := range Variants() {
		if string(v) == name {
			return v, nil
		}
	}
	return "", apperrors.NewUnknownVariantError(s)
}

// Valid reports whether v is a supported variant.
func (v Variant) Valid() bool {
	for _, known := range Variants() {
		if v == known {
			return true
		}
	}
	return false
}

// TaskName returns the Gradle task that packages v, e.g. "assembleRelease".
func (v Variant) TaskName() string {
	return "assemble" + cases.Title(language.Und).String(string(v))
}

func (v Variant) String() string {
	return string(v)
}
