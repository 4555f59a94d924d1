// Package util is a set of utility variables or methods
package util

import (
	"path/filepath"

	mapset "github.com/deckarep/golang-set/v2"
)

// SupportedExt lists the image extensions an artwork image may use.
var SupportedExt = mapset.NewSet(
	".jpeg", ".jpg", ".JPEG", ".JPG",
	".png", ".PNG",
	".svg", ".SVG",
)

// IsSupportedImage reports whether name carries a supported image extension.
func IsSupportedImage(name string) bool {
	return SupportedExt.Contains(filepath.Ext(name))
}
