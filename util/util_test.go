package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsSupportedImage(t *testing.T) {
	for name, want := range map[string]bool{
		"art_1.svg":      true,
		"ART_2.SVG":      true,
		"sunflowers.jpg": true,
		"wave.JPEG":      true,
		"starry.png":     true,
		"notes.txt":      false,
		"noext":          false,
		"archive.svg.gz": false,
	} {
		require.Equal(t, want, IsSupportedImage(name), name)
	}
}
