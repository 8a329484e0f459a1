package asciishader

import (
	"fmt"
	"math"
)

// FitGrid computes the character grid for an image of imgW x imgH pixels
// rendered into cols x lines cells whose height-to-width ratio is aspect.
// Whichever axis is the binding constraint is pinned to the available cells
// and the other follows the image's proportions, corrected for the cells
// being taller than wide.
func FitGrid(imgW, imgH, cols, lines int, aspect float64) (gridW, gridH int, err error) {
	if imgW <= 0 || imgH <= 0 {
		return 0, 0, ConfigError{Param: "image size", Value: fmt.Sprintf("%dx%d", imgW, imgH), Reason: "degenerate dimensions"}
	}
	if cols <= 0 || lines <= 0 {
		return 0, 0, ConfigError{Param: "display size", Value: fmt.Sprintf("%dx%d", cols, lines), Reason: "degenerate dimensions"}
	}
	if aspect <= 0 {
		return 0, 0, ConfigError{Param: "aspect", Value: aspect, Reason: "must be positive"}
	}

	displayRatio := (float64(cols) / aspect) / float64(lines)
	imageRatio := float64(imgW) / float64(imgH)

	if displayRatio > imageRatio {
		// Display is relatively wider than the image: height binds.
		gridH = lines
		gridW = int(math.Round(float64(lines) / float64(imgH) * float64(imgW) * aspect))
	} else {
		gridW = cols
		gridH = int(math.Round(float64(cols) / float64(imgW) * float64(imgH) / aspect))
	}

	// Extreme aspect mismatches can round the free axis down to zero; keep
	// at least one cell so the rendering is never empty.
	if gridW < 1 {
		gridW = 1
	}
	if gridH < 1 {
		gridH = 1
	}
	return gridW, gridH, nil
}
