package asciishader

// Luminance converts an RGB triple, each channel in [0,255], to perceived
// brightness in [0,1]. Green dominates and blue contributes least, so a full
// yellow pixel reads brighter than a full blue one of equal channel magnitude.
// 0.299 R + 0.587 G + 0.114 B
func Luminance(r, g, b int) float64 {
	return float64(299*r+587*g+114*b) / 255000
}
