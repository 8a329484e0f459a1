package asciishader

import (
	"image"
	"sort"

	"github.com/golang/freetype"
	"golang.org/x/image/font"
)

// Every candidate glyph is rasterized onto the same fixed monochrome cell so
// that mean-intensity scores compare like-for-like across characters.
const (
	glyphCellWidth  = 10
	glyphCellHeight = 20
	glyphFontSize   = 18
	glyphDPI        = 72
)

/*
MeasureShader builds a shader empirically: each candidate character is drawn
white-on-black onto a blank 10x20 grayscale cell with the given TrueType font
and scored by the cell's mean pixel intensity. The candidates are then sorted
ascending by score, so characters that leave more ink under this font land at
the light end of the ramp. Duplicates are collapsed, keeping first occurrence;
score ties keep the candidates' original order.

A score is a property of the rendering, not of the character in the abstract:
the same candidate set measured under a different font can come out in a
different order.
*/
func MeasureShader(chars string, fontData []byte) (Shader, error) {
	ttf, err := freetype.ParseFont(fontData)
	if err != nil {
		return nil, ResourceError{Resource: "font", Err: err}
	}

	candidates := dedupe(chars)
	if len(candidates) < 2 {
		return nil, ConfigError{Param: "chars", Value: chars, Reason: "need at least two distinct characters"}
	}

	type sample struct {
		char  rune
		score float64
	}
	samples := make([]sample, 0, len(candidates))

	ctx := freetype.NewContext()
	ctx.SetDPI(glyphDPI)
	ctx.SetFont(ttf)
	ctx.SetFontSize(glyphFontSize)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingNone)

	// Baseline sits one em down so the glyph body hangs inside the cell.
	baseline := freetype.Pt(0, int(ctx.PointToFixed(glyphFontSize)>>6))

	for _, c := range candidates {
		cell := image.NewGray(image.Rect(0, 0, glyphCellWidth, glyphCellHeight))
		ctx.SetClip(cell.Bounds())
		ctx.SetDst(cell)
		if _, err := ctx.DrawString(string(c), baseline); err != nil {
			return nil, ResourceError{Resource: "font", Err: err}
		}

		var sum int
		for _, px := range cell.Pix {
			sum += int(px)
		}
		mean := float64(sum) / float64(len(cell.Pix)) / 0xff
		samples = append(samples, sample{char: c, score: mean})
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].score < samples[j].score
	})

	shader := make(Shader, len(samples))
	for i, s := range samples {
		shader[i] = s.char
	}
	return shader, nil
}
