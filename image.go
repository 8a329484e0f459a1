package asciishader

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DefaultAspect is the height-to-width ratio assumed for one character cell.
// Terminal cells are taller than wide, so square pixels need fewer rows than
// columns to keep their proportions.
const DefaultAspect = 2.4

type Option func(enc *Encoder)

// WithShader sets the ramp used to map luminance to glyphs.
func WithShader(s Shader) Option {
	return func(enc *Encoder) {
		enc.shader = s
	}
}

// WithFit bounds the rendering to cols x lines character cells.
func WithFit(cols, lines int) Option {
	return func(enc *Encoder) {
		enc.cols = cols
		enc.lines = lines
	}
}

// WithAspect sets the character cell aspect ratio (height over width).
func WithAspect(aspect float64) Option {
	return func(enc *Encoder) {
		enc.aspect = aspect
	}
}

// If used, the ramp is reversed so dark-on-light terminals still get index 0
// on the visually darkest glyph.
func WithInvertedColors() Option {
	return func(enc *Encoder) {
		enc.invert = true
	}
}

type Encoder struct {
	writer io.Writer // Output
	shader Shader    // Dark-to-light ramp
	cols   int       // Available cells
	lines  int
	aspect float64 // Cell height / width
	invert bool    // Reverse ramp polarity
}

func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	enc := Encoder{
		writer: w,
		shader: NewShader(DefaultRamp),
		cols:   80,
		lines:  25,
		aspect: DefaultAspect,
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

/*
Encode resamples the image to a character grid that fits the encoder's cell
bounds, quantizes each sample's perceived brightness into a shader index and
writes the corresponding glyphs to the output, one newline-terminated line
per grid row.

Alpha is dropped rather than composited: color channels arrive
alpha-premultiplied, so a fully transparent pixel renders as the darkest
glyph.
*/
func (enc *Encoder) Encode(img image.Image) error {
	shader := enc.shader
	if enc.invert {
		shader = shader.Reversed()
	}
	if len(shader) < 2 {
		return ConfigError{Param: "shader", Value: shader.String(), Reason: "need at least two characters"}
	}

	bounds := img.Bounds()
	gridW, gridH, err := FitGrid(bounds.Dx(), bounds.Dy(), enc.cols, enc.lines, enc.aspect)
	if err != nil {
		return err
	}

	scaled := resize.Resize(uint(gridW), uint(gridH), img, resize.Bilinear)
	matrix := quantize(scaled, shader)

	line := make([]rune, gridW)
	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			line[x] = shader[matrix[y][x]]
		}
		if _, err := io.WriteString(enc.writer, string(line)+"\n"); err != nil {
			return WriteError{Err: err}
		}
	}
	return nil
}

// quantize maps every sample of the scaled image to a shader index. Indices
// stay in [0, len(shader)-1] for any luminance in [0,1].
func quantize(img image.Image, shader Shader) [][]int {
	bounds := img.Bounds()
	matrix := make([][]int, bounds.Dy())
	for y := range matrix {
		row := make([]int, bounds.Dx())
		for x := range row {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			lum := Luminance(int(r>>8), int(g>>8), int(b>>8))
			row[x] = shader.Index(lum)
		}
		matrix[y] = row
	}
	return matrix
}
