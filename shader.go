package asciishader

// DefaultRamp is a 69-character dark-to-light ramp that reads well on most
// light-on-dark terminals.
const DefaultRamp = ` .'` + "`" + `^",:;Il!i><~+_-?][}{1)(|\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$`

// Shader is an ordered ramp of characters: index 0 is the visually darkest
// glyph, the final index the lightest. A shader is built once per run and
// never mutated afterwards.
type Shader []rune

// NewShader builds a shader from a literal ramp string. Left-to-right order
// is taken as darkest-to-lightest verbatim; no deduplication or sorting.
func NewShader(ramp string) Shader {
	return Shader([]rune(ramp))
}

// Reversed returns a copy of the shader with the ramp order flipped, for
// terminals that draw dark glyphs on a light background.
func (s Shader) Reversed() Shader {
	r := make(Shader, len(s))
	for i, c := range s {
		r[len(s)-1-i] = c
	}
	return r
}

// Index quantizes a luminance value in [0,1] into a shader index. The scale
// factor is len(s)-1, so only full white lands on the final glyph and full
// black on the first.
func (s Shader) Index(lum float64) int {
	return int(lum * float64(len(s)-1))
}

func (s Shader) String() string {
	return string(s)
}

// dedupe keeps the first occurrence of each rune, preserving input order.
func dedupe(chars string) []rune {
	seen := make(map[rune]bool)
	var out []rune
	for _, c := range chars {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
