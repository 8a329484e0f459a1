package asciishader_test

import (
	"strings"

	"asciishader"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"golang.org/x/image/font/gofont/goregular"
)

var _ = Describe("MeasureShader", func() {
	It("orders a space before an at-sign", func() {
		shader, err := asciishader.MeasureShader("@ ", goregular.TTF)
		Expect(err).NotTo(HaveOccurred())
		Expect(shader.String()).To(Equal(" @"))
	})

	It("puts lightly inked glyphs before heavy ones", func() {
		shader, err := asciishader.MeasureShader("@.", goregular.TTF)
		Expect(err).NotTo(HaveOccurred())

		ramp := shader.String()
		Expect(strings.IndexRune(ramp, '.')).To(BeNumerically("<", strings.IndexRune(ramp, '@')))
	})

	It("collapses duplicate candidates, keeping first occurrence", func() {
		shader, err := asciishader.MeasureShader("@@  ..", goregular.TTF)
		Expect(err).NotTo(HaveOccurred())
		Expect(len(shader)).To(Equal(3))
	})

	It("measures every candidate exactly once", func() {
		shader, err := asciishader.MeasureShader(" .:@", goregular.TTF)
		Expect(err).NotTo(HaveOccurred())

		ramp := shader.String()
		Expect(len([]rune(ramp))).To(Equal(4))
		for _, c := range " .:@" {
			Expect(ramp).To(ContainSubstring(string(c)))
		}
	})

	It("rejects an unparseable font", func() {
		_, err := asciishader.MeasureShader("ab", []byte("not a font"))
		Expect(err).To(HaveOccurred())
		Expect(err).To(BeAssignableToTypeOf(asciishader.ResourceError{}))
	})

	It("rejects fewer than two distinct candidates", func() {
		_, err := asciishader.MeasureShader("aaa", goregular.TTF)
		Expect(err).To(BeAssignableToTypeOf(asciishader.ConfigError{}))
	})
})
