package asciishader_test

import (
	"asciishader"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("FitGrid", func() {
	It("binds on width when the image is relatively wider than the display", func() {
		// displayRatio = (80/2.4)/24 ~ 1.389, imageRatio = 100/50 = 2.0
		w, h, err := asciishader.FitGrid(100, 50, 80, 24, 2.4)
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(Equal(80))
		Expect(h).To(Equal(17)) // round((80/100)*50/2.4)
	})

	It("binds on height when the display is relatively wider than the image", func() {
		// displayRatio ~ 1.389, imageRatio = 50/100 = 0.5
		w, h, err := asciishader.FitGrid(50, 100, 80, 24, 2.4)
		Expect(err).NotTo(HaveOccurred())
		Expect(h).To(Equal(24))
		Expect(w).To(Equal(29)) // round((24/100)*50*2.4)
	})

	It("clamps a rounded-away axis to one cell", func() {
		w, h, err := asciishader.FitGrid(1, 1000, 80, 24, 2.4)
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(Equal(1))
		Expect(h).To(Equal(24))
	})

	It("rejects a zero-area image", func() {
		_, _, err := asciishader.FitGrid(0, 50, 80, 24, 2.4)
		Expect(err).To(HaveOccurred())
		Expect(err).To(BeAssignableToTypeOf(asciishader.ConfigError{}))
	})

	It("rejects degenerate display cells", func() {
		_, _, err := asciishader.FitGrid(100, 50, 0, 24, 2.4)
		Expect(err).To(BeAssignableToTypeOf(asciishader.ConfigError{}))
	})

	It("rejects a non-positive aspect ratio", func() {
		_, _, err := asciishader.FitGrid(100, 50, 80, 24, 0)
		Expect(err).To(BeAssignableToTypeOf(asciishader.ConfigError{}))
	})

	It("never exceeds the available cells on the binding axis", func() {
		w, h, err := asciishader.FitGrid(1920, 1080, 120, 40, 2.4)
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(BeNumerically("<=", 120))
		Expect(h).To(BeNumerically("<=", 40))
	})
})
