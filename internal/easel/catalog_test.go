package easel

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/darkroomkit/easelcalc/pkg/core"
)

var _ = Describe("Catalog", func() {
	Context("with the standard easels", func() {
		var c *Catalog

		BeforeEach(func() {
			c = DefaultCatalog()
		})

		It("should contain every standard easel", func() {
			Expect(c.Len()).To(Equal(len(StandardEasels)))
			Expect(c.Sizes()).To(Equal(StandardEasels))
		})

		It("should find exact matches in both orientations", func() {
			for _, e := range StandardEasels {
				got, ok := c.Lookup(e.Width, e.Height)
				Expect(ok).To(BeTrue(), "lookup %s", e)
				Expect(got).To(Equal(e))

				got, ok = c.Lookup(e.Height, e.Width)
				Expect(ok).To(BeTrue(), "rotated lookup %s", e)
				Expect(got).To(Equal(e))
			}
		})

		It("should miss sizes not in the catalog", func() {
			_, ok := c.Lookup(8.5, 11)
			Expect(ok).To(BeFalse())
		})

		It("should sort by ascending area", func() {
			sorted := c.ByArea()
			Expect(sorted).To(HaveLen(c.Len()))
			for i := 1; i < len(sorted); i++ {
				Expect(sorted[i-1].Area()).To(BeNumerically("<=", sorted[i].Area()))
			}
		})
	})

	Context("with a custom list", func() {
		It("should drop invalid and duplicate entries", func() {
			c := NewCatalog([]core.EaselSize{
				{Name: "a", Width: 10, Height: 8},
				{Name: "zero", Width: 0, Height: 8},
				{Name: "negative", Width: 5, Height: -1},
				{Name: "b", Width: 8, Height: 10},
				{Name: "c", Width: 6, Height: 4},
			})

			Expect(c.Len()).To(Equal(2))
			got, ok := c.Lookup(8, 10)
			Expect(ok).To(BeTrue())
			Expect(got.Name).To(Equal("a"))
			Expect(c.ByArea()[0].Name).To(Equal("c"))
		})

		It("should keep catalog order among equal areas", func() {
			c := NewCatalog([]core.EaselSize{
				{Name: "first", Width: 12, Height: 2},
				{Name: "second", Width: 6, Height: 4},
				{Name: "small", Width: 2, Height: 2},
			})

			Expect(c.ByArea()).To(Equal([]core.EaselSize{
				{Name: "small", Width: 2, Height: 2},
				{Name: "first", Width: 12, Height: 2},
				{Name: "second", Width: 6, Height: 4},
			}))
		})

		It("should tolerate an empty list", func() {
			c := NewCatalog(nil)
			Expect(c.Len()).To(BeZero())
			Expect(c.ByArea()).To(BeEmpty())
		})
	})
})
