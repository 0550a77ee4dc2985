package easel

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/darkroomkit/easelcalc/pkg/core"
)

var _ = Describe("Resolver", func() {
	var r *Resolver

	BeforeEach(func() {
		r = NewResolver(nil)
	})

	Context("with paper that matches a catalog easel", func() {
		It("should resolve 8x10 portrait to its own easel", func() {
			fit := r.ResolveFit(8, 10, false)

			Expect(fit.IsNonStandardPaperSize).To(BeFalse())
			Expect(fit.EffectiveSlot).To(Equal(core.Size{Width: 8, Height: 10}))
			Expect(fit.EaselSize.Name).To(Equal("8x10"))
		})

		It("should orient the slot for landscape paper", func() {
			fit := r.ResolveFit(8, 10, true)

			Expect(fit.IsNonStandardPaperSize).To(BeFalse())
			Expect(fit.EffectiveSlot).To(Equal(core.Size{Width: 10, Height: 8}))
		})

		It("should match every catalog easel in both orientations", func() {
			for _, e := range StandardEasels {
				for _, landscape := range []bool{false, true} {
					fit := r.ResolveFit(e.Width, e.Height, landscape)
					oriented := e.Size().Oriented(landscape)

					Expect(fit.IsNonStandardPaperSize).To(BeFalse(), "easel %s landscape=%v", e, landscape)
					Expect(fit.EffectiveSlot).To(Equal(oriented))
					Expect(fit.EaselSize).To(Equal(e))
				}
			}
		})
	})

	Context("with paper smaller than an easel", func() {
		It("should pick the minimum-waste easel", func() {
			fit := r.ResolveFit(4, 5, false)

			Expect(fit.IsNonStandardPaperSize).To(BeTrue())
			Expect(fit.EaselSize.Name).To(Equal("5x7"))
			Expect(fit.EffectiveSlot).To(Equal(core.Size{Width: 7, Height: 5}))
		})

		It("should rotate the easel when only the rotated slot contains the paper", func() {
			fit := r.ResolveFit(6, 9, false)

			Expect(fit.IsNonStandardPaperSize).To(BeTrue())
			Expect(fit.EaselSize.Name).To(Equal("8x10"))
			Expect(fit.EffectiveSlot).To(Equal(core.Size{Width: 8, Height: 10}))
		})

		It("should keep the as-is slot when the paper fits unrotated", func() {
			fit := r.ResolveFit(8.5, 11, false)

			Expect(fit.EaselSize.Name).To(Equal("11x14"))
			Expect(fit.EffectiveSlot).To(Equal(core.Size{Width: 14, Height: 11}))
		})
	})

	Context("with paper larger than every easel", func() {
		It("should fall back to the paper itself", func() {
			fit := r.ResolveFit(30, 40, false)

			Expect(fit.IsNonStandardPaperSize).To(BeTrue())
			Expect(fit.EffectiveSlot).To(Equal(core.Size{Width: 30, Height: 40}))
			Expect(fit.EaselSize.Size()).To(Equal(core.Size{Width: 30, Height: 40}))
		})

		It("should orient the fallback for landscape", func() {
			fit := r.ResolveFit(30, 40, true)

			Expect(fit.EffectiveSlot).To(Equal(core.Size{Width: 40, Height: 30}))
		})
	})

	Context("with a custom catalog", func() {
		It("should resolve a rotated exact match directly", func() {
			c := NewCatalog([]core.EaselSize{
				{Name: "big", Width: 20, Height: 20},
				{Name: "snug", Width: 6, Height: 4},
			})
			r := NewResolver(c)

			fit := r.ResolveFit(4, 6, false)
			Expect(fit.IsNonStandardPaperSize).To(BeFalse())
			Expect(fit.EaselSize.Name).To(Equal("snug"))
			Expect(fit.EffectiveSlot).To(Equal(core.Size{Width: 4, Height: 6}))
		})

		It("should fall back when the catalog is empty", func() {
			fit := NewResolver(NewCatalog(nil)).ResolveFit(8, 10, false)

			Expect(fit.IsNonStandardPaperSize).To(BeTrue())
			Expect(fit.EffectiveSlot).To(Equal(core.Size{Width: 8, Height: 10}))
		})
	})

	It("should never return a slot smaller than the oriented paper", func() {
		papers := []core.Size{
			{Width: 4, Height: 5}, {Width: 3.5, Height: 5}, {Width: 8.5, Height: 11},
			{Width: 12, Height: 16}, {Width: 19, Height: 23}, {Width: 24, Height: 20},
			{Width: 30, Height: 40}, {Width: 0, Height: 0}, {Width: 6, Height: 15},
		}
		for _, p := range papers {
			for _, landscape := range []bool{false, true} {
				fit := r.ResolveFit(p.Width, p.Height, landscape)
				oriented := p.Oriented(landscape)

				Expect(fit.EffectiveSlot.Width).To(BeNumerically(">=", oriented.Width), "paper %s landscape=%v", p, landscape)
				Expect(fit.EffectiveSlot.Height).To(BeNumerically(">=", oriented.Height), "paper %s landscape=%v", p, landscape)
			}
		}
	})
})
