package easel

import (
	"github.com/darkroomkit/easelcalc/pkg/core"
)

// Resolver fits paper against a catalog.
type Resolver struct {
	catalog *Catalog
}

// NewResolver returns a resolver over catalog, or over DefaultCatalog when catalog is nil.
func NewResolver(catalog *Catalog) *Resolver {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Resolver{catalog: catalog}
}

// Catalog returns the catalog the resolver searches.
func (r *Resolver) Catalog() *Catalog {
	return r.catalog
}

// ResolveFit picks the easel for paperWidth x paperHeight. When isLandscape is set the
// paper is rotated before matching.
func (r *Resolver) ResolveFit(paperWidth, paperHeight float64, isLandscape bool) core.FitResult {
	paper := core.Size{Width: paperWidth, Height: paperHeight}.Oriented(isLandscape)

	if e, ok := r.catalog.Lookup(paper.Width, paper.Height); ok {
		return core.FitResult{
			EaselSize:              e,
			EffectiveSlot:          paper,
			IsNonStandardPaperSize: false,
		}
	}

	var (
		best      core.EaselSize
		bestSlot  core.Size
		bestWaste float64
		found     bool
	)
	paperArea := paper.Area()

	for _, e := range r.catalog.ByArea() {
		slot := e.Size()
		switch {
		case slot.Contains(paper):
		case slot.Rotated().Contains(paper):
			slot = slot.Rotated()
		default:
			continue
		}

		waste := e.Area() - paperArea
		if !found || waste < bestWaste {
			best, bestSlot, bestWaste, found = e, slot, waste, true
		}
		if waste == 0 {
			break
		}
	}

	if !found {
		// oversize: the paper is its own easel
		return core.FitResult{
			EaselSize:              core.EaselSize{Width: paper.Width, Height: paper.Height},
			EffectiveSlot:          paper,
			IsNonStandardPaperSize: true,
		}
	}

	return core.FitResult{
		EaselSize:              best,
		EffectiveSlot:          bestSlot,
		IsNonStandardPaperSize: true,
	}
}
