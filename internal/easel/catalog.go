package easel

import (
	"sort"

	"github.com/darkroomkit/easelcalc/pkg/core"
)

// StandardEasels are the easels the engine knows about when nothing else is configured.
// Dimensions are stored landscape-first, the way the easel rulers are marked.
var StandardEasels = []core.EaselSize{
	{Name: "5x7", Width: 7, Height: 5},
	{Name: "8x10", Width: 10, Height: 8},
	{Name: "11x14", Width: 14, Height: 11},
	{Name: "16x20", Width: 20, Height: 16},
	{Name: "20x24", Width: 24, Height: 20},
}

// Catalog is an immutable set of easels.
type Catalog struct {
	sizes  []core.EaselSize
	byArea []core.EaselSize
	exact  map[core.Size]core.EaselSize
}

var defaultCatalog = NewCatalog(StandardEasels)

// DefaultCatalog returns the catalog built from StandardEasels.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// NewCatalog builds a catalog from sizes. Entries with a non-positive dimension and
// entries whose dimensions (in either orientation) repeat an earlier entry are dropped.
func NewCatalog(sizes []core.EaselSize) *Catalog {
	c := &Catalog{
		sizes: make([]core.EaselSize, 0, len(sizes)),
		exact: make(map[core.Size]core.EaselSize, 2*len(sizes)),
	}

	for _, e := range sizes {
		if e.Width <= 0 || e.Height <= 0 {
			continue
		}
		if _, dup := c.exact[e.Size()]; dup {
			continue
		}
		c.sizes = append(c.sizes, e)
		c.exact[e.Size()] = e
		c.exact[e.Size().Rotated()] = e
	}

	c.byArea = make([]core.EaselSize, len(c.sizes))
	copy(c.byArea, c.sizes)
	sort.SliceStable(c.byArea, func(i, j int) bool {
		return c.byArea[i].Area() < c.byArea[j].Area()
	})

	return c
}

// Lookup returns the easel whose dimensions equal width x height in either orientation.
func (c *Catalog) Lookup(width, height float64) (core.EaselSize, bool) {
	e, ok := c.exact[core.Size{Width: width, Height: height}]
	return e, ok
}

// ByArea returns the easels sorted by ascending area; equal areas keep catalog order.
// The returned slice must not be modified.
func (c *Catalog) ByArea() []core.EaselSize {
	return c.byArea
}

// Sizes returns the easels in catalog order. The returned slice must not be modified.
func (c *Catalog) Sizes() []core.EaselSize {
	return c.sizes
}

// Len returns the number of easels in the catalog.
func (c *Catalog) Len() int {
	return len(c.sizes)
}
