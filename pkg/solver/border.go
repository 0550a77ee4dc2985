package solver

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/darkroomkit/easelcalc/pkg/config"
	"github.com/darkroomkit/easelcalc/pkg/core"
)

// Observer receives a summary of every search.
type Observer interface {
	ObserveSearch(evaluated int, score float64, found bool)
}

// SearchResult describes the outcome of a minimum-border search.
type SearchResult struct {
	// Border is the chosen minimum border (the requested one when nothing was found).
	Border float64
	// Score is the snap score of Border; 0 means every gap sits on a snap mark.
	Score float64
	// Evaluated is the number of non-degenerate candidates scored.
	Evaluated int
	// Found is false when no candidate produced a printable area.
	Found bool
}

// BorderOptimizer searches for snapped minimum borders.
type BorderOptimizer struct {
	spec     config.EngineSpec
	observer Observer
}

// BorderOptimizerOption configures a BorderOptimizer.
type BorderOptimizerOption func(*BorderOptimizer)

// WithObserver reports every search to o.
func WithObserver(o Observer) BorderOptimizerOption {
	return func(b *BorderOptimizer) {
		b.observer = o
	}
}

// NewBorderOptimizer creates an optimizer using the search parameters of spec.
func NewBorderOptimizer(spec config.EngineSpec, opts ...BorderOptimizerOption) *BorderOptimizer {
	b := &BorderOptimizer{spec: spec}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Spec returns the engine spec the optimizer was built with.
func (b *BorderOptimizer) Spec() config.EngineSpec {
	return b.spec
}

// Window returns the search bounds for a requested border.
func (b *BorderOptimizer) Window(start float64) (lo, hi float64) {
	return math.Max(b.spec.Epsilon, start-b.spec.SearchSpan), start + b.spec.SearchSpan
}

// OptimalMinBorder returns the border near start whose gaps snap best, rounded to the
// display precision.
func (b *BorderOptimizer) OptimalMinBorder(paperW, paperH, ratioW, ratioH, start float64) float64 {
	return b.Search(paperW, paperH, ratioW, ratioH, start).Border
}

// Search runs the minimum-border search and reports its diagnostics.
func (b *BorderOptimizer) Search(paperW, paperH, ratioW, ratioH, start float64) SearchResult {
	result := b.search(paperW, paperH, ratioW, ratioH, start)
	if b.observer != nil {
		b.observer.ObserveSearch(result.Evaluated, result.Score, result.Found)
	}
	return result
}

func (b *BorderOptimizer) search(paperW, paperH, ratioW, ratioH, start float64) SearchResult {
	notFound := SearchResult{Border: start, Score: math.Inf(1)}
	if ratioH == 0 {
		return notFound
	}

	eps := b.spec.Epsilon
	lo, hi := b.Window(start)
	if !isFinite(start) || !isFinite(lo) || !isFinite(hi) || hi < lo {
		return notFound
	}
	step := math.Max(b.spec.MinStep, (hi-lo)/b.spec.StepDivisor)
	if !(step > 0) || lo+step == lo {
		// the window is too far from zero for step to move a candidate
		return notFound
	}
	candidates := int(math.Floor((hi-lo)/step)) + 1

	best := start
	bestScore := math.Inf(1)
	found := false
	evaluated := 0

	for i := 0; i < candidates; i++ {
		mb := lo + float64(i)*step
		if mb > hi {
			break
		}

		size := core.ComputePrintSize(paperW, paperH, ratioW, ratioH, mb)
		if size.IsZero() {
			continue
		}
		evaluated++

		halfW := (paperW - size.PrintW) / 2
		halfH := (paperH - size.PrintH) / 2
		score := b.snapScore([4]float64{halfW, halfW, halfH, halfH}, bestScore)

		if score < bestScore-eps {
			best, bestScore, found = mb, score, true
			if score < eps {
				break
			}
		}
	}

	if !found {
		notFound.Evaluated = evaluated
		return notFound
	}

	border := scalar.Round(best, b.spec.Precision())
	if border < lo || border > hi {
		border = best
	}
	return SearchResult{Border: border, Score: bestScore, Evaluated: evaluated, Found: true}
}

// snapScore sums each gap's distance to the nearest snap mark, stopping early once the
// partial sum exceeds limit.
func (b *BorderOptimizer) snapScore(gaps [4]float64, limit float64) float64 {
	snap := b.spec.SnapUnit
	score := 0.0
	for _, g := range gaps {
		r := math.Mod(g, snap)
		if r < 0 {
			r += snap
		}
		score += math.Min(r, snap-r)
		if score > limit {
			break
		}
	}
	return score
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
