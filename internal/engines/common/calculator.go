package common

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/darkroomkit/easelcalc/internal/easel"
	"github.com/darkroomkit/easelcalc/internal/engines/limiter"
	"github.com/darkroomkit/easelcalc/internal/fitcache"
	"github.com/darkroomkit/easelcalc/internal/logging"
	"github.com/darkroomkit/easelcalc/internal/metrics"
	"github.com/darkroomkit/easelcalc/pkg/config"
	"github.com/darkroomkit/easelcalc/pkg/core"
	"github.com/darkroomkit/easelcalc/pkg/solver"
)

// Warnings reported alongside a calculation.
const (
	WarningMinBorderTooLarge = "Minimum border too large for paper size"
	WarningSubEasel          = "Paper smaller than easel: mask with sub-easel"
	WarningOversize          = "Paper larger than any catalog easel"
)

// Input is one border calculation request.
type Input struct {
	PaperWidth  float64
	PaperHeight float64
	RatioWidth  float64
	RatioHeight float64
	MinBorder   float64
	OffsetH     float64
	OffsetV     float64

	Landscape       bool
	RatioFlipped    bool
	EnableOffset    bool
	IgnoreMinBorder bool
}

// Calculation is the full result for an Input.
type Calculation struct {
	// Paper is the paper after orientation.
	Paper   core.Size
	Print   core.PrintSize
	Offsets core.OffsetResult
	Borders core.Borders
	Blades  core.BladeReadings
	Fit     core.FitResult
	// SlotMargin is the gap between paper and effective slot on each side when the
	// paper is centered in the slot.
	SlotMargin       core.Size
	BladeThickness   float64
	OptimalMinBorder float64
	Warnings         []string
}

// Calculator runs the border pipeline: fit (through the cache), print size, offset
// clamping, borders and blade readings.
type Calculator struct {
	spec      config.EngineSpec
	resolver  *easel.Resolver
	cache     fitcache.ReadWriter
	optimizer *solver.BorderOptimizer
	limiters  map[limiter.LimiterStrategy]limiter.Limiter
	logger    logr.Logger

	catalog    []core.EaselSize
	registerer prometheus.Registerer
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithEngineSpec sets the engine tunables.
func WithEngineSpec(spec config.EngineSpec) Option {
	return func(c *Calculator) {
		c.spec = spec
	}
}

// WithCatalog replaces the standard easels.
func WithCatalog(sizes []core.EaselSize) Option {
	return func(c *Calculator) {
		c.catalog = sizes
	}
}

// WithCache injects a fit cache instead of building one.
func WithCache(cache fitcache.ReadWriter) Option {
	return func(c *Calculator) {
		c.cache = cache
	}
}

// WithRegisterer registers cache and optimizer metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Calculator) {
		c.registerer = reg
	}
}

// WithLogger sets the calculator logger.
func WithLogger(l logr.Logger) Option {
	return func(c *Calculator) {
		c.logger = l
	}
}

// NewCalculator builds a calculator with its own fit cache unless one is injected.
func NewCalculator(opts ...Option) (*Calculator, error) {
	c := &Calculator{
		spec:   config.DefaultEngineSpec(),
		logger: logging.Log(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine spec: %w", err)
	}

	catalog := easel.DefaultCatalog()
	if c.catalog != nil {
		catalog = easel.NewCatalog(c.catalog)
	}
	c.resolver = easel.NewResolver(catalog)

	var optimizerOpts []solver.BorderOptimizerOption
	if c.registerer != nil {
		om, err := metrics.NewOptimizerMetrics(c.registerer)
		if err != nil {
			return nil, err
		}
		optimizerOpts = append(optimizerOpts, solver.WithObserver(om))
	}
	c.optimizer = solver.NewBorderOptimizer(c.spec, optimizerOpts...)

	if c.cache == nil {
		cacheOpts := []fitcache.Option{
			fitcache.WithCapacity(c.spec.CacheCapacity),
			fitcache.WithLogger(c.logger),
		}
		if c.registerer != nil {
			cm, err := metrics.NewCacheMetrics(c.registerer)
			if err != nil {
				return nil, err
			}
			cacheOpts = append(cacheOpts, fitcache.WithMetrics(cm))
		}
		c.cache = fitcache.New(c.resolver, cacheOpts...)
	}

	c.limiters = make(map[limiter.LimiterStrategy]limiter.Limiter, 2)
	for _, s := range []limiter.LimiterStrategy{limiter.MinBorderStrategy, limiter.PaperEdgeStrategy} {
		l, err := limiter.NewLimiter(s)
		if err != nil {
			return nil, err
		}
		c.limiters[s] = l
	}

	c.logger.V(logging.DEBUG).Info("Calculator ready",
		"easels", catalog.Len(),
		"cacheCapacity", c.cache.Capacity(),
		"snapUnit", c.spec.SnapUnit)

	return c, nil
}

// Cache returns the fit cache used by the calculator.
func (c *Calculator) Cache() fitcache.ReadWriter {
	return c.cache
}

// Catalog returns the easel catalog used for fitting.
func (c *Calculator) Catalog() *easel.Catalog {
	return c.resolver.Catalog()
}

// Spec returns the engine spec.
func (c *Calculator) Spec() config.EngineSpec {
	return c.spec
}

// ResolveFit returns the cached fit for the paper.
func (c *Calculator) ResolveFit(paperW, paperH float64, landscape bool) core.FitResult {
	return c.cache.GetCachedFit(paperW, paperH, landscape)
}

// OptimalMinBorder runs the border optimizer.
func (c *Calculator) OptimalMinBorder(paperW, paperH, ratioW, ratioH, start float64) solver.SearchResult {
	return c.optimizer.Search(paperW, paperH, ratioW, ratioH, start)
}

// Window returns the min-border range the optimizer searches around start.
func (c *Calculator) Window(start float64) (lo, hi float64) {
	return c.optimizer.Window(start)
}

// Calculate runs the full pipeline for in.
func (c *Calculator) Calculate(in Input) Calculation {
	paper := core.Size{Width: in.PaperWidth, Height: in.PaperHeight}.Oriented(in.Landscape)
	ratio := core.Size{Width: in.RatioWidth, Height: in.RatioHeight}.Oriented(in.RatioFlipped)

	out := Calculation{Paper: paper}
	out.Print = core.ComputePrintSize(paper.Width, paper.Height, ratio.Width, ratio.Height, in.MinBorder)
	if out.Print.IsZero() {
		out.Warnings = append(out.Warnings, WarningMinBorderTooLarge)
	}

	offsetH, offsetV := in.OffsetH, in.OffsetV
	if !in.EnableOffset {
		offsetH, offsetV = 0, 0
	}
	strategy := limiter.StrategyFor(in.IgnoreMinBorder)
	out.Offsets = c.limiters[strategy].Limit(limiter.Request{
		PaperW:    paper.Width,
		PaperH:    paper.Height,
		PrintW:    out.Print.PrintW,
		PrintH:    out.Print.PrintH,
		MinBorder: in.MinBorder,
		OffsetH:   offsetH,
		OffsetV:   offsetV,
	})
	if out.Offsets.Warning != "" {
		out.Warnings = append(out.Warnings, out.Offsets.Warning)
	}

	out.Borders = core.BordersFromGaps(out.Offsets.HalfW, out.Offsets.HalfH, out.Offsets.H, out.Offsets.V)
	out.Blades = core.ComputeBladeReadings(out.Print.PrintW, out.Print.PrintH, out.Offsets.H, out.Offsets.V)

	out.Fit = c.cache.GetCachedFit(in.PaperWidth, in.PaperHeight, in.Landscape)
	out.SlotMargin = core.Size{
		Width:  (out.Fit.EffectiveSlot.Width - paper.Width) / 2,
		Height: (out.Fit.EffectiveSlot.Height - paper.Height) / 2,
	}
	if out.Fit.IsNonStandardPaperSize {
		if out.Fit.EffectiveSlot == paper {
			out.Warnings = append(out.Warnings, WarningOversize)
		} else {
			out.Warnings = append(out.Warnings, WarningSubEasel)
		}
	}

	out.BladeThickness = core.BladeThickness(paper.Width, paper.Height, c.spec)
	out.OptimalMinBorder = c.optimizer.OptimalMinBorder(paper.Width, paper.Height, ratio.Width, ratio.Height, in.MinBorder)

	c.logger.V(logging.DEBUG).Info("Calculated borders",
		"paper", paper.String(),
		"easel", out.Fit.EaselSize.String(),
		"printW", out.Print.PrintW,
		"printH", out.Print.PrintH,
		"blades", out.Blades.String(),
		"warnings", len(out.Warnings))

	return out
}
