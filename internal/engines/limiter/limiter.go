package limiter

import (
	"fmt"

	"github.com/darkroomkit/easelcalc/pkg/core"
)

// Default warnings attached when an offset had to be adjusted.
const (
	PaperEdgeWarning = "Offset adjusted to keep print on paper"
	MinBorderWarning = "Offset adjusted to honour min-border"
)

// Request describes a print placed on paper with a requested offset from center.
type Request struct {
	PaperW    float64
	PaperH    float64
	PrintW    float64
	PrintH    float64
	MinBorder float64
	OffsetH   float64
	OffsetV   float64
}

// Limiter is an interface that defines the method for bounding print offsets to physical limits
type Limiter interface {
	// Limit clamps the requested offsets and reports the centering slack used
	Limit(req Request) core.OffsetResult
}

// LimiterStrategy is an enumeration of the different strategies that can be used by the Limiter
type LimiterStrategy int

// enumeration of LimiterStrategy
const (
	// MinBorderStrategy keeps every border at least MinBorder wide
	MinBorderStrategy LimiterStrategy = iota
	// PaperEdgeStrategy only keeps the print on the paper
	PaperEdgeStrategy
)

// String returns the strategy name.
func (s LimiterStrategy) String() string {
	switch s {
	case MinBorderStrategy:
		return "MinBorder"
	case PaperEdgeStrategy:
		return "PaperEdge"
	default:
		return fmt.Sprintf("LimiterStrategy(%d)", int(s))
	}
}

// LimiterConfig holds configuration shared by all limiters
type LimiterConfig struct {
	// Warning replaces the default adjustment warning when set
	Warning string
}

// NewLimiter is a factory that creates a new Limiter based on the provided strategy
func NewLimiter(strategy LimiterStrategy) (Limiter, error) {
	switch strategy {
	case MinBorderStrategy:
		return NewMinBorderLimiter(&MinBorderLimiterConfig{})
	case PaperEdgeStrategy:
		return NewPaperEdgeLimiter(&PaperEdgeLimiterConfig{})
	default:
		return nil, fmt.Errorf("unsupported limiter strategy: %v", strategy)
	}
}

var (
	defaultMinBorderLimiter = &MinBorderLimiter{config: &MinBorderLimiterConfig{LimiterConfig{Warning: MinBorderWarning}}}
	defaultPaperEdgeLimiter = &PaperEdgeLimiter{config: &PaperEdgeLimiterConfig{LimiterConfig{Warning: PaperEdgeWarning}}}
)

// StrategyFor returns the strategy matching the ignoreMinBorder switch.
func StrategyFor(ignoreMinBorder bool) LimiterStrategy {
	if ignoreMinBorder {
		return PaperEdgeStrategy
	}
	return MinBorderStrategy
}

// ClampOffsets bounds offsetH/offsetV so the print stays on the paper and, unless
// ignoreMinBorder is set, every border stays at least minBorder wide.
func ClampOffsets(paperW, paperH, printW, printH, minBorder, offsetH, offsetV float64, ignoreMinBorder bool) core.OffsetResult {
	req := Request{
		PaperW:    paperW,
		PaperH:    paperH,
		PrintW:    printW,
		PrintH:    printH,
		MinBorder: minBorder,
		OffsetH:   offsetH,
		OffsetV:   offsetV,
	}
	if ignoreMinBorder {
		return defaultPaperEdgeLimiter.Limit(req)
	}
	return defaultMinBorderLimiter.Limit(req)
}
