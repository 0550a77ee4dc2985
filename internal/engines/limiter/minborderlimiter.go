package limiter

import (
	"fmt"
	"math"

	"github.com/darkroomkit/easelcalc/pkg/core"
)

// MinBorderLimiter implements the Limiter interface keeping every border at least
// MinBorder wide
type MinBorderLimiter struct {
	config *MinBorderLimiterConfig
}

// MinBorderLimiterConfig holds the configuration for the MinBorderLimiter
type MinBorderLimiterConfig struct {
	LimiterConfig
}

// NewMinBorderLimiter creates a new MinBorderLimiter instance.
func NewMinBorderLimiter(config *MinBorderLimiterConfig) (*MinBorderLimiter, error) {
	if config == nil {
		return nil, fmt.Errorf("min-border limiter config cannot be nil")
	}
	if config.Warning == "" {
		config.Warning = MinBorderWarning
	}
	return &MinBorderLimiter{config: config}, nil
}

// Limit clamps offsets to the centering slack minus the min border.
func (l *MinBorderLimiter) Limit(req Request) core.OffsetResult {
	halfW, halfH := centeringSlack(req)
	maxH := math.Min(halfW-req.MinBorder, halfW)
	maxV := math.Min(halfH-req.MinBorder, halfH)
	return limitWith(req, halfW, halfH, maxH, maxV, l.config.Warning)
}
