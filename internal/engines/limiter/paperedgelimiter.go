package limiter

import (
	"fmt"

	"github.com/darkroomkit/easelcalc/pkg/core"
)

// PaperEdgeLimiter implements the Limiter interface keeping the print on the paper
// while ignoring the min border
type PaperEdgeLimiter struct {
	config *PaperEdgeLimiterConfig
}

// PaperEdgeLimiterConfig holds the configuration for the PaperEdgeLimiter
type PaperEdgeLimiterConfig struct {
	LimiterConfig
}

// NewPaperEdgeLimiter creates a new PaperEdgeLimiter instance.
func NewPaperEdgeLimiter(config *PaperEdgeLimiterConfig) (*PaperEdgeLimiter, error) {
	if config == nil {
		return nil, fmt.Errorf("paper-edge limiter config cannot be nil")
	}
	if config.Warning == "" {
		config.Warning = PaperEdgeWarning
	}
	return &PaperEdgeLimiter{config: config}, nil
}

// Limit clamps offsets to the full centering slack.
func (l *PaperEdgeLimiter) Limit(req Request) core.OffsetResult {
	halfW, halfH := centeringSlack(req)
	return limitWith(req, halfW, halfH, halfW, halfH, l.config.Warning)
}
