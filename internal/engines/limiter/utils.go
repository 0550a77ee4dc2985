package limiter

import (
	"math"

	"github.com/darkroomkit/easelcalc/pkg/core"
)

// centeringSlack returns how far the print can move from center on each axis
// before its edge meets the paper edge.
func centeringSlack(req Request) (halfW, halfH float64) {
	return (req.PaperW - req.PrintW) / 2, (req.PaperH - req.PrintH) / 2
}

// clampAxis bounds offset to [-limit, limit]. A negative limit leaves no room to move.
func clampAxis(offset, limit float64) float64 {
	if limit < 0 {
		limit = 0
	}
	clamped := math.Min(math.Max(offset, -limit), limit)
	if clamped == 0 {
		// normalise -0
		return 0
	}
	return clamped
}

// limitWith clamps both axes against the given maxima and attaches warning when
// either offset changed.
func limitWith(req Request, halfW, halfH, maxH, maxV float64, warning string) core.OffsetResult {
	result := core.OffsetResult{
		H:     clampAxis(req.OffsetH, maxH),
		V:     clampAxis(req.OffsetV, maxV),
		HalfW: halfW,
		HalfH: halfH,
	}
	if result.H != req.OffsetH || result.V != req.OffsetV {
		result.Warning = warning
	}
	return result
}
