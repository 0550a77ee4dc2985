package main

import (
	"github.com/spf13/cobra"

	"github.com/darkroomkit/easelcalc/internal/engines/common"
	"github.com/darkroomkit/easelcalc/internal/logging"
	"github.com/darkroomkit/easelcalc/pkg/core"
)

type optimizeOutput struct {
	Requested float64 `json:"requested" yaml:"requested"`
	Suggested float64 `json:"suggested" yaml:"suggested"`
	Found     bool    `json:"found" yaml:"found"`
	Score     float64 `json:"score,omitempty" yaml:"score,omitempty"`
	Evaluated int     `json:"evaluated" yaml:"evaluated"`
	WindowLo  float64 `json:"windowLo" yaml:"windowLo"`
	WindowHi  float64 `json:"windowHi" yaml:"windowHi"`
}

func newOptimizeCommand(a *app) *cobra.Command {
	var layout layoutFlags

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Suggest a min border that puts every border on a ruler mark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := layout.spec()
			if err != nil {
				return err
			}
			in := common.InputFromSpec(spec)
			paper := core.Size{Width: in.PaperWidth, Height: in.PaperHeight}.Oriented(in.Landscape)
			ratio := core.Size{Width: in.RatioWidth, Height: in.RatioHeight}.Oriented(in.RatioFlipped)

			res := a.calc.OptimalMinBorder(paper.Width, paper.Height, ratio.Width, ratio.Height, in.MinBorder)
			lo, hi := a.calc.Window(in.MinBorder)
			a.logger.V(logging.DEBUG).Info("Border search finished",
				"start", in.MinBorder,
				"border", res.Border,
				"found", res.Found,
				"evaluated", res.Evaluated)

			out := optimizeOutput{
				Requested: in.MinBorder,
				Suggested: res.Border,
				Found:     res.Found,
				Evaluated: res.Evaluated,
				WindowLo:  lo,
				WindowHi:  hi,
			}
			if res.Found {
				out.Score = res.Score
			}
			return render(cmd.OutOrStdout(), a.output, out)
		},
	}

	layout.register(cmd.Flags())
	return cmd
}
