package main

import (
	"github.com/spf13/cobra"

	"github.com/darkroomkit/easelcalc/api/v1alpha1"
)

type fitOutput struct {
	Paper v1alpha1.Dimensions  `json:"paper" yaml:"paper"`
	Easel v1alpha1.EaselStatus `json:"easel" yaml:"easel"`
}

func newFitCommand(a *app) *cobra.Command {
	var (
		paper     string
		landscape bool
	)

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Show which easel slot a paper size goes in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parsePaper(paper)
			if err != nil {
				return err
			}
			fit := a.calc.ResolveFit(size.Width, size.Height, landscape)
			oriented := size.Oriented(landscape)
			return render(cmd.OutOrStdout(), a.output, fitOutput{
				Paper: v1alpha1.Dimensions{Width: oriented.Width, Height: oriented.Height},
				Easel: v1alpha1.EaselStatus{
					Name:        fit.EaselSize.Name,
					Width:       fit.EaselSize.Width,
					Height:      fit.EaselSize.Height,
					Slot:        v1alpha1.Dimensions{Width: fit.EffectiveSlot.Width, Height: fit.EffectiveSlot.Height},
					NonStandard: fit.IsNonStandardPaperSize,
				},
			})
		},
	}

	cmd.Flags().StringVarP(&paper, "paper", "p", "8x10", "Paper size: a preset name or WxH")
	cmd.Flags().BoolVarP(&landscape, "landscape", "l", false, "Load the paper in landscape")
	return cmd
}
