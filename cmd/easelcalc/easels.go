package main

import (
	"github.com/spf13/cobra"

	"github.com/darkroomkit/easelcalc/internal/presets"
	"github.com/darkroomkit/easelcalc/pkg/core"
)

type easelsOutput struct {
	Easels []core.EaselSize `json:"easels" yaml:"easels"`
	Papers []string         `json:"papers,omitempty" yaml:"papers,omitempty"`
	Ratios []string         `json:"ratios,omitempty" yaml:"ratios,omitempty"`
}

func newEaselsCommand(a *app) *cobra.Command {
	var withPresets bool

	cmd := &cobra.Command{
		Use:   "easels",
		Short: "List the easel catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := easelsOutput{Easels: a.calc.Catalog().Sizes()}
			if withPresets {
				for _, p := range presets.PaperSizes {
					out.Papers = append(out.Papers, p.Name)
				}
				for _, r := range presets.AspectRatios {
					out.Ratios = append(out.Ratios, r.Name)
				}
			}
			return render(cmd.OutOrStdout(), a.output, out)
		},
	}

	cmd.Flags().BoolVar(&withPresets, "presets", false, "Also list preset paper sizes and aspect ratios")
	return cmd
}
