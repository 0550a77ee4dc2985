package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
	"k8s.io/utils/ptr"

	"github.com/darkroomkit/easelcalc/api/v1alpha1"
	"github.com/darkroomkit/easelcalc/internal/logging"
	"github.com/darkroomkit/easelcalc/internal/presets"
	"github.com/darkroomkit/easelcalc/pkg/core"
)

// layoutFlags are the print layout flags shared by calc and optimize.
type layoutFlags struct {
	paper     string
	ratio     string
	minBorder float64
	landscape bool
	flipRatio bool
}

func (f *layoutFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.paper, "paper", "p", "8x10", "Paper size: a preset name or WxH")
	fs.StringVarP(&f.ratio, "ratio", "r", "3:2", "Aspect ratio: a preset name or W:H")
	fs.Float64VarP(&f.minBorder, "min-border", "b", v1alpha1.DefaultMinBorder, "Minimum border on every edge")
	fs.BoolVarP(&f.landscape, "landscape", "l", false, "Load the paper in landscape")
	fs.BoolVar(&f.flipRatio, "flip-ratio", false, "Rotate the image relative to the paper")
}

func (f *layoutFlags) spec() (v1alpha1.BorderCalculatorSpec, error) {
	paper, err := parsePaper(f.paper)
	if err != nil {
		return v1alpha1.BorderCalculatorSpec{}, err
	}
	ratio, err := parseRatio(f.ratio)
	if err != nil {
		return v1alpha1.BorderCalculatorSpec{}, err
	}
	return v1alpha1.BorderCalculatorSpec{
		Paper:        v1alpha1.Dimensions{Width: paper.Width, Height: paper.Height},
		Ratio:        v1alpha1.Dimensions{Width: ratio.Width, Height: ratio.Height},
		MinBorder:    ptr.To(f.minBorder),
		Landscape:    ptr.To(f.landscape),
		RatioFlipped: ptr.To(f.flipRatio),
	}, nil
}

func parsePaper(s string) (core.Size, error) {
	if p, err := presets.LookupPaper(s); err == nil {
		return p.Size(), nil
	}
	return presets.ParsePaperSize(s)
}

func parseRatio(s string) (presets.AspectRatio, error) {
	if r, err := presets.LookupRatio(s); err == nil {
		return r, nil
	}
	return presets.ParseAspectRatio(s)
}

func newCalcCommand(a *app) *cobra.Command {
	var (
		layout          layoutFlags
		file            string
		name            string
		offsetH         float64
		offsetV         float64
		ignoreMinBorder bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate print size, borders and blade readings",
		Long: `Calculates the full layout for one print.

The request comes from flags or, with --file, from a BorderCalculator document:

  apiVersion: easelcalc.darkroomkit.io/v1alpha1
  kind: BorderCalculator
  spec:
    paper: {width: 8, height: 10}
    ratio: {width: 3, height: 2}
    minBorder: 0.5

The document is printed back with its status filled in.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var bc *v1alpha1.BorderCalculator
			if file != "" {
				var err error
				if bc, err = readDocument(file); err != nil {
					return err
				}
			} else {
				spec, err := layout.spec()
				if err != nil {
					return err
				}
				fs := cmd.Flags()
				if fs.Changed("offset-h") || fs.Changed("offset-v") || ignoreMinBorder {
					spec.Offset = &v1alpha1.OffsetSpec{
						Horizontal:      offsetH,
						Vertical:        offsetV,
						IgnoreMinBorder: ignoreMinBorder,
					}
				}
				bc = v1alpha1.NewBorderCalculator(name, spec)
			}

			if err := a.calc.Evaluate(bc); err != nil {
				return err
			}
			a.logger.V(logging.DEBUG).Info("Calculation complete",
				"name", bc.Name,
				"easel", bc.Status.Easel.Name,
				"warnings", len(bc.Status.Warnings))
			return render(cmd.OutOrStdout(), a.output, bc)
		},
	}

	fs := cmd.Flags()
	layout.register(fs)
	fs.StringVarP(&file, "file", "f", "", "Read a BorderCalculator document instead of flags")
	fs.StringVar(&name, "name", "", "Name recorded in the output document")
	fs.Float64Var(&offsetH, "offset-h", 0, "Horizontal offset of the print from center")
	fs.Float64Var(&offsetV, "offset-v", 0, "Vertical offset of the print from center")
	fs.BoolVar(&ignoreMinBorder, "ignore-min-border", false, "Let offsets push the print up to the paper edge")
	cmd.MarkFlagsMutuallyExclusive("file", "paper")
	return cmd
}

func readDocument(path string) (*v1alpha1.BorderCalculator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var bc v1alpha1.BorderCalculator
	if err := yaml.Unmarshal(data, &bc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if bc.APIVersion == "" && bc.Kind == "" && bc.Spec.Paper == (v1alpha1.Dimensions{}) {
		return nil, fmt.Errorf("%s: no BorderCalculator document found", path)
	}
	return &bc, nil
}
