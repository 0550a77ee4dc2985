package main

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/darkroomkit/easelcalc/internal/config"
	"github.com/darkroomkit/easelcalc/internal/engines/common"
	"github.com/darkroomkit/easelcalc/internal/logging"
)

// app holds state shared by every subcommand once the root pre-run has finished.
type app struct {
	v           *viper.Viper
	verbose     bool
	output      string
	dumpMetrics bool

	logger   logr.Logger
	registry *prometheus.Registry
	calc     *common.Calculator
}

func newRootCommand() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "easelcalc",
		Short: "Darkroom border and easel calculator",
		Long: `easelcalc lays out a print on enlarging paper.

It sizes the print for a negative's aspect ratio inside a minimum border, picks
the easel slot the paper goes in, clamps off-center offsets, and reports the
blade readings to set on the easel.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.dumpMetrics {
				return nil
			}
			return writeMetrics(cmd.OutOrStdout(), a.registry)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.StringVarP(&a.output, "output", "o", formatYAML, "Output format: yaml or json")
	pf.BoolVar(&a.dumpMetrics, "dump-metrics", false, "Print engine metrics in Prometheus text format after the result")
	if err := config.BindFlags(a.v, pf); err != nil {
		// flags are registered on a fresh set; failure is a programming error
		panic(err)
	}

	root.AddCommand(newCalcCommand(a))
	root.AddCommand(newFitCommand(a))
	root.AddCommand(newOptimizeCommand(a))
	root.AddCommand(newEaselsCommand(a))
	return root
}

// setup builds the logger, loads the engine configuration and constructs the calculator.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := checkFormat(a.output); err != nil {
		return err
	}

	verbosity := 0
	if a.verbose {
		verbosity = logging.DEBUG
	}
	logger, err := logging.NewLogger(verbosity, false)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logging.SetLogger(logger)
	a.logger = logger.WithName(cmd.Name())

	cfg, err := config.LoadEngineConfig(a.v)
	if err != nil {
		return err
	}

	a.registry = prometheus.NewRegistry()
	a.calc, err = common.NewCalculator(
		common.WithEngineSpec(cfg.Engine),
		common.WithCatalog(cfg.Catalog()),
		common.WithRegisterer(a.registry),
		common.WithLogger(a.logger),
	)
	if err != nil {
		return fmt.Errorf("failed to build calculator: %w", err)
	}
	return nil
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if err := writeFamily(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func writeFamily(w io.Writer, mf *dto.MetricFamily) error {
	if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
		return fmt.Errorf("writing metric %s: %w", mf.GetName(), err)
	}
	return nil
}
