package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvradar/channel"
	"github.com/katalvlaran/lvradar/config"
	"github.com/katalvlaran/lvradar/radar"
)

// flags shared by run and info.
type flags struct {
	configPath string
	targets    []float64
	seed       int64
	workers    int
	pulses     int
	noise      float64
	method     string
	logLevel   string
}

// newRootCmd builds the command tree writing reports to out and logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "radarsim",
		Short: "Simulate a pulsed LFM radar: chirp, echoes, compression, integration, CFAR",
		Long: `radarsim synthesizes a linear-FM pulse, simulates echoes from point targets
in white Gaussian noise, compresses and coherently integrates the pulse train,
then detects targets with CFAR and reports their estimated ranges.

Parameters come from defaults, an optional --config file (TOML, YAML or JSON),
LVRADAR_* environment variables and finally the command-line flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "configuration file")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	run := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation and print a YAML summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulation(cmd, f, out, errOut)
		},
	}
	run.Flags().Float64SliceVarP(&f.targets, "targets", "t", nil, "target ranges in metres (overrides the config file)")
	run.Flags().Int64Var(&f.seed, "seed", 0, "noise seed")
	run.Flags().IntVarP(&f.workers, "workers", "w", 0, "integration workers (0 = GOMAXPROCS)")
	run.Flags().IntVarP(&f.pulses, "pulses", "n", 0, "number of integrated pulses")
	run.Flags().Float64Var(&f.noise, "noise", 0, "complex noise standard deviation")
	run.Flags().StringVar(&f.method, "method", "", "compression engine (fft, direct)")

	info := &cobra.Command{
		Use:   "info",
		Short: "Print the derived radar metrics of a configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			return writeYAML(out, newInfo(cfg))
		},
	}

	root.AddCommand(run, info)

	return root
}

func runSimulation(cmd *cobra.Command, f *flags, out, errOut io.Writer) error {
	log, err := newLogger(errOut, f.logLevel)
	if err != nil {
		return err
	}

	cfg, targets, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("targets") {
		targets = channel.Targets(f.targets...)
	}

	log.WithFields(logrus.Fields{
		"pulses":  cfg.NPulses,
		"targets": channel.Ranges(targets),
		"noise":   cfg.NoiseStd,
		"seed":    cfg.Seed,
	}).Info("starting simulation")

	sim, err := radar.New(cfg, radar.WithLogger(log))
	if err != nil {
		return err
	}
	res, err := sim.Run(cmd.Context(), targets)
	if err != nil {
		return err
	}

	return writeYAML(out, res.Summary())
}

// loadConfig resolves defaults, file, environment and flags, in that order.
func loadConfig(cmd *cobra.Command, f *flags) (radar.Config, []channel.Target, error) {
	var (
		cfg     radar.Config
		targets []channel.Target
		err     error
	)
	if f.configPath != "" {
		cfg, targets, err = config.Load(f.configPath)
	} else {
		cfg, targets, err = config.Default()
	}
	if err != nil {
		return radar.Config{}, nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("pulses") {
		cfg.NPulses = f.pulses
	}
	if fl.Changed("noise") {
		cfg.NoiseStd = f.noise
	}
	if fl.Changed("method") {
		cfg.FilterMethod = f.method
	}
	if err = cfg.Validate(); err != nil {
		return radar.Config{}, nil, err
	}

	return cfg, targets, nil
}

func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log-level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return log, nil
}

// info is the report of the info command.
type info struct {
	PulseSamples     int     `yaml:"pulse_samples"`
	PRISamples       int     `yaml:"pri_samples"`
	PRI              float64 `yaml:"pri_s"`
	RangeResolution  float64 `yaml:"range_resolution_m"`
	RangeBin         float64 `yaml:"range_bin_m"`
	UnambiguousRange float64 `yaml:"unambiguous_range_m"`
	TimeBandwidth    float64 `yaml:"time_bandwidth_product"`
}

func newInfo(cfg radar.Config) info {
	return info{
		PulseSamples:     cfg.PulseSamples(),
		PRISamples:       cfg.PRISamples(),
		PRI:              cfg.PRI(),
		RangeResolution:  cfg.RangeResolution(),
		RangeBin:         cfg.RangeBin(),
		UnambiguousRange: cfg.UnambiguousRange(),
		TimeBandwidth:    cfg.PulseDuration * cfg.Bandwidth,
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return enc.Close()
}
