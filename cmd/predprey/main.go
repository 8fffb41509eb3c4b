package main

import (
	"fmt"
	"io"
	"os"

	"github.com/san-kum/predprey/internal/config"
	"github.com/san-kum/predprey/internal/experiment"
	"github.com/san-kum/predprey/internal/intake"
	"github.com/san-kum/predprey/internal/sim"
	"github.com/san-kum/predprey/internal/tui"
	"github.com/san-kum/predprey/internal/viz"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	preset      string
	useDefaults bool
	interactive bool
	width       int
	height      int
	logLevel    string
)

// main wires the cobra commands and exits with status 1 on any command error.
func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "predprey",
		Short: "simulate Lotka–Volterra predator–prey populations and chart them",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logrus.SetLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(in, out)
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.Flags().StringVar(&configFile, "config", "", "yaml file supplying prompt defaults")
	rootCmd.Flags().StringVar(&preset, "preset", "", "named preset supplying prompt defaults")
	rootCmd.Flags().BoolVar(&useDefaults, "defaults", false, "skip the prompts and use the defaults")
	rootCmd.Flags().BoolVar(&interactive, "interactive", false, "open a pan/zoom chart viewer")
	rootCmd.Flags().IntVar(&width, "width", viz.DefaultWidth, "chart width in columns")
	rootCmd.Flags().IntVar(&height, "height", viz.DefaultHeight, "chart height in rows")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(out, "  %-12s α=%g γ=%g δ=%g β=%g prey0=%g pred0=%g period=%g step=%g\n",
					name, p.Alpha, p.Gamma, p.Delta, p.Beta, p.InitialPrey, p.InitialPredator, p.Horizon, p.TimeStep)
			}
			return nil
		},
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a yaml file with the default parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(out, "wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(presetsCmd, initConfigCmd)
	return rootCmd
}

// resolveDefaults layers the defaults offered at each prompt: built-ins, then
// the preset, then the config file.
func resolveDefaults() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	return cfg, nil
}

func runSimulation(in io.Reader, out io.Writer) error {
	cfg, err := resolveDefaults()
	if err != nil {
		return err
	}

	params, labels := cfg.Params(), cfg.Labels()
	if !useDefaults {
		p := intake.NewPrompter(intake.NewScanner(in), out)
		params, labels, err = intake.Build(p, intake.Fields(params, labels))
		if err != nil {
			logrus.Fatalf("Failed to read parameters: %v", err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"alpha":            params.Alpha,
		"gamma":            params.Gamma,
		"delta":            params.Delta,
		"beta":             params.Beta,
		"initial_prey":     params.InitialPrey,
		"initial_predator": params.InitialPredator,
		"horizon":          params.Horizon,
		"time_step":        params.TimeStep,
	}).Info("running simulation")

	traj, err := experiment.Simulate(params, &sim.LogObserver{
		Every:  samplesPerWeek(params.TimeStep),
		Labels: []string{labels.Prey, labels.Predator},
	})
	if err != nil {
		return err
	}

	logrus.Debugf("recorded %d samples", traj.Len())
	if err := traj.Diverged(); err != nil {
		logrus.Warnf("%v; the time step is likely too large for these rates", err)
	}

	chart := viz.Chart{Width: width, Height: height}
	if interactive {
		return tui.Run(labels, traj, chart)
	}
	return chart.Render(out, labels, traj)
}

// samplesPerWeek is how often the debug observer logs: about once per week
// of simulated time.
func samplesPerWeek(dt float64) int {
	if !(dt > 0 && dt < 1) {
		return 1
	}
	return int(1 / dt)
}
