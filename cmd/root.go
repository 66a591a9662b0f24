package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
	"github.com/schedsim/schedsim/sim/workload"
)

var (
	logLevel     string // Log verbosity level
	scenarioPath string // Optional YAML scenario file
	showMetrics  bool   // Print aggregate metrics to stderr after the run
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Discrete-time simulator for CPU scheduling policies",
}

// runCmd executes the simulation using positional parameters:
// method (0-6, required), unit count (default 1), slice length (default 1).
// Arrival records are read from stdin; one line per tick is written to stdout.
var runCmd = &cobra.Command{
	Use:   "run method [unitCount [sliceLength]]",
	Short: "Run the scheduling simulation",
	Args:  cobra.MaximumNArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
		logrus.SetOutput(os.Stderr)

		cfg, err := ResolveConfig(args, scenarioPath)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		summary := trace.NewSummary(cfg.Method.String())
		logrus.Infof("Starting %s", summary)

		s, err := sim.NewSimulator(cfg, workload.NewReader(os.Stdin), trace.NewWriter(os.Stdout))
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		if err := s.Run(); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		summary.Ticks = s.Clock
		summary.Completed = s.Metrics.CompletedProcesses
		if showMetrics {
			s.Metrics.Print(os.Stderr, s.Clock)
		}
		logrus.Infof("Finished %s", summary)
	},
}

// ResolveConfig builds the simulator configuration from the positional
// arguments and an optional scenario file. Positional arguments take
// precedence over scenario values; the method must come from one of them.
func ResolveConfig(args []string, scenarioPath string) (sim.Config, error) {
	cfg := sim.DefaultConfig()

	if scenarioPath != "" {
		sc, err := sim.LoadScenario(scenarioPath)
		if err != nil {
			return cfg, err
		}
		if err := sc.Apply(&cfg); err != nil {
			return cfg, err
		}
	}

	if len(args) > 0 {
		m, err := sim.ParseMethod(args[0])
		if err != nil {
			return cfg, err
		}
		cfg.Method = m
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return cfg, fmt.Errorf("bad unit count %q", args[1])
		}
		cfg.UnitCount = n
	}
	if len(args) > 2 {
		n, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("bad slice length %q", args[2])
		}
		cfg.SliceLength = n
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioPath, "config", "", "YAML scenario file (method/units/slice)")
	runCmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print aggregate metrics to stderr after the run")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
