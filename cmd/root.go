package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/femtoskim/femtoskim/skim"
)

var (
	configPath string // YAML selection configuration (empty = defaults)
	eventsPath string // YAML events file to process
	outputPath string // optional YAML dump of the produced tables
	logLevel   string // log verbosity level
	trigger    bool   // trigger mode: store rejected events with empty content
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "femtoskim",
	Short: "Per-event candidate selection and output-table production",
}

// runCmd processes an events file through the producer and prints metrics.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the producer over an events file",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		bundle := skim.DefaultBundle()
		if configPath != "" {
			bundle, err = skim.LoadBundle(configPath)
			if err != nil {
				logrus.Fatalf("unable to read config: %v", err)
			}
		}
		if cmd.Flags().Changed("trigger") {
			bundle.Trigger = trigger
		}

		producer, err := skim.NewProducer(bundle, skim.StaticFieldProvider(bundle.Fields))
		if err != nil {
			logrus.Fatalf("producer setup failed: %v", err)
		}

		if eventsPath == "" {
			logrus.Fatalf("no events file provided")
		}
		events, err := skim.LoadEvents(eventsPath)
		if err != nil {
			logrus.Fatalf("unable to read events: %v", err)
		}
		logrus.Infof("Processing %d events (trigger=%v)", len(events), bundle.Trigger)

		var tables []*skim.EventTable
		for i := range events {
			ev := &events[i]
			table, err := producer.ProcessEvent(&ev.Collision, ev.Tracks, ev.V0s)
			if err != nil {
				logrus.Fatalf("event %d: %v", i, err)
			}
			if table != nil {
				tables = append(tables, table)
			}
		}

		producer.Metrics.Print()

		if outputPath != "" {
			data, err := yaml.Marshal(tables)
			if err != nil {
				logrus.Fatalf("encoding output: %v", err)
			}
			if err := os.WriteFile(outputPath, data, 0o644); err != nil {
				logrus.Fatalf("writing output: %v", err)
			}
			logrus.Infof("Wrote %d event tables to %s", len(tables), outputPath)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to YAML selection configuration")
	runCmd.Flags().StringVar(&eventsPath, "events", "", "Path to YAML events file")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Path for the YAML output dump")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().BoolVar(&trigger, "trigger", false, "Trigger mode: keep rejected events with empty content")

	rootCmd.AddCommand(runCmd)
}
