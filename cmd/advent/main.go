package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"

	"github.com/vancomm/advent/internal/algebra"
	"github.com/vancomm/advent/internal/download"
	"github.com/vancomm/advent/internal/puzzle"
	"github.com/vancomm/advent/internal/registry"
	"github.com/vancomm/advent/years"
)

var (
	log = logrus.New()

	configPath string
	config     Config
	verbose    bool

	configFlagSet bool
)

var rootCmd = &cobra.Command{
	Use:           "advent",
	Short:         "Run Advent of Code solutions",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFlagSet = cmd.Flags().Changed("config")

		var err error
		config, err = loadConfig(configPath, configFlagSet)
		if err != nil {
			return err
		}

		setupLogging()
		log.WithFields(config.Fields()).Debug("config")

		// Manifest mismatches mean a day file exists on disk whose
		// package was never imported; fail fast before running
		// anything.
		return registry.Verify(years.Manifest)
	},
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}

	for _, l := range []*logrus.Logger{log, puzzle.Log, download.Log, algebra.Log} {
		l.SetLevel(logLevel)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}

	if config.LogFile == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   config.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Warn("unable to log to file: ", err)
		return
	}
	for _, l := range []*logrus.Logger{log, puzzle.Log, download.Log, algebra.Log} {
		l.AddHook(hook)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(genCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
