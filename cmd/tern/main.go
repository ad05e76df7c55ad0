package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tern/internal/app"
	"tern/internal/config"
)

const Version = "0.3.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tern: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		resetColors bool
		logFile     string
	)

	cmd := &cobra.Command{
		Use:           "tern [file]",
		Short:         "A small modal terminal text editor",
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(logFile)

			cfg, warnings := config.Load(config.DefaultPath())
			for _, w := range warnings {
				log.Warn(w)
			}
			if resetColors {
				cfg.Palette = config.DefaultPalette()
				if err := cfg.Save(); err != nil {
					return fmt.Errorf("reset colors: %w", err)
				}
			}

			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			a, err := app.New(cfg, log, file)
			if err != nil {
				return err
			}
			return a.Run()
		},
	}

	cmd.Flags().BoolVar(&resetColors, "reset-colors", false, "restore the default palette and save it")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append debug logs to this file")
	return cmd
}

// newLogger writes to the given file, or discards everything. The terminal
// is in raw mode while the editor runs, so nothing may log to stderr.
func newLogger(path string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	if path == "" {
		return log
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tern: log file: %v\n", err)
		return log
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	return log
}
