package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"textsum/internal/config"
	"textsum/internal/logger"
	"textsum/internal/summarizer"
)

// app carries what every command needs once flags are parsed.
type app struct {
	cfg     *config.AppConfig
	cfgPath string
	log     logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		cfgPath  string
		logLevel string
		logJSON  bool
	)
	root := &cobra.Command{
		Use:           "textsum",
		Short:         "Extractive text summarizer",
		Long:          "textsum condenses pasted text into an extractive summary built from its highest scoring sentences.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if cfgPath == "" {
				a.cfg, a.cfgPath, err = config.LoadDefault()
			} else {
				a.cfg, err = config.Load(cfgPath)
				a.cfgPath = cfgPath
			}
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("log-level") {
				a.cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("log-json") {
				a.cfg.Log.JSON = logJSON
			}
			a.log = logger.NewLogger(&logger.Config{
				Level:      logger.ParseLevel(a.cfg.Log.Level),
				Output:     cmd.ErrOrStderr(),
				JSON:       a.cfg.Log.JSON,
				TimeFormat: "15:04:05",
			})
			a.log.Debug("config loaded", "path", a.cfgPath)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, a, a.cfg.Metrics.Addr)
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file (defaults to ./config.yaml or ~/.config/textsum/config.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit logs as JSON")

	root.AddCommand(
		newSummarizeCmd(a),
		newStatsCmd(a),
		newTUICmd(a),
	)
	return root
}

func (a *app) summarizer() *summarizer.Summarizer {
	return summarizer.New(summarizer.Config{
		MinInputWords: a.cfg.Summarizer.MinInputWords,
		MaxWords:      a.cfg.Summarizer.MaxWords,
	})
}

// readInput reads the file named by args, or stdin when no file or "-" is given.
func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}
