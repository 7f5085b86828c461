package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newSummarizeCmd(a *app) *cobra.Command {
	var (
		maxWords  int
		minWords  int
		showStats bool
	)
	cmd := &cobra.Command{
		Use:   "summarize [file]",
		Short: "Summarize a file or standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("max-words") {
				a.cfg.Summarizer.MaxWords = maxWords
			}
			if cmd.Flags().Changed("min-words") {
				a.cfg.Summarizer.MinInputWords = minWords
			}
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			res, err := a.summarizer().Extract(text)
			if err != nil {
				a.log.Debug("summarization rejected", "err", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Summary)
			if showStats {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d words in, %d sentences kept of %d, fast path: %t\n",
					res.InputWords, res.SelectedSentences, res.Sentences, res.FastPath)
			}
			a.log.Debug("summary written", "input_words", res.InputWords, "fast_path", res.FastPath)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxWords, "max-words", 200, "summary word budget")
	cmd.Flags().IntVar(&minWords, "min-words", 50, "minimum number of input words")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print selection statistics to stderr")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Count words, characters and sentences of a file or standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(a.summarizer().Stats(text))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
