package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomerva/chatscope/internal/analyze"
	"github.com/tomerva/chatscope/internal/config"
	"github.com/tomerva/chatscope/internal/parse"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "chatscope",
		Short:   "chatscope - analyze exported WhatsApp chat transcripts",
		Version: version,
	}

	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadChat reads and parses a transcript with the configured parser and
// returns the analyzer to pair with it.
func loadChat(path string, popts ...parse.Option) (parse.ChatData, *parse.Parser, *analyze.Analyzer, error) {
	cfg, err := config.Load()
	if err != nil {
		return parse.ChatData{}, nil, nil, fmt.Errorf("config: %w", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return parse.ChatData{}, nil, nil, fmt.Errorf("read transcript: %w", err)
	}

	popts = append(popts, parse.WithSystemMarkers(cfg.ExtraSystemMarkers))
	parser := parse.New(popts...)
	chat := parser.Parse(string(raw))

	analyzer := analyze.New(
		analyze.WithStopWords(cfg.ExtraStopWords),
		analyze.WithTopWords(cfg.TopWords),
	)
	return chat, parser, analyzer, nil
}
