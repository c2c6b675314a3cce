package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomerva/chatscope/internal/parse"
)

func doctorCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "doctor <transcript.txt>",
		Short: "Self-check: parse a transcript and show diagnostics",
		Long: `Parses the transcript and reports what the parser recognized: message
and system-event counts, participants, and the anomalies that silently
degrade results (unmatched lines, timestamps that fell back to "now").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var popts []parse.Option
			if verbose {
				popts = append(popts, parse.WithDebugLogger(func(format string, a ...interface{}) {
					fmt.Fprintf(os.Stderr, "  debug: "+format+"\n", a...)
				}))
			}

			chat, parser, _, err := loadChat(args[0], popts...)
			if err != nil {
				return err
			}
			diag := parser.Diagnostics()

			fmt.Println("=== File ===")
			if info, err := os.Stat(args[0]); err == nil {
				fmt.Printf("  Path: %s (%.1f KB)\n", args[0], float64(info.Size())/1024)
			}

			fmt.Println("\n=== Lines ===")
			fmt.Printf("  Total non-blank:  %d\n", diag.TotalLines)
			fmt.Printf("  Message lines:    %d\n", diag.MatchedMessages)
			fmt.Printf("  System lines:     %d\n", diag.MatchedSystem)
			fmt.Printf("  Continuations:    %d\n", diag.ContinuationLines)
			fmt.Printf("  Unmatched:        %d\n", diag.UnmatchedLines)

			fmt.Println("\n=== Messages ===")
			fmt.Printf("  Total:        %d\n", chat.TotalMessages)
			fmt.Printf("  Participants: %d\n", len(chat.Participants))
			for _, p := range chat.Participants {
				fmt.Printf("    - %s\n", p)
			}
			if chat.TotalMessages > 0 {
				fmt.Printf("  First: %s\n", chat.DateRange.Start.Format("2006-01-02 15:04"))
				fmt.Printf("  Last:  %s\n", chat.DateRange.End.Format("2006-01-02 15:04"))
			}

			fmt.Println("\n=== Timestamps ===")
			if diag.FallbackTimestamps == 0 {
				fmt.Println("  Status: OK (all parsed)")
			} else {
				fmt.Printf("  Status: %d fell back to current time - chronological order is distorted for those records\n",
					diag.FallbackTimestamps)
			}

			if chat.TotalMessages == 0 {
				fmt.Println("\nNo messages recognized. Is this a WhatsApp export?")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log every unmatched line and unparsable timestamp")

	return cmd
}
