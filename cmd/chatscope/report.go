package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tomerva/chatscope/internal/analyze"
	"github.com/tomerva/chatscope/internal/parse"
	"github.com/tomerva/chatscope/internal/render"
)

func reportCmd() *cobra.Command {
	var rangeLabel, from, to string
	var width, topN int
	var noColor bool

	cmd := &cobra.Command{
		Use:   "report <transcript.txt>",
		Short: "Print a full analytics report for a transcript",
		Long: `Parses an exported chat transcript and prints every chart section plus
derived insights. The analysis window defaults to the whole chat; narrow it
with --range (preset label, e.g. "Last Month") or --from/--to dates.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chat, _, analyzer, err := loadChat(args[0])
			if err != nil {
				return err
			}
			if len(chat.Messages) == 0 {
				return fmt.Errorf("no messages recognized in %s", args[0])
			}

			window, err := resolveWindow(chat, rangeLabel, from, to)
			if err != nil {
				return err
			}

			data := analyzer.Analyze(chat, &window)

			opts := render.Options{Width: width, TopN: topN}
			if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
				opts.NoColor = true
			}

			fmt.Print(render.Report(data, chat, window, opts))
			return nil
		},
	}

	cmd.Flags().StringVar(&rangeLabel, "range", "", `Preset window label (e.g. "Last Month", "All Time")`)
	cmd.Flags().StringVar(&from, "from", "", "Window start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Window end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&width, "width", 80, "Report width in columns")
	cmd.Flags().IntVar(&topN, "top", 10, "Rows per chart")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors")

	return cmd
}

// resolveWindow picks the analysis window: explicit --from/--to beats a
// --range preset beats the whole chat.
func resolveWindow(chat parse.ChatData, rangeLabel, from, to string) (parse.DateRange, error) {
	if from != "" || to != "" {
		window := parse.DateRange{
			Start: chat.DateRange.Start,
			End:   chat.DateRange.End,
			Label: "Custom",
		}
		if from != "" {
			t, err := time.ParseInLocation("2006-01-02", from, time.Local)
			if err != nil {
				return parse.DateRange{}, fmt.Errorf("parse --from: %w", err)
			}
			window.Start = t
		}
		if to != "" {
			t, err := time.ParseInLocation("2006-01-02", to, time.Local)
			if err != nil {
				return parse.DateRange{}, fmt.Errorf("parse --to: %w", err)
			}
			// inclusive end of day
			window.End = t.AddDate(0, 0, 1).Add(-time.Second)
		}
		if window.End.Before(window.Start) {
			return parse.DateRange{}, fmt.Errorf("window end %s before start %s", to, from)
		}
		return window, nil
	}

	if rangeLabel != "" {
		window, ok := analyze.PresetByLabel(chat, rangeLabel)
		if !ok {
			return parse.DateRange{}, fmt.Errorf("unknown range %q (try \"All Time\")", rangeLabel)
		}
		return window, nil
	}

	return parse.DateRange{
		Start: chat.DateRange.Start,
		End:   chat.DateRange.End,
		Label: "All Time",
	}, nil
}
