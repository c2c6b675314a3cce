package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomerva/chatscope/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard <transcript.txt>",
		Short: "Interactive chart dashboard for a transcript",
		Long: `Opens a TUI with the chart list on the left and the rendered chart on
the right. Arrow keys switch charts, left/right cycles the date-range
preset, "c" copies the visible chart as plain text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chat, _, analyzer, err := loadChat(args[0])
			if err != nil {
				return err
			}
			if len(chat.Messages) == 0 {
				return fmt.Errorf("no messages recognized in %s", args[0])
			}
			return tui.Run(chat, analyzer)
		},
	}
}
