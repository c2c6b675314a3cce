package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// exportPayload is the JSON document written by the export command.
type exportPayload struct {
	Chat      chatJSON    `json:"chat"`
	Analytics interface{} `json:"analytics"`
}

type chatJSON struct {
	Participants  []string      `json:"participants"`
	TotalMessages int           `json:"totalMessages"`
	DateRange     dateRangeJSON `json:"dateRange"`
	Messages      []messageJSON `json:"messages,omitempty"`
}

type dateRangeJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type messageJSON struct {
	Timestamp string `json:"timestamp"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	System    bool   `json:"system,omitempty"`
}

func exportCmd() *cobra.Command {
	var rangeLabel, from, to string
	var withMessages bool

	cmd := &cobra.Command{
		Use:   "export <transcript.txt>",
		Short: "Export parse and analytics results as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chat, _, analyzer, err := loadChat(args[0])
			if err != nil {
				return err
			}

			window, err := resolveWindow(chat, rangeLabel, from, to)
			if err != nil {
				return err
			}

			data := analyzer.Analyze(chat, &window)

			payload := exportPayload{
				Chat: chatJSON{
					Participants:  chat.Participants,
					TotalMessages: chat.TotalMessages,
					DateRange: dateRangeJSON{
						Start: chat.DateRange.Start.Format("2006-01-02T15:04:05"),
						End:   chat.DateRange.End.Format("2006-01-02T15:04:05"),
					},
				},
				Analytics: data,
			}
			if withMessages {
				for _, m := range chat.Messages {
					payload.Chat.Messages = append(payload.Chat.Messages, messageJSON{
						Timestamp: m.Timestamp.Format("2006-01-02T15:04:05"),
						Author:    m.Author,
						Content:   m.Content,
						System:    m.IsSystemMessage,
					})
				}
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(payload); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rangeLabel, "range", "", "Preset window label")
	cmd.Flags().StringVar(&from, "from", "", "Window start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Window end date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&withMessages, "messages", false, "Include the full message list")

	return cmd
}
