package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/claude-history/internal/render"
)

func showCmd() *cobra.Command {
	var hit, context, width int
	var query string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <sessionId>",
		Short: "Print a conversation, optionally around a hit message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reader, err := openReader()
			if err != nil {
				return err
			}

			d, ok := reader.Conversation(args[0])
			if !ok || d.Conversation == nil {
				return fmt.Errorf("session not found: %s", args[0])
			}
			if asJSON {
				return writeJSON(d)
			}

			out, _ := render.Conversation(*d.Conversation, render.Options{
				HitMessage: hit,
				Context:    context,
				Width:      width,
				Query:      query,
				NoColor:    !isTerminal() && query == "",
			})
			fmt.Print(out)
			return nil
		},
	}

	cmd.Flags().IntVar(&hit, "hit", -1, "Message index to highlight")
	cmd.Flags().IntVar(&context, "context", -1, "Messages before/after hit to show (-1 = all)")
	cmd.Flags().IntVar(&width, "width", 0, "Wrap width (0 = no wrap)")
	cmd.Flags().StringVar(&query, "query", "", "Keyword to highlight")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the conversation and debug log as JSON")

	return cmd
}
