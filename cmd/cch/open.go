package main

import (
	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/claude-history/internal/open"
)

func openCmd() *cobra.Command {
	var hit int

	cmd := &cobra.Command{
		Use:   "open <sessionId>",
		Short: "Open the session transcript in $EDITOR at the hit message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reader, err := openReader()
			if err != nil {
				return err
			}
			return open.OpenSession(reader, args[0], hit)
		},
	}

	cmd.Flags().IntVar(&hit, "hit", -1, "Message index to jump to")

	return cmd
}
