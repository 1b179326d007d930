package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func debugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug <sessionId>",
		Short: "Print the debug log recorded for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reader, err := openReader()
			if err != nil {
				return err
			}
			logs, ok := reader.ResolveDebugLog(args[0])
			if !ok {
				return fmt.Errorf("no debug log for session %s", args[0])
			}
			fmt.Print(logs)
			return nil
		},
	}
}
