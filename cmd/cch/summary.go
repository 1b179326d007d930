package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show conversation, project and session counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reader, err := openReader()
			if err != nil {
				return err
			}

			s := reader.Summarize()
			if asJSON {
				return writeJSON(s)
			}

			fmt.Printf("Conversations: %d\n", s.Total)
			fmt.Printf("Projects:      %d\n", len(s.Projects))
			fmt.Printf("Sessions:      %d\n", s.Sessions)
			if s.DateRange != nil {
				fmt.Printf("Date range:    %s to %s\n", s.DateRange.Earliest, s.DateRange.Latest)
			}
			for _, p := range s.Projects {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
