package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/claude-history/internal/history"
	"github.com/Zuo-Peng/claude-history/internal/parse"
	"github.com/Zuo-Peng/claude-history/internal/search"
	"github.com/Zuo-Peng/claude-history/internal/tui"
)

func listCmd() *cobra.Command {
	var project string
	var page, perPage int
	var plain, asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse conversations, newest first",
		Long:  `Opens a TUI panel listing every conversation in history.jsonl, newest first. Type to search. With --plain, --json or a piped stdout, prints one page instead.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reader, err := openReader()
			if err != nil {
				return err
			}

			if isTerminal() && !plain && !asJSON {
				return tui.Run(reader, search.Options{Project: project})
			}

			var recs []parse.ConversationRecord
			for _, rec := range reader.AssembleAll() {
				if project == "" || rec.Project == project {
					recs = append(recs, rec)
				}
			}
			items, p := history.Paginate(recs, page, perPage)

			if asJSON {
				return writeJSON(struct {
					Conversations []parse.ConversationRecord `json:"conversations"`
					Pagination    history.Pagination         `json:"pagination"`
				}{items, p})
			}

			for _, rec := range items {
				full := "-"
				if rec.HasFullContent {
					full = fmt.Sprintf("%d msgs", len(rec.Messages))
				}
				fmt.Printf("%s\t%s\t%s\t%s\t%s\n", rec.FormattedTime, rec.SessionID, rec.Project, full, oneLine(rec.Display))
			}
			fmt.Fprintf(os.Stderr, "page %d/%d (%d conversations)\n", p.Page, p.Pages, p.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Only conversations whose project equals this path")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&perPage, "per-page", history.DefaultPerPage, "Conversations per page")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print instead of opening the TUI")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the page as JSON")

	return cmd
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
