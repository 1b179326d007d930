package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/claude-history/internal/search"
	"github.com/Zuo-Peng/claude-history/internal/tui"
)

const (
	sColorReset   = "\033[0m"
	sColorBoldRed = "\033[1;31m"
	sColorDim     = "\033[2m"
)

func colorizeSnippet(snippet string) string {
	snippet = strings.ReplaceAll(snippet, ">>>", sColorBoldRed)
	snippet = strings.ReplaceAll(snippet, "<<<", sColorReset)
	return snippet
}

func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func searchCmd() *cobra.Command {
	var project string
	var meta, asJSON bool
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Substring search across prompts and conversation content",
		Long: `Case-insensitive substring search. By default both the prompt shown in
history.jsonl and every user/assistant message are searched; --meta limits the
search to the prompt. Output is TSV when stdout is not a terminal:
  sessionId, messageIndex, time, project, display, snippet

Example fzf binding:
  cch search "$*" | fzf --ansi --delimiter='\t' --with-nth=3.. \
    --preview 'cch show {1} --hit {2} --context 5 --query {q}' \
    --bind 'enter:execute(cch open {1} --hit {2})'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reader, err := openReader()
			if err != nil {
				return err
			}

			opts := search.Options{
				Query:   args[0],
				Project: project,
				Limit:   limit,
			}
			if meta {
				opts.Scope = search.ScopeMetadata
			}

			// Interactive TUI when stdout is a terminal; TSV output for pipes
			if isTerminal() && !asJSON {
				return tui.Run(reader, opts)
			}

			results := reader.Find(opts)
			if asJSON {
				return writeJSON(results)
			}
			if len(results) == 0 {
				fmt.Fprintln(os.Stderr, "No results found.")
				return nil
			}

			for _, r := range results {
				rec := r.Record
				fmt.Printf("%s\t%d\t%s%s%s\t%s\t%s\t%s\n",
					rec.SessionID,
					r.MessageIndex,
					sColorDim, rec.FormattedTime, sColorReset,
					rec.Project,
					oneLine(rec.Display),
					colorizeSnippet(oneLine(r.Snippet)),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Only conversations whose project equals this path")
	cmd.Flags().BoolVar(&meta, "meta", false, "Search prompts only, not conversation content")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	cmd.Flags().IntVar(&limit, "limit", 100, "Max results (0 = no limit)")

	return cmd
}
