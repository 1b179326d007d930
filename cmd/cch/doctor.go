package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/claude-history/internal/scan"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify paths and how many index entries resolve",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, reader, err := openReader()
			if err != nil {
				return err
			}

			fmt.Println("=== Paths ===")
			checkPath("Claude dir", cfg.ClaudeDir, true)
			checkPath("History", cfg.HistoryFile(), false)
			checkPath("Projects", cfg.ProjectsDir(), true)
			checkPath("Debug", cfg.DebugDir(), true)

			fmt.Println("\n=== Transcripts ===")
			files, err := scan.ScanTranscripts(cfg.ProjectsDir())
			if err != nil {
				fmt.Printf("  scan error: %v\n", err)
			} else {
				dirs := make(map[string]struct{})
				for _, f := range files {
					dirs[f.Project] = struct{}{}
				}
				fmt.Printf("  Transcript files:     %d\n", len(files))
				fmt.Printf("  Project directories:  %d\n", len(dirs))
			}

			fmt.Println("\n=== Index ===")
			recs := reader.AssembleAll()
			full, noSession := 0, 0
			for _, r := range recs {
				switch {
				case r.HasFullContent:
					full++
				case r.SessionID == "":
					noSession++
				}
			}
			fmt.Printf("  Entries:              %d\n", len(recs))
			fmt.Printf("  With transcript:      %d\n", full)
			fmt.Printf("  Without session id:   %d\n", noSession)
			fmt.Printf("  Unresolved:           %d\n", len(recs)-full-noSession)
			return nil
		},
	}
}

func checkPath(name, path string, wantDir bool) {
	info, err := os.Stat(path)
	switch {
	case err != nil:
		fmt.Printf("  %s: %s (NOT FOUND)\n", name, path)
	case wantDir && !info.IsDir():
		fmt.Printf("  %s: %s (NOT A DIRECTORY)\n", name, path)
	default:
		fmt.Printf("  %s: %s (OK)\n", name, path)
	}
}
