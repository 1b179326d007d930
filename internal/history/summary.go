package history

import (
	"sort"

	"github.com/Zuo-Peng/claude-history/internal/parse"
)

type DateRange struct {
	Earliest string `json:"earliest"`
	Latest   string `json:"latest"`
}

type Summary struct {
	Total     int        `json:"total"`
	Projects  []string   `json:"projects"`
	Sessions  int        `json:"sessions"`
	DateRange *DateRange `json:"dateRange"`
}

// Summarize aggregates counts over the index. Projects are sorted.
func Summarize(entries []parse.IndexEntry) Summary {
	s := Summary{Total: len(entries), Projects: []string{}}

	projects := make(map[string]struct{})
	sessions := make(map[string]struct{})
	var earliest, latest int64
	seen := false
	for _, e := range entries {
		projects[e.Project] = struct{}{}
		if e.SessionID != "" {
			sessions[e.SessionID] = struct{}{}
		}
		if e.Timestamp == 0 {
			continue
		}
		if !seen || e.Timestamp < earliest {
			earliest = e.Timestamp
		}
		if !seen || e.Timestamp > latest {
			latest = e.Timestamp
		}
		seen = true
	}

	for p := range projects {
		s.Projects = append(s.Projects, p)
	}
	sort.Strings(s.Projects)
	s.Sessions = len(sessions)

	if seen {
		s.DateRange = &DateRange{
			Earliest: parse.FormatMillis(earliest),
			Latest:   parse.FormatMillis(latest),
		}
	}
	return s
}
