package scan

import (
	"os"
	"path/filepath"
	"strings"
)

const transcriptExt = ".jsonl"

type FileInfo struct {
	Path      string
	Project   string // directory label under the projects root
	SessionID string
	Mtime     int64
	Size      int64
}

// ScanTranscripts lists every top-level transcript under projectsRoot.
// Subagent directories are not descended into. A missing root yields no
// files and no error.
func ScanTranscripts(projectsRoot string) ([]FileInfo, error) {
	dirs, err := os.ReadDir(projectsRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []FileInfo
	for _, d := range dirs {
		if !isDir(projectsRoot, d) {
			continue
		}
		projPath := filepath.Join(projectsRoot, d.Name())
		entries, err := os.ReadDir(projPath)
		if err != nil {
			continue // skip unreadable dirs
		}
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || filepath.Ext(name) != transcriptExt {
				continue
			}
			info, err := e.Info()
			if err != nil {
				continue
			}
			files = append(files, FileInfo{
				Path:      filepath.Join(projPath, name),
				Project:   d.Name(),
				SessionID: strings.TrimSuffix(name, transcriptExt),
				Mtime:     info.ModTime().Unix(),
				Size:      info.Size(),
			})
		}
	}
	return files, nil
}
