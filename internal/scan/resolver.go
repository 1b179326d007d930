package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Resolver locates session transcripts under a projects root.
type Resolver struct {
	ProjectsRoot string
}

func NewResolver(projectsRoot string) *Resolver {
	return &Resolver{ProjectsRoot: projectsRoot}
}

// ProjectLabel turns a project path into the directory name the assistant
// stores its transcripts under: separators become '-' and a single leading
// '-' is dropped.
func ProjectLabel(project string) string {
	label := strings.NewReplacer("/", "-", `\`, "-").Replace(project)
	return strings.TrimPrefix(label, "-")
}

// PrimaryPath is where the transcript for sessionID is expected to live.
func (r *Resolver) PrimaryPath(sessionID, project string) string {
	return filepath.Join(r.ProjectsRoot, ProjectLabel(project), sessionID+transcriptExt)
}

// Resolve returns the transcript path for sessionID. The project's own
// directory is tried first; otherwise every project directory is checked in
// name order and the first hit wins. ok is false when nothing matches.
func (r *Resolver) Resolve(sessionID, project string) (path string, ok bool) {
	if !ValidSessionID(sessionID) {
		return "", false
	}

	if p := r.PrimaryPath(sessionID, project); isFile(p) {
		return p, true
	}

	dirs, err := os.ReadDir(r.ProjectsRoot)
	if err != nil {
		return "", false
	}
	for _, d := range dirs {
		if !isDir(r.ProjectsRoot, d) {
			continue
		}
		p := filepath.Join(r.ProjectsRoot, d.Name(), sessionID+transcriptExt)
		if isFile(p) {
			return p, true
		}
	}
	return "", false
}

// ValidSessionID rejects ids that could escape the directory they are
// joined onto.
func ValidSessionID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}

// isDir reports whether d is a directory, following symlinks.
func isDir(parent string, d fs.DirEntry) bool {
	if d.IsDir() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(parent, d.Name()))
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
