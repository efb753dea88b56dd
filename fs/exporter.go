// Package fs exports stored component snapshots as markdown files.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/uidoc"
)

// SnapshotFileName converts a component name to its markdown file name.
// Example: button → button.md
// Names carrying path separators or dot segments are rejected so an export
// can never write outside its directory.
func SnapshotFileName(name string) (string, error) {
	if name == "" {
		return "", uidoc.Errorf(uidoc.EINVALID, "snapshot component name required")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", uidoc.Errorf(uidoc.EINVALID, "invalid snapshot name %q: path traversal", name)
	}
	return name + ".md", nil
}

// FormatSnapshot formats a snapshot with YAML frontmatter.
func FormatSnapshot(snap *uidoc.ComponentSnapshot) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(snap.URL)
	b.WriteString("\ncomponent: ")
	b.WriteString(snap.Name)
	b.WriteString("\ndescription: ")
	b.WriteString(snap.Description)
	b.WriteString("\nfetched: ")
	b.WriteString(snap.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(snap.Markdown)
	return b.String()
}

// Exporter writes snapshots to a directory with atomic update semantics.
// Files are staged in a temporary directory, then moved into place on
// Commit, so a failed export never clobbers a previous one.
type Exporter struct {
	dir string
}

// NewExporter creates an Exporter targeting dir.
// Files are staged in dir.tmp and moved to dir on Commit.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: filepath.Clean(dir)}
}

func (e *Exporter) tempDir() string {
	return e.dir + ".tmp"
}

// Save stages one snapshot in the temporary directory.
func (e *Exporter) Save(snap *uidoc.ComponentSnapshot) error {
	fileName, err := SnapshotFileName(snap.Name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(e.tempDir(), 0755); err != nil {
		return err
	}

	content := FormatSnapshot(snap)
	return os.WriteFile(filepath.Join(e.tempDir(), fileName), []byte(content), 0644)
}

// Commit moves the staged export into place, replacing any previous export.
func (e *Exporter) Commit() error {
	if err := os.RemoveAll(e.dir); err != nil {
		return err
	}
	return os.Rename(e.tempDir(), e.dir)
}

// Abort removes the staging directory, leaving any previous export intact.
func (e *Exporter) Abort() error {
	return os.RemoveAll(e.tempDir())
}

// Export stages every snapshot and commits in one step. On any failure the
// staging directory is removed and the previous export, if any, stays as it
// was.
func (e *Exporter) Export(snaps []*uidoc.ComponentSnapshot) error {
	for _, snap := range snaps {
		if err := e.Save(snap); err != nil {
			_ = e.Abort()
			return err
		}
	}

	if err := e.Commit(); err != nil {
		_ = e.Abort()
		return err
	}

	return nil
}
