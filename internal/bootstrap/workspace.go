package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/containers/ramalama-install/internal/messages"
)

var (
	mkdirTemp = os.MkdirTemp
	removeAll = os.RemoveAll
)

// Workspace is the per-run staging directory artifacts are fetched into
// before placement.
type Workspace struct {
	root string
	once sync.Once
}

// NewWorkspace creates a unique staging directory.
func NewWorkspace() (*Workspace, error) {
	root, err := mkdirTemp("", "ramalama-install-*")
	if err != nil {
		return nil, fmt.Errorf(messages.WorkspaceCreateFailedFmt, err)
	}
	return &Workspace{root: root}, nil
}

// Root returns the staging directory path.
func (w *Workspace) Root() string {
	return w.root
}

// Path returns the staging location for a named artifact.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.root, name)
}

// Cleanup removes the workspace. Removal is best-effort and runs in the
// background so it never delays exit; repeated calls schedule it once.
func (w *Workspace) Cleanup() {
	w.once.Do(func() {
		root := w.root
		go func() {
			_ = removeAll(root)
		}()
	})
}
