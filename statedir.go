package queuectl

import (
	"os"
	"path/filepath"
)

// StateDirs names the on-disk state layout: a root directory holding
// pids/ (worker pid files) and logs/ (per-job log files).
type StateDirs struct {
	Root string
	Pids string
	Logs string
}

// NewStateDirs lays out the state directories under root.
func NewStateDirs(root string) StateDirs {
	return StateDirs{
		Root: root,
		Pids: filepath.Join(root, "pids"),
		Logs: filepath.Join(root, "logs"),
	}
}

// Ensure creates the state directories if they do not exist.
func (d StateDirs) Ensure() error {
	for _, dir := range []string{d.Root, d.Pids, d.Logs} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// PIDFile returns the pid file path for a worker identity.
func (d StateDirs) PIDFile(id string) string {
	return filepath.Join(d.Pids, "worker."+id+".pid")
}
