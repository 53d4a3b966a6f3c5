package queuectl

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// JobLogger appends execution records to per-job log files.
//
// Each job id owns one UTF-8 file <dir>/<id>.log, appended across
// attempts. The claim protocol places at most one active worker on a
// given job id at a time, so appends never interleave and no file
// locking is needed.
type JobLogger struct {
	dir string
}

// NewJobLogger creates a logger writing into dir. The directory must
// exist; see StateDirs.Ensure.
func NewJobLogger(dir string) *JobLogger {
	return &JobLogger{dir: dir}
}

// Path returns the log file path for a job id.
func (l *JobLogger) Path(id string) string {
	return filepath.Join(l.dir, id+".log")
}

// Append records one execution attempt: a timestamped EXIT line with
// captured stdout and stderr, or a TIMEOUT marker.
func (l *JobLogger) Append(id, command string, timeout time.Duration, now time.Time, res *ExecResult) error {
	f, err := os.OpenFile(l.Path(id), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	stamp := now.UTC().Format(time.RFC3339)
	if res.TimedOut {
		_, err = fmt.Fprintf(f, "[%s] TIMEOUT after %ds for command: %s\n", stamp, int(timeout/time.Second), command)
		return err
	}
	_, err = fmt.Fprintf(f, "[%s] EXIT=%d\nSTDOUT\n%s\nSTDERR\n%s\n\n", stamp, res.ExitCode, res.Stdout, res.Stderr)
	return err
}
