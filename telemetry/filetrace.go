package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/draftpipe/draftpipe/core"
)

// FileTracer appends run records to a trace file. One file is created per
// tracer; concurrent writers are serialized by a mutex so interleaved stage
// records cannot corrupt each other.
type FileTracer struct {
	mu       sync.Mutex
	filepath string
}

// NewFileTracer creates the trace directory if needed and opens a fresh,
// timestamped trace file in it.
func NewFileTracer(dir string) (*FileTracer, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "draftpipe-traces")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create trace directory: %w", err)
	}

	name := fmt.Sprintf("trace-%s.txt", time.Now().Format("20060102150405"))
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("create trace file: %w", err)
	}
	f.Close()

	return &FileTracer{filepath: path}, nil
}

// Filepath returns the path of the trace file.
func (t *FileTracer) Filepath() string { return t.filepath }

func (t *FileTracer) writeToFile(fn func(io.Writer)) error {
	file, err := os.OpenFile(t.filepath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open trace file: %w", err)
	}
	defer file.Close()

	fn(file)
	return file.Sync()
}

// StartRun implements core.Telemetry.
func (t *FileTracer) StartRun(_ context.Context, run core.RunStart) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.writeToFile(func(w io.Writer) {
		fmt.Fprintf(w, "\n====> [%s] Start %s (%s) runID: %s", run.StartedAt.Format("15:04:05"),
			run.Name, run.ModelID, run.ID)
		if run.ParentID != "" {
			fmt.Fprintf(w, " parent: %s", run.ParentID)
		}
		fmt.Fprintln(w)
		writeIndented(w, "inputs", run.Inputs)
	})
}

// EndRun implements core.Telemetry.
func (t *FileTracer) EndRun(_ context.Context, run core.RunEnd) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.writeToFile(func(w io.Writer) {
		if run.Error != "" {
			fmt.Fprintf(w, " error: %s\n", run.Error)
		} else {
			writeIndented(w, "outputs", run.Outputs)
		}
		fmt.Fprintf(w, "==== [%s] End runID: %s\n", run.EndedAt.Format("15:04:05"), run.ID)
	})
}

func writeIndented(w io.Writer, label, content string) {
	if content == "" {
		fmt.Fprintf(w, " %s: (empty)\n", label)
		return
	}
	fmt.Fprintf(w, " %s:\n", label)
	for _, line := range strings.Split(content, "\n") {
		if line != "" {
			fmt.Fprintf(w, "   %s\n", line)
		}
	}
}
