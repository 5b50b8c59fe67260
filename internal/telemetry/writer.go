package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gocarina/gocsv"
)

// Writer appends TickRecords as CSV rows, writing the header once.
type Writer struct {
	mu            sync.Mutex
	out           io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewWriter wraps out. The caller owns out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Create opens path for writing, creating parent directories.
func Create(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &Writer{out: f, closer: f}, nil
}

// Write appends records. It is safe for concurrent use.
func (w *Writer) Write(records ...TickRecord) error {
	if w == nil || len(records) == 0 {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.out); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.out); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// Close closes the underlying file when the writer owns one.
func (w *Writer) Close() error {
	if w == nil || w.closer == nil {
		return nil
	}
	return w.closer.Close()
}

// Read parses records previously produced by a Writer.
func Read(in io.Reader) ([]TickRecord, error) {
	var records []TickRecord
	if err := gocsv.Unmarshal(in, &records); err != nil {
		return nil, fmt.Errorf("reading telemetry: %w", err)
	}
	return records, nil
}
