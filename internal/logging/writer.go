package logging

import (
	"fmt"
	"os"
	"sync"

	apperrors "github.com/Aman-CERP/logargs/internal/errors"
)

// AppendWriter is an io.Writer over a log file opened in append mode.
// Existing content is never truncated and the file is never rotated.
type AppendWriter struct {
	mu   sync.Mutex
	file *os.File
}

// OpenAppend opens path for appending, creating it if absent.
// Missing parent directories are not created; the open error is returned
// wrapped as an IO error.
func OpenAppend(path string) (*AppendWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, apperrors.IOError(fmt.Sprintf("failed to open log file %s", path), err).
			WithDetail("path", path)
	}

	return &AppendWriter{file: f}, nil
}

// Write implements io.Writer.
func (w *AppendWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return 0, os.ErrClosed
	}

	return w.file.Write(p)
}

// Sync flushes the file to disk.
func (w *AppendWriter) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file != nil {
		return w.file.Sync()
	}
	return nil
}

// Close closes the underlying file. Closing twice is a no-op.
func (w *AppendWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}
