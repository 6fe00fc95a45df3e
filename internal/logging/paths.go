package logging

import (
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/Aman-CERP/logargs/internal/errors"
)

// DefaultLogFile is the log file name used when --logfile is not given.
const DefaultLogFile = "out.log"

// ProgramDir returns the directory containing the running executable.
// Relative log file paths are resolved against it rather than the working directory.
func ProgramDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", apperrors.New(apperrors.ErrCodeProgramDir, "cannot locate program executable", err)
	}

	// Follow symlinks so an installed link still logs next to the real binary
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(exe), nil
}

// ResolvePath turns a user-supplied log path into an absolute, cleaned path.
// Both '/' and '\' are accepted as separators. Relative paths are joined onto dir.
func ResolvePath(dir, path string) string {
	path = normalizeSeparators(path)

	if !filepath.IsAbs(path) {
		path = filepath.Join(normalizeSeparators(dir), path)
	}

	return filepath.Clean(path)
}

func normalizeSeparators(path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	return filepath.FromSlash(path)
}
