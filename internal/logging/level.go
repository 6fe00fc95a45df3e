package logging

import (
	"fmt"
	"log/slog"

	apperrors "github.com/Aman-CERP/logargs/internal/errors"
)

// Severity is the ordered set of log levels a sink can be configured with.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityCritical
)

// LevelCritical sits one slog step above slog.LevelError.
const LevelCritical = slog.LevelError + 4

// validSeverityNames lists the accepted names in rank order, for error messages.
var validSeverityNames = []string{"debug", "info", "warning", "error", "critical"}

// ParseSeverity maps a case-sensitive severity name to its Severity.
// flag names the argument in the returned InvalidArgument error.
func ParseSeverity(name, flag string) (Severity, error) {
	switch name {
	case "debug":
		return SeverityDebug, nil
	case "info":
		return SeverityInfo, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	case "critical":
		return SeverityCritical, nil
	}

	return 0, apperrors.InvalidArgument(
		fmt.Sprintf("invalid value %q for %s, valid values: %v", name, flag, validSeverityNames)).
		WithDetail("flag", flag).
		WithDetail("value", name)
}

// String returns the upper-case name printed in log lines.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityCritical:
		return "CRITICAL"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Level returns the slog.Level records of this severity are logged at.
func (s Severity) Level() slog.Level {
	switch s {
	case SeverityDebug:
		return slog.LevelDebug
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityError:
		return slog.LevelError
	default:
		return LevelCritical
	}
}

// severityOf buckets an arbitrary slog.Level down to the nearest Severity.
// Anything below slog.LevelInfo is DEBUG.
func severityOf(l slog.Level) Severity {
	switch {
	case l >= LevelCritical:
		return SeverityCritical
	case l >= slog.LevelError:
		return SeverityError
	case l >= slog.LevelWarn:
		return SeverityWarning
	case l >= slog.LevelInfo:
		return SeverityInfo
	default:
		return SeverityDebug
	}
}
