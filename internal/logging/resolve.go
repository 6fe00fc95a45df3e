package logging

import (
	apperrors "github.com/Aman-CERP/logargs/internal/errors"
)

// DefaultName is the logger name printed in every log line.
const DefaultName = "logargs"

// Target identifies where a sink writes.
type Target int

const (
	// TargetNone is the target of a disabled sink.
	TargetNone Target = iota
	// TargetStdout writes console output to standard output.
	TargetStdout
	// TargetStderr writes console output to standard error.
	TargetStderr
	// TargetFile appends to SinkConfig.Path.
	TargetFile
)

func (t Target) String() string {
	switch t {
	case TargetStdout:
		return "stdout"
	case TargetStderr:
		return "stderr"
	case TargetFile:
		return "file"
	}
	return "none"
}

// Format selects the line layout of a sink.
type Format int

const (
	// FormatBasic renders "LEVEL:name:message".
	FormatBasic Format = iota
	// FormatDetailed renders "timestamp - name - LEVEL - message".
	FormatDetailed
)

// Options is the flat set of user choices the resolver works from.
// The literal "None" never reaches here: the flag layer turns it into
// ConsoleDisabled or FileDisabled.
type Options struct {
	// LogFile is the log file path. Empty is rejected while the file sink is on.
	LogFile string
	// FileDisabled is set when the log file was given as absent.
	FileDisabled bool
	// NoLogFile force-disables the file sink.
	NoLogFile bool

	// Stderr sends console output to stderr instead of stdout.
	Stderr bool
	// NoConsole force-disables the console sink.
	NoConsole bool
	// ConsoleDisabled is set when the console level was given as absent.
	ConsoleDisabled bool

	// ConsoleLevel is the console threshold name (debug, info, warning, error, critical).
	ConsoleLevel string
	// FileLevel is the file threshold name.
	FileLevel string

	// ProgramDir is the directory relative log paths resolve against.
	ProgramDir string
	// Name is the logger name. Empty means DefaultName.
	Name string
}

// DefaultOptions returns the options of an invocation without flags.
func DefaultOptions(programDir string) Options {
	return Options{
		LogFile:      DefaultLogFile,
		ConsoleLevel: "info",
		FileLevel:    "debug",
		ProgramDir:   programDir,
		Name:         DefaultName,
	}
}

// SinkConfig is the resolved state of one sink.
type SinkConfig struct {
	Enabled   bool
	Target    Target
	Path      string // Only set for TargetFile
	Threshold Severity
	Format    Format
}

// Resolved is the pair of sinks derived from Options. It is built once at
// startup and never changed.
type Resolved struct {
	Name    string
	Console SinkConfig
	File    SinkConfig
}

// Resolve validates opts and derives the sink configuration.
//
// Returns an IncompatibleArguments error when stderr output is requested with
// the console disabled, and an InvalidArgument error for an unknown severity
// name or an empty log file path. The stderr check comes first so it wins
// over a bad level name.
func Resolve(opts Options) (Resolved, error) {
	consoleEnabled := !opts.NoConsole && !opts.ConsoleDisabled
	fileEnabled := !opts.NoLogFile && !opts.FileDisabled

	if opts.Stderr && !consoleEnabled {
		return Resolved{}, apperrors.IncompatibleArguments(
			"incompatible arguments: --stderr with console output disabled (cannot suppress console logs and also print to stderr)").
			WithSuggestion("drop --stderr, or re-enable console output")
	}

	// A console level given as absent has nothing to parse. With --noconsole
	// alone the name is still validated.
	var consoleLevel Severity
	if !opts.ConsoleDisabled {
		lvl, err := ParseSeverity(opts.ConsoleLevel, "--loglevel")
		if err != nil {
			return Resolved{}, err
		}
		consoleLevel = lvl
	}

	fileLevel, err := ParseSeverity(opts.FileLevel, "--loglevelfile")
	if err != nil {
		return Resolved{}, err
	}

	r := Resolved{Name: opts.Name}
	if r.Name == "" {
		r.Name = DefaultName
	}

	if consoleEnabled {
		r.Console = SinkConfig{
			Enabled:   true,
			Target:    TargetStdout,
			Threshold: consoleLevel,
			Format:    FormatBasic,
		}
		if opts.Stderr {
			r.Console.Target = TargetStderr
		}
	}

	if fileEnabled {
		if opts.LogFile == "" {
			return Resolved{}, apperrors.InvalidArgument("invalid value \"\" for --logfile, expected a path or None").
				WithDetail("flag", "--logfile").
				WithSuggestion("use --nologfile or --logfile None to disable the log file")
		}
		r.File = SinkConfig{
			Enabled:   true,
			Target:    TargetFile,
			Path:      ResolvePath(opts.ProgramDir, opts.LogFile),
			Threshold: fileLevel,
			Format:    FormatBasic,
		}
		if consoleEnabled {
			r.File.Format = FormatDetailed
		}
	}

	return r, nil
}
