package cmd

import (
	"github.com/spf13/pflag"

	"github.com/Aman-CERP/logargs/internal/config"
)

// optionalValue is a string flag that accepts "None" to switch its sink off.
type optionalValue struct {
	setting *config.Setting
}

var _ pflag.Value = (*optionalValue)(nil)

func newOptionalValue(def string, p *config.Setting) *optionalValue {
	*p = config.ParseSetting(def)
	return &optionalValue{setting: p}
}

func (v *optionalValue) Set(s string) error {
	*v.setting = config.ParseSetting(s)
	return nil
}

func (v *optionalValue) String() string {
	if v.setting == nil {
		return ""
	}
	return v.setting.String()
}

func (v *optionalValue) Type() string {
	return "string"
}

// rootFlags holds the raw command-line values before they are layered over
// the loaded configuration.
type rootFlags struct {
	configPath   string
	logFile      config.Setting
	logLevel     config.Setting
	logLevelFile string
	stderr       bool
	noConsole    bool
	noLogFile    bool
	noColor      bool
}

func (f *rootFlags) register(fs *pflag.FlagSet) {
	fs.Var(newOptionalValue("out.log", &f.logFile), "logfile",
		"Log file `path`, relative to the program directory unless absolute (None for no log file)")
	fs.BoolVar(&f.stderr, "stderr", false, "Print console logs to stderr instead of stdout")
	fs.BoolVar(&f.noConsole, "noconsole", false, "Suppress console logs")
	fs.BoolVar(&f.noLogFile, "nologfile", false, "Do not write a log file")
	fs.Var(newOptionalValue("info", &f.logLevel), "loglevel",
		"Console `level`: debug, info, warning, error, critical (None for no console)")
	fs.StringVar(&f.logLevelFile, "loglevelfile", "debug",
		"Log file `level`: debug, info, warning, error, critical")
	fs.StringVar(&f.configPath, "config", "", "YAML `file` with default values")
	fs.BoolVar(&f.noColor, "no-color", false, "Never colorize console level names")
}

// applyTo overrides cfg with every flag the user set explicitly.
func (f *rootFlags) applyTo(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("logfile") {
		cfg.LogFile = f.logFile
	}
	if fs.Changed("loglevel") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("loglevelfile") {
		cfg.LogLevelFile = f.logLevelFile
	}
	if fs.Changed("stderr") {
		cfg.Stderr = f.stderr
	}
	if fs.Changed("noconsole") {
		cfg.NoConsole = f.noConsole
	}
	if fs.Changed("nologfile") {
		cfg.NoLogFile = f.noLogFile
	}
	if fs.Changed("no-color") {
		cfg.NoColor = f.noColor
	}
}
