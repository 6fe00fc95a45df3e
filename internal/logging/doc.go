// Package logging turns the logging flags of logargs into an active *slog.Logger.
//
// Resolve validates the flat Options and derives two sinks, console and file,
// each with its own severity threshold. Setup opens them: the console sink writes
// "LEVEL:name:message" to stdout or stderr, the file sink appends to a log file
// using the same basic format, or "timestamp - name - LEVEL - message" when the
// console sink is also active. The log file is never truncated or rotated.
package logging
