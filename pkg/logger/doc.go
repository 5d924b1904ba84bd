// Package logger is a thin factory around log/slog: a single New function
// configured by functional options for format, level, output and static
// attributes. It standardizes structured logging across the CLI and any
// service embedding the registry client.
package logger
