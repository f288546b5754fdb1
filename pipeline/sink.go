// Package pipeline provides the I/O surface between this action and the CI
// platform running it: environment exports, step outputs, secret masking and
// user-visible log messages.
package pipeline

// Sink publishes values and messages into the invoking pipeline.
type Sink interface {
	// ExportVariable makes name=value available to subsequent steps of the
	// pipeline, and to the rest of the current run.
	ExportVariable(name, value string)

	// SetOutput assigns a step output under name.
	SetOutput(name, value string)

	// AddMask registers value as sensitive so the platform redacts it from
	// log output.
	AddMask(value string)

	Info(format string, v ...any)
	Warning(format string, v ...any)
}
