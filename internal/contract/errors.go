package contract

import (
	"fmt"

	"github.com/flashcode/gitchart/schema"
)

// CollectorError signals that an external git invocation could not run or
// exited non-zero. It is terminal for the current request.
type CollectorError struct {
	Args []string
	Err  error
}

func (e *CollectorError) Error() string {
	return fmt.Sprintf("git %v failed: %v", e.Args, e.Err)
}

func (e *CollectorError) Unwrap() error {
	return e.Err
}

// ParseError signals a raw record line whose shape does not match what the
// chart kind expects. It is terminal for the current request.
type ParseError struct {
	Kind schema.ChartKind
	Line string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected %s record: %q", e.Kind, e.Line)
}

// ConfigError signals an invalid chart request: unknown kind, missing
// required input, or a bad option value.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

// NewConfigError builds a ConfigError from a format string.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}
