package valves

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("valves: malformed input")

	// ErrUnreachable is matched by every *UnreachableError.
	ErrUnreachable = errors.New("valves: valve unreachable")

	// ErrUnknownValve is returned when a label does not name a valve.
	ErrUnknownValve = errors.New("valves: unknown valve")

	// ErrTooManyTargets is returned when more valves have a positive flow
	// rate than a TargetSet can hold.
	ErrTooManyTargets = errors.New("valves: too many valves with positive flow rate")

	// ErrInvalidConfig is returned by LoadConfig and Config.Validate.
	ErrInvalidConfig = errors.New("valves: invalid config")
)

// ParseError describes a line of input that could not be parsed.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("valves: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// UnreachableError reports a valve worth opening that cannot be reached.
type UnreachableError struct {
	From, To string
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("valves: no path from %s to %s", e.From, e.To)
}

func (e *UnreachableError) Is(target error) bool { return target == ErrUnreachable }
