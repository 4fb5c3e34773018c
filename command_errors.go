package main

import (
	"fmt"
	"time"
)

// ErrorKind tags a failed invocation with one case per reply the dispatcher
// knows how to render.
type ErrorKind int

const (
	// KindMissingArgument means a required argument was absent.
	KindMissingArgument ErrorKind = iota
	// KindBadArgument means an argument failed type coercion.
	KindBadArgument
	// KindCooldown means the invocation was throttled.
	KindCooldown
	// KindPermissionDenied means an authorization check blocked the call.
	KindPermissionDenied
	// KindUnexpected is everything else; detail is logged, not shown.
	KindUnexpected
)

// CommandError is the tagged invocation error the dispatcher matches on.
type CommandError struct {
	Kind       ErrorKind
	Argument   string        // offending argument, for the arg kinds
	RetryAfter time.Duration // remaining wait, for cooldowns
	Err        error         // wrapped cause, for the unexpected kind
}

func (e *CommandError) Error() string {
	switch e.Kind {
	case KindMissingArgument:
		return fmt.Sprintf("missing required argument %q", e.Argument)
	case KindBadArgument:
		return fmt.Sprintf("bad argument %q", e.Argument)
	case KindCooldown:
		return fmt.Sprintf("on cooldown for %.1fs", e.RetryAfter.Seconds())
	case KindPermissionDenied:
		return "permission denied"
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "unexpected command error"
	}
}

func (e *CommandError) Unwrap() error { return e.Err }

func missingArgument(name string) *CommandError {
	return &CommandError{Kind: KindMissingArgument, Argument: name}
}

func badArgument(name string) *CommandError {
	return &CommandError{Kind: KindBadArgument, Argument: name}
}

func cooldownError(retryAfter time.Duration) *CommandError {
	return &CommandError{Kind: KindCooldown, RetryAfter: retryAfter}
}

func permissionDenied() *CommandError {
	return &CommandError{Kind: KindPermissionDenied}
}

func unexpectedError(err error) *CommandError {
	return &CommandError{Kind: KindUnexpected, Err: err}
}
