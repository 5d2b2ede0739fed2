package errcode

import "errors"

// Code is a stable, caller-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Configuration-time failures; fatal to device construction.
	InvalidConfig        Code = "invalid_config"
	DependencyUnresolved Code = "dependency_unresolved"

	// Operation-time failures; recovered locally and reported to the caller.
	InvalidArgument Code = "invalid_argument"
	HardwareComm    Code = "hardware_comm"
	UnknownCommand  Code = "unknown_command"
	Busy            Code = "busy"
	Timeout         Code = "timeout"

	Error Code = "error" // generic fallback
)

// E keeps context and a cause alongside a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	if e.Err != nil {
		return string(e.C) + ": " + e.Err.Error()
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap builds an *E carrying code, message and cause.
func Wrap(c Code, msg string, err error) *E {
	return &E{C: c, Msg: msg, Err: err}
}

// Of extracts a Code from an error, walking wrapped chains,
// defaulting to Error for foreign errors.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		if c, ok := e.(Code); ok {
			return c
		}
		type coder interface{ Code() Code }
		if x, ok := e.(coder); ok {
			return x.Code()
		}
	}
	return Error
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, c Code) bool {
	if err == nil {
		return c == OK
	}
	return Of(err) == c
}
