package ppl

import (
	"errors"
	"fmt"
)

// Runtime error kinds. Every fault reported by the engine wraps exactly one of these.
var (
	ErrDuplicateDeclaration = errors.New("duplicate declaration")
	ErrUndeclaredIdentifier = errors.New("undeclared identifier")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrArity                = errors.New("wrong number of arguments")
	ErrUnknownInstruction   = errors.New("unknown instruction")
	ErrEmptyListAccess      = errors.New("empty list access")
	ErrInvalidLiteral       = errors.New("invalid integer literal")
	ErrJumpOutOfRange       = errors.New("jump target out of range")
)

// RuntimeError is an error with position information
type RuntimeError struct {
	Kind     error
	Message  string
	Position *SourcePosition
}

func (e *RuntimeError) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *RuntimeError) Unwrap() error {
	return e.Kind
}

// newError builds a RuntimeError of the given kind. The engine fills in the position.
func newError(kind error, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// withPosition attaches a position to err, wrapping foreign errors as needed
func withPosition(err error, pos *SourcePosition) *RuntimeError {
	var rerr *RuntimeError
	if errors.As(err, &rerr) {
		if rerr.Position == nil {
			rerr.Position = pos
		}
		return rerr
	}
	return &RuntimeError{Kind: err, Position: pos}
}
