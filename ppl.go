// Package ppl provides an interpreter for PPL, a line-oriented instruction
// language over integers and nested lists, that can be embedded in Go applications.
//
// This package re-exports the public API from the implementation in src/.
// For full documentation, see the implementation package.
//
// Basic usage:
//
//	ip := ppl.New(nil)
//	outcome := ip.Execute("INTEGER x\nASSIGN x 5\nCHS x\nPRINT x\nHLT\n")
//	if outcome.Status == ppl.StatusFaulted {
//		// the fault report was already written to Config.Stdout
//	}
package ppl

import (
	"io"

	impl "github.com/phroun/ppl/src"
)

// =============================================================================
// CORE TYPES
// =============================================================================

// Interpreter is the main interpreter instance.
type Interpreter = impl.Interpreter

// Config holds configuration options for the interpreter.
type Config = impl.Config

// Context is passed to instruction handlers.
type Context = impl.Context

// Handler is the function signature for instruction handlers.
type Handler = impl.Handler

// Instruction is a registered instruction definition.
type Instruction = impl.Instruction

// SourcePosition identifies a program line.
type SourcePosition = impl.SourcePosition

// ParsedCommand is a tokenized program line.
type ParsedCommand = impl.ParsedCommand

// =============================================================================
// RESULT TYPES
// =============================================================================

// Result is the interface returned by instruction handlers.
type Result = impl.Result

// Advance moves on to the next line.
type Advance = impl.Advance

// Jump transfers control to a 0-based line index.
type Jump = impl.Jump

// Halt stops the program.
type Halt = impl.Halt

// =============================================================================
// EXECUTION
// =============================================================================

// Engine runs one program against one symbol table.
type Engine = impl.Engine

// Status is the state of an engine's run loop.
type Status = impl.Status

// Run loop states.
const (
	StatusRunning   = impl.StatusRunning
	StatusHalted    = impl.StatusHalted
	StatusFaulted   = impl.StatusFaulted
	StatusCompleted = impl.StatusCompleted
)

// Outcome summarizes how a run ended.
type Outcome = impl.Outcome

// Session runs a program that grows one line at a time.
type Session = impl.Session

// REPL is the interactive line editor.
type REPL = impl.REPL

// REPLConfig configures the REPL.
type REPLConfig = impl.REPLConfig

// =============================================================================
// VALUES
// =============================================================================

// Element is an Integer or a *ListValue.
type Element = impl.Element

// Integer is a machine integer element.
type Integer = impl.Integer

// ListValue is a singly-linked list of elements.
type ListValue = impl.ListValue

// Kind is the declared type of a symbol.
type Kind = impl.Kind

// Symbol kinds.
const (
	KindInteger = impl.KindInteger
	KindList    = impl.KindList
)

// Symbol is a declared identifier.
type Symbol = impl.Symbol

// SymbolTable holds the declared identifiers of a run.
type SymbolTable = impl.SymbolTable

// =============================================================================
// ERROR TYPES
// =============================================================================

// RuntimeError is a fault with position information.
type RuntimeError = impl.RuntimeError

// Runtime error kinds.
var (
	ErrDuplicateDeclaration = impl.ErrDuplicateDeclaration
	ErrUndeclaredIdentifier = impl.ErrUndeclaredIdentifier
	ErrTypeMismatch         = impl.ErrTypeMismatch
	ErrArity                = impl.ErrArity
	ErrUnknownInstruction   = impl.ErrUnknownInstruction
	ErrEmptyListAccess      = impl.ErrEmptyListAccess
	ErrInvalidLiteral       = impl.ErrInvalidLiteral
	ErrJumpOutOfRange       = impl.ErrJumpOutOfRange
)

// =============================================================================
// LOGGING
// =============================================================================

// Logger is the levelled, categorized logger.
type Logger = impl.Logger

// LogLevel represents log severity.
type LogLevel = impl.LogLevel

// Log level constants.
const (
	LevelTrace  = impl.LevelTrace
	LevelInfo   = impl.LevelInfo
	LevelDebug  = impl.LevelDebug
	LevelNotice = impl.LevelNotice
	LevelWarn   = impl.LevelWarn
	LevelError  = impl.LevelError
	LevelFatal  = impl.LevelFatal
)

// LogCategory identifies the logging subsystem.
type LogCategory = impl.LogCategory

// Log category constants.
const (
	CatNone     = impl.CatNone
	CatParse    = impl.CatParse
	CatCommand  = impl.CatCommand
	CatVariable = impl.CatVariable
	CatArgument = impl.CatArgument
	CatIO       = impl.CatIO
	CatMath     = impl.CatMath
	CatList     = impl.CatList
	CatType     = impl.CatType
	CatFlow     = impl.CatFlow
	CatSystem   = impl.CatSystem
)

// =============================================================================
// CONSTRUCTOR FUNCTIONS
// =============================================================================

// New creates a new interpreter with the standard instruction set.
func New(config *Config) *Interpreter {
	return impl.New(config)
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return impl.DefaultConfig()
}

// NewList creates a list holding elems in order.
func NewList(elems ...Element) *ListValue {
	return impl.NewList(elems...)
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return impl.NewSymbolTable()
}

// NewREPL creates an interactive line editor on ip.
func NewREPL(ip *Interpreter, config REPLConfig) (*REPL, error) {
	return impl.NewREPL(ip, config)
}

// MatchElement dispatches on the two element variants.
func MatchElement[T any](e Element, onInteger func(Integer) T, onList func(*ListValue) T) T {
	return impl.MatchElement(e, onInteger, onList)
}

// SplitProgram splits program source into lines.
func SplitProgram(source string) []string {
	return impl.SplitProgram(source)
}

// AllLogCategories returns all available log categories.
func AllLogCategories() []LogCategory {
	return impl.AllLogCategories()
}

// =============================================================================
// TERMINAL
// =============================================================================

// IsTerminal reports whether stdin is an interactive terminal.
func IsTerminal() bool {
	return impl.IsTerminal()
}

// WriterSupportsColor reports whether w is a color-capable terminal.
func WriterSupportsColor(w io.Writer) bool {
	return impl.WriterSupportsColor(w)
}
