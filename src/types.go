package ppl

import (
	"fmt"
	"io"
	"os"
)

// SourcePosition tracks the position of an instruction in the program
type SourcePosition struct {
	Line         int // 1-based
	OriginalText string
	Filename     string
}

// String renders the position as file:line
func (p *SourcePosition) String() string {
	if p == nil {
		return "<unknown>"
	}
	filename := p.Filename
	if filename == "" {
		filename = "<program>"
	}
	return fmt.Sprintf("%s:%d", filename, p.Line)
}

// Kind is the declared type of a symbol
type Kind int

const (
	KindInteger Kind = iota
	KindList
)

// String returns the short name used in symbol table dumps
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "int"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Context is passed to instruction handlers
type Context struct {
	Args     []string
	Position *SourcePosition
	table    *SymbolTable
	engine   *Engine
	logger   *Logger
}

// Table returns the symbol table the instruction runs against
func (c *Context) Table() *SymbolTable {
	return c.table
}

// ProgramLength returns the number of lines in the running program
func (c *Context) ProgramLength() int {
	return len(c.engine.program)
}

// Printf writes program output (PRINT, PRINTALL)
func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.engine.out, format, args...)
}

// Output returns the writer program output goes to
func (c *Context) Output() io.Writer {
	return c.engine.out
}

// LogDebug logs a categorized debug message tagged with the instruction position
func (c *Context) LogDebug(cat LogCategory, format string, args ...interface{}) {
	if !c.logger.shouldLog(LevelDebug, cat) {
		return
	}
	c.logger.Log(LevelDebug, cat, fmt.Sprintf(format, args...), c.Position)
}

// Handler is a function that executes one instruction
type Handler func(*Context) (Result, error)

// Result tells the engine how to move the program counter
type Result interface {
	isResult()
}

// Advance moves on to the next line
type Advance struct{}

func (Advance) isResult() {}

// Jump transfers control to a 0-based line index
type Jump struct {
	Target int
}

func (Jump) isResult() {}

// Halt stops the program normally
type Halt struct{}

func (Halt) isResult() {}

// ParsedCommand represents a tokenized instruction line
type ParsedCommand struct {
	Command      string // upper-cased mnemonic, empty for blank or comment-only lines
	Arguments    []string
	Position     *SourcePosition
	OriginalLine string
}

// IsEmpty reports whether the line carries no instruction
func (pc *ParsedCommand) IsEmpty() bool {
	return pc.Command == ""
}

// Config holds configuration for the interpreter
type Config struct {
	Debug         bool          // enable debug logging
	Trace         bool          // log every executed step
	LogCategories []LogCategory // categories shown when Debug is set; nil means all
	Stdout        io.Writer     // program output (PRINT, PRINTALL, fault report, final state)
	Stderr        io.Writer     // log output for warnings and errors
	Filename      string        // used in source positions
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Debug:  false,
		Trace:  false,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
