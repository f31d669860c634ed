package ppl

import (
	"fmt"
	"io"
	"strings"
)

// Status is the state of the run loop
type Status int

const (
	StatusRunning   Status = iota
	StatusHalted           // HLT executed
	StatusFaulted          // an instruction reported an error
	StatusCompleted        // pc left the program
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusHalted:
		return "halted"
	case StatusFaulted:
		return "faulted"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

const (
	symbolTableHeader = "--- symbol table ---"
	finalStateHeader  = "--- final state ---"
	dumpFooter        = "--------------------"
)

// Outcome summarizes how a run ended
type Outcome struct {
	Status    Status
	Fault     *RuntimeError // set when Status is StatusFaulted
	FaultLine int           // 1-based line of the fault
	Steps     int           // number of lines executed, including the faulting one
}

// Engine owns a program, its program counter and its symbol table
type Engine struct {
	program  []*ParsedCommand
	parser   *Parser
	pc       int
	table    *SymbolTable
	status   Status
	fault    *RuntimeError
	steps    int
	executor *Executor
	logger   *Logger
	out      io.Writer
	trace    bool
}

// NewEngine creates an engine positioned at the first line of program
func NewEngine(program []string, executor *Executor, logger *Logger, config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	parser := NewParser(config.Filename)
	out := config.Stdout
	if out == nil {
		out = io.Discard
	}
	return &Engine{
		program:  parser.ParseProgram(program),
		parser:   parser,
		table:    NewSymbolTable(),
		status:   StatusRunning,
		executor: executor,
		logger:   logger,
		out:      out,
		trace:    config.Trace,
	}
}

// Table returns the engine's symbol table
func (e *Engine) Table() *SymbolTable {
	return e.table
}

// PC returns the 0-based program counter
func (e *Engine) PC() int {
	return e.pc
}

// Status returns the current state of the run loop
func (e *Engine) Status() Status {
	return e.status
}

// Len returns the number of program lines
func (e *Engine) Len() int {
	return len(e.program)
}

// Step executes the line at pc and applies its result.
// It returns false once the engine is in a terminal state.
func (e *Engine) Step() bool {
	if e.status != StatusRunning {
		return false
	}
	if e.pc < 0 || e.pc >= len(e.program) {
		e.status = StatusCompleted
		e.logger.TraceCat(CatFlow, "pc %d outside program, stopping", e.pc)
		return false
	}

	cmd := e.program[e.pc]
	e.steps++
	if e.trace && !cmd.IsEmpty() {
		e.logger.Log(LevelTrace, CatFlow, fmt.Sprintf("pc=%d %s %s", e.pc, cmd.Command, strings.Join(cmd.Arguments, " ")), nil)
	}

	result, err := e.executor.Dispatch(cmd, e)
	if err != nil {
		e.raise(cmd, err)
		return false
	}

	switch r := result.(type) {
	case Advance:
		e.pc++
	case Jump:
		if r.Target < 0 || r.Target >= len(e.program) {
			e.raise(cmd, newError(ErrJumpOutOfRange, "line %d", r.Target+1))
			return false
		}
		e.logger.TraceCat(CatFlow, "jump %d -> %d", e.pc+1, r.Target+1)
		e.pc = r.Target
	case Halt:
		e.status = StatusHalted
		e.logger.TraceCat(CatFlow, "halted at line %d", e.pc+1)
		return false
	default:
		e.raise(cmd, fmt.Errorf("instruction %s returned unsupported result %T", cmd.Command, result))
		return false
	}
	return true
}

// raise moves the engine into the faulted state and writes the fault report
func (e *Engine) raise(cmd *ParsedCommand, err error) {
	e.fault = withPosition(err, cmd.Position)
	e.status = StatusFaulted
	e.logger.RuntimeFault(cmd.Command, e.fault)
	e.writeFault(cmd)
}

// writeFault writes the three-line fault block
func (e *Engine) writeFault(cmd *ParsedCommand) {
	fmt.Fprintf(e.out, "Runtime error at line %d\n", cmd.Position.Line)
	fmt.Fprintf(e.out, "  %s\n", cmd.Position.OriginalText)
	fmt.Fprintf(e.out, "  %s\n", e.fault.Error())
}

// Continue runs until a terminal state without writing the final state
func (e *Engine) Continue() Outcome {
	if e.status == StatusCompleted && e.pc >= 0 && e.pc < len(e.program) {
		e.status = StatusRunning
	}
	for e.Step() {
	}
	return e.Outcome()
}

// Run runs the program to a terminal state and writes the final symbol table
func (e *Engine) Run() Outcome {
	outcome := e.Continue()
	e.WriteFinalState()
	return outcome
}

// Outcome reports the current state of the run
func (e *Engine) Outcome() Outcome {
	outcome := Outcome{Status: e.status, Fault: e.fault, Steps: e.steps}
	if e.fault != nil && e.fault.Position != nil {
		outcome.FaultLine = e.fault.Position.Line
	}
	return outcome
}

// AppendLine adds a line to the end of the program
func (e *Engine) AppendLine(line string) {
	e.program = append(e.program, e.parser.ParseLine(line, len(e.program)))
}

// Recover clears a fault so that execution can continue with the next appended line.
// Symbol table changes made before the fault are kept.
func (e *Engine) Recover() {
	if e.status != StatusFaulted {
		return
	}
	e.fault = nil
	e.pc = len(e.program)
	e.status = StatusCompleted
}

// WriteSymbolTable writes the PRINTALL block
func (e *Engine) WriteSymbolTable() {
	e.writeDump(symbolTableHeader)
}

// WriteFinalState writes the final state block
func (e *Engine) WriteFinalState() {
	e.writeDump(finalStateHeader)
}

func (e *Engine) writeDump(header string) {
	fmt.Fprintln(e.out, header)
	e.table.Render(e.out)
	fmt.Fprintln(e.out, dumpFooter)
}
