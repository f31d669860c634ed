// Package ppl implements an interpreter for PPL, a line-oriented instruction
// language whose only values are integers and nested lists.
//
// A program is a sequence of lines, one instruction per line:
//
//	LIST l
//	INTEGER x
//	ASSIGN x 7
//	MERGE x l      # l is now [7]
//	PRINT l
//	HLT
//
// Every transfer of a list between variables is a deep copy.
package ppl

import (
	"io"
	"os"
)

// Interpreter is the main PPL interpreter
type Interpreter struct {
	config   *Config
	logger   *Logger
	executor *Executor
}

// New creates a new interpreter with the standard instruction set installed
func New(config *Config) *Interpreter {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Stdout == nil {
		config.Stdout = os.Stdout
	}
	if config.Stderr == nil {
		config.Stderr = os.Stderr
	}

	logger := NewLogger(config.Debug || config.Trace)
	logger.SetOutput(config.Stderr, config.Stderr)
	if len(config.LogCategories) == 0 {
		logger.EnableAllCategories()
	} else {
		for _, cat := range config.LogCategories {
			logger.EnableCategory(cat)
		}
	}
	if config.Trace {
		logger.EnableCategory(CatFlow)
	}

	ip := &Interpreter{
		config:   config,
		logger:   logger,
		executor: NewExecutor(logger),
	}
	ip.RegisterStandardLibrary()
	return ip
}

// Logger returns the interpreter's logger
func (ip *Interpreter) Logger() *Logger {
	return ip.logger
}

// Config returns the interpreter's configuration
func (ip *Interpreter) Config() *Config {
	return ip.config
}

// RegisterInstruction adds or replaces an instruction
func (ip *Interpreter) RegisterInstruction(name string, arity int, handler Handler) {
	ip.executor.RegisterInstruction(name, arity, handler)
}

// UnregisterInstruction removes an instruction
func (ip *Interpreter) UnregisterInstruction(name string) bool {
	return ip.executor.UnregisterInstruction(name)
}

// Instructions lists the registered mnemonics
func (ip *Interpreter) Instructions() []string {
	return ip.executor.Instructions()
}

// NewEngine prepares an engine for the given program lines
func (ip *Interpreter) NewEngine(lines []string) *Engine {
	return NewEngine(lines, ip.executor, ip.logger, ip.config)
}

// Execute runs program source to completion, writing output and the final state
func (ip *Interpreter) Execute(source string) Outcome {
	lines := SplitProgram(source)
	ip.logger.DebugCat(CatIO, "Executing program of %d lines", len(lines))
	return ip.NewEngine(lines).Run()
}

// ExecuteFile runs program source loaded from filename
func (ip *Interpreter) ExecuteFile(source, filename string) Outcome {
	previous := ip.config.Filename
	ip.config.Filename = filename
	defer func() { ip.config.Filename = previous }()
	return ip.Execute(source)
}

// ExecuteReader reads a whole program from r and runs it
func (ip *Interpreter) ExecuteReader(r io.Reader, filename string) (Outcome, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Outcome{}, err
	}
	return ip.ExecuteFile(string(content), filename), nil
}
