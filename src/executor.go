package ppl

import (
	"sort"
	"strings"
)

// Instruction is a registered instruction definition
type Instruction struct {
	Name    string
	Arity   int
	Handler Handler
}

// Executor holds the instruction set and dispatches parsed lines to handlers
type Executor struct {
	instructions map[string]*Instruction
	logger       *Logger
}

// NewExecutor creates a new executor with an empty instruction set
func NewExecutor(logger *Logger) *Executor {
	return &Executor{
		instructions: make(map[string]*Instruction),
		logger:       logger,
	}
}

// RegisterInstruction registers a handler under a case-insensitive mnemonic
func (e *Executor) RegisterInstruction(name string, arity int, handler Handler) {
	key := strings.ToUpper(name)
	e.instructions[key] = &Instruction{Name: key, Arity: arity, Handler: handler}
	e.logger.DebugCat(CatSystem, "Registered instruction: %s/%d", key, arity)
}

// UnregisterInstruction removes an instruction
func (e *Executor) UnregisterInstruction(name string) bool {
	key := strings.ToUpper(name)
	if _, exists := e.instructions[key]; exists {
		delete(e.instructions, key)
		e.logger.DebugCat(CatSystem, "Unregistered instruction: %s", key)
		return true
	}

	e.logger.WarnCat(CatSystem, "Attempted to unregister unknown instruction: %s", key)
	return false
}

// GetInstruction looks up an instruction by mnemonic
func (e *Executor) GetInstruction(name string) (*Instruction, bool) {
	inst, exists := e.instructions[strings.ToUpper(name)]
	return inst, exists
}

// Instructions returns the registered mnemonics in sorted order
func (e *Executor) Instructions() []string {
	names := make([]string, 0, len(e.instructions))
	for name := range e.instructions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch executes one parsed line against the engine's table
func (e *Executor) Dispatch(cmd *ParsedCommand, engine *Engine) (Result, error) {
	if cmd.IsEmpty() {
		return Advance{}, nil
	}

	inst, exists := e.instructions[cmd.Command]
	if !exists {
		return nil, newError(ErrUnknownInstruction, "%q", cmd.Command)
	}

	if len(cmd.Arguments) != inst.Arity {
		return nil, newError(ErrArity, "%s expects %d, got %d", inst.Name, inst.Arity, len(cmd.Arguments))
	}

	ctx := e.createContext(cmd, engine)
	return inst.Handler(ctx)
}

// createContext creates an instruction context
func (e *Executor) createContext(cmd *ParsedCommand, engine *Engine) *Context {
	return &Context{
		Args:     cmd.Arguments,
		Position: cmd.Position,
		table:    engine.table,
		engine:   engine,
		logger:   e.logger,
	}
}
