package ppl

import (
	"strconv"
)

// isTrue is the IF condition: an INTEGER is true when it is 0, a LIST when it is empty
func isTrue(sym *Symbol) bool {
	return MatchElement(sym.Value,
		func(i Integer) bool { return i == 0 },
		func(l *ListValue) bool { return l.IsEmpty() },
	)
}

// registerFlowLib registers the control flow instructions
func registerFlowLib(e *Executor) {

	// IF id lineNo  ->  jump to lineNo (1-based) when id is true
	e.RegisterInstruction("IF", 2, func(ctx *Context) (Result, error) {
		sym, err := ctx.Table().Get(ctx.Args[0])
		if err != nil {
			return nil, err
		}
		line, err := strconv.ParseInt(ctx.Args[1], 10, 64)
		if err != nil || line < 1 {
			return nil, newError(ErrInvalidLiteral, "line number %q", ctx.Args[1])
		}
		// Targets are checked even when the branch is not taken.
		if line > int64(ctx.ProgramLength()) {
			return nil, newError(ErrJumpOutOfRange, "line %d, program has %d lines", line, ctx.ProgramLength())
		}

		if !isTrue(sym) {
			ctx.LogDebug(CatFlow, "IF %s not taken", sym.Name)
			return Advance{}, nil
		}
		ctx.LogDebug(CatFlow, "IF %s taken, jumping to line %d", sym.Name, line)
		return Jump{Target: int(line - 1)}, nil
	})

	// HLT
	e.RegisterInstruction("HLT", 0, func(ctx *Context) (Result, error) {
		return Halt{}, nil
	})
}
