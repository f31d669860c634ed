package ppl

import (
	"strconv"
)

// parseInteger parses a signed decimal literal
func parseInteger(literal string) (int64, error) {
	v, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return 0, newError(ErrInvalidLiteral, "%q", literal)
	}
	return v, nil
}

// registerMathLib registers the integer instructions.
// Arithmetic wraps on overflow like the machine integers it models.
func registerMathLib(e *Executor) {

	// ASSIGN name literal
	e.RegisterInstruction("ASSIGN", 2, func(ctx *Context) (Result, error) {
		name := ctx.Args[0]
		if _, err := ctx.Table().GetKind(name, KindInteger); err != nil {
			return nil, err
		}
		v, err := parseInteger(ctx.Args[1])
		if err != nil {
			return nil, err
		}
		if err := ctx.Table().SetInteger(name, v); err != nil {
			return nil, err
		}
		ctx.LogDebug(CatMath, "%s := %d", name, v)
		return Advance{}, nil
	})

	// CHS name
	e.RegisterInstruction("CHS", 1, func(ctx *Context) (Result, error) {
		name := ctx.Args[0]
		v, err := ctx.Table().Integer(name)
		if err != nil {
			return nil, err
		}
		if err := ctx.Table().SetInteger(name, -v); err != nil {
			return nil, err
		}
		ctx.LogDebug(CatMath, "%s := %d", name, -v)
		return Advance{}, nil
	})

	// ADD a b  ->  a := a + b
	e.RegisterInstruction("ADD", 2, func(ctx *Context) (Result, error) {
		a, err := ctx.Table().Integer(ctx.Args[0])
		if err != nil {
			return nil, err
		}
		b, err := ctx.Table().Integer(ctx.Args[1])
		if err != nil {
			return nil, err
		}
		if err := ctx.Table().SetInteger(ctx.Args[0], a+b); err != nil {
			return nil, err
		}
		ctx.LogDebug(CatMath, "%s := %d + %d", ctx.Args[0], a, b)
		return Advance{}, nil
	})
}
