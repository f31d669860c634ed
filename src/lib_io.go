package ppl

// registerIOLib registers the output instructions
func registerIOLib(e *Executor) {

	// PRINT name  ->  "name = value"
	e.RegisterInstruction("PRINT", 1, func(ctx *Context) (Result, error) {
		sym, err := ctx.Table().Get(ctx.Args[0])
		if err != nil {
			return nil, err
		}
		ctx.Printf("%s = %s\n", sym.Name, sym.ValueString())
		return Advance{}, nil
	})

	// PRINTALL
	e.RegisterInstruction("PRINTALL", 0, func(ctx *Context) (Result, error) {
		ctx.engine.WriteSymbolTable()
		return Advance{}, nil
	})
}
