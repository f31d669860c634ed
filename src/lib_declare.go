package ppl

// registerDeclareLib registers the declaration instructions
func registerDeclareLib(e *Executor) {

	// INTEGER name
	e.RegisterInstruction("INTEGER", 1, func(ctx *Context) (Result, error) {
		if err := ctx.Table().DeclareInteger(ctx.Args[0]); err != nil {
			return nil, err
		}
		ctx.LogDebug(CatVariable, "declared %s (int)", ctx.Args[0])
		return Advance{}, nil
	})

	// LIST name
	e.RegisterInstruction("LIST", 1, func(ctx *Context) (Result, error) {
		if err := ctx.Table().DeclareList(ctx.Args[0]); err != nil {
			return nil, err
		}
		ctx.LogDebug(CatVariable, "declared %s (list)", ctx.Args[0])
		return Advance{}, nil
	})
}
