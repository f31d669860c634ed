package ppl

// registerListLib registers the list instructions.
// Every value that lands in a list slot is a fresh deep copy.
func registerListLib(e *Executor) {

	// COPY src dst  ->  dst := deep copy of src
	e.RegisterInstruction("COPY", 2, func(ctx *Context) (Result, error) {
		src, err := ctx.Table().List(ctx.Args[0])
		if err != nil {
			return nil, err
		}
		if _, err := ctx.Table().GetKind(ctx.Args[1], KindList); err != nil {
			return nil, err
		}
		if err := ctx.Table().SetList(ctx.Args[1], src.DeepCopy()); err != nil {
			return nil, err
		}
		ctx.LogDebug(CatList, "%s := %s", ctx.Args[1], src)
		return Advance{}, nil
	})

	// MERGE src dst  ->  prepend the whole value of src to dst as one element
	e.RegisterInstruction("MERGE", 2, func(ctx *Context) (Result, error) {
		src, err := ctx.Table().Get(ctx.Args[0])
		if err != nil {
			return nil, err
		}
		dst, err := ctx.Table().List(ctx.Args[1])
		if err != nil {
			return nil, err
		}
		dst.Prepend(copyElement(src.Value))
		ctx.LogDebug(CatList, "%s := %s", ctx.Args[1], dst)
		return Advance{}, nil
	})

	// HEAD list id  ->  id := first element of list
	e.RegisterInstruction("HEAD", 2, func(ctx *Context) (Result, error) {
		src, err := ctx.Table().List(ctx.Args[0])
		if err != nil {
			return nil, err
		}
		first, ok := src.First()
		if !ok {
			return nil, newError(ErrEmptyListAccess, "HEAD of empty list %q", ctx.Args[0])
		}
		id := ctx.Args[1]
		err = MatchElement(first,
			func(i Integer) error {
				if _, err := ctx.Table().GetKind(id, KindInteger); err != nil {
					return err
				}
				return ctx.Table().SetInteger(id, int64(i))
			},
			func(l *ListValue) error {
				if _, err := ctx.Table().GetKind(id, KindList); err != nil {
					return err
				}
				return ctx.Table().SetList(id, l.DeepCopy())
			},
		)
		if err != nil {
			return nil, err
		}
		ctx.LogDebug(CatList, "%s := head of %s", id, ctx.Args[0])
		return Advance{}, nil
	})

	// TAIL list1 list2  ->  list2 := list1 without its first element
	e.RegisterInstruction("TAIL", 2, func(ctx *Context) (Result, error) {
		src, err := ctx.Table().List(ctx.Args[0])
		if err != nil {
			return nil, err
		}
		if _, err := ctx.Table().GetKind(ctx.Args[1], KindList); err != nil {
			return nil, err
		}
		tail := src.TailAsNewList()
		if err := ctx.Table().SetList(ctx.Args[1], tail); err != nil {
			return nil, err
		}
		ctx.LogDebug(CatList, "%s := %s", ctx.Args[1], tail)
		return Advance{}, nil
	})
}
