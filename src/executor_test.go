package ppl

import (
	"errors"
	"io"
	"testing"
)

func newTestExecutor() *Executor {
	logger := NewLogger(false)
	logger.SetOutput(io.Discard, io.Discard)
	return NewExecutor(logger)
}

func TestExecutorRegistration(t *testing.T) {
	e := newTestExecutor()
	handler := func(ctx *Context) (Result, error) { return Advance{}, nil }

	e.RegisterInstruction("nop", 0, handler)

	inst, ok := e.GetInstruction("NoP")
	if !ok {
		t.Fatal("Expected nop to be registered")
	}
	if inst.Name != "NOP" || inst.Arity != 0 {
		t.Errorf("Expected NOP/0, got %s/%d", inst.Name, inst.Arity)
	}

	// Re-registering replaces the previous definition
	e.RegisterInstruction("NOP", 2, handler)
	if inst, _ := e.GetInstruction("nop"); inst.Arity != 2 {
		t.Errorf("Expected arity 2 after replacement, got %d", inst.Arity)
	}

	if !e.UnregisterInstruction("Nop") {
		t.Error("Expected unregister to succeed")
	}
	if e.UnregisterInstruction("NOP") {
		t.Error("Expected second unregister to fail")
	}
	if _, ok := e.GetInstruction("NOP"); ok {
		t.Error("NOP should be gone")
	}
}

func TestExecutorDispatch(t *testing.T) {
	e := newTestExecutor()
	var seen []string
	e.RegisterInstruction("PAIR", 2, func(ctx *Context) (Result, error) {
		seen = ctx.Args
		return Jump{Target: 0}, nil
	})

	engine := NewEngine(nil, e, e.logger, &Config{Stdout: io.Discard})
	parser := NewParser("")

	t.Run("empty line advances", func(t *testing.T) {
		result, err := e.Dispatch(parser.ParseLine("   # only a comment", 0), engine)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if _, ok := result.(Advance); !ok {
			t.Errorf("Expected Advance, got %T", result)
		}
	})

	t.Run("handler receives arguments", func(t *testing.T) {
		result, err := e.Dispatch(parser.ParseLine("pair a b", 0), engine)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if jump, ok := result.(Jump); !ok || jump.Target != 0 {
			t.Errorf("Expected Jump to 0, got %#v", result)
		}
		if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
			t.Errorf("Expected [a b], got %v", seen)
		}
	})

	t.Run("arity", func(t *testing.T) {
		_, err := e.Dispatch(parser.ParseLine("PAIR a", 0), engine)
		if !errors.Is(err, ErrArity) {
			t.Fatalf("Expected ErrArity, got %v", err)
		}
		if err.Error() != "wrong number of arguments: PAIR expects 2, got 1" {
			t.Errorf("Unexpected message %q", err.Error())
		}
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := e.Dispatch(parser.ParseLine("MUL a b", 0), engine)
		if !errors.Is(err, ErrUnknownInstruction) {
			t.Errorf("Expected ErrUnknownInstruction, got %v", err)
		}
	})
}

func TestRuntimeErrorWrapping(t *testing.T) {
	pos := &SourcePosition{Line: 3, OriginalText: "HEAD l x"}

	err := withPosition(newError(ErrEmptyListAccess, "HEAD of empty list %q", "l"), pos)
	if err.Position != pos {
		t.Error("Expected position to be attached")
	}
	if err.Error() != `empty list access: HEAD of empty list "l"` {
		t.Errorf("Unexpected message %q", err.Error())
	}

	// A position that is already set is kept
	other := &SourcePosition{Line: 9}
	if withPosition(err, other).Position != pos {
		t.Error("Existing position was overwritten")
	}

	foreign := errors.New("boom")
	wrapped := withPosition(foreign, pos)
	if !errors.Is(wrapped, foreign) || wrapped.Error() != "boom" {
		t.Errorf("Foreign error not wrapped as-is: %v", wrapped)
	}
}
