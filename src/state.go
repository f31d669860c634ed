package ppl

import (
	"fmt"
	"io"
	"strings"
)

// Symbol is a declared identifier with its kind and current value.
// Value is an Integer when Kind is KindInteger and a *ListValue when Kind is KindList.
type Symbol struct {
	Name  string
	Kind  Kind
	Value Element
}

// String renders the symbol as `name (kind) = value`
func (s *Symbol) String() string {
	return fmt.Sprintf("%s (%s) = %s", s.Name, s.Kind, s.ValueString())
}

// ValueString renders just the value
func (s *Symbol) ValueString() string {
	var sb strings.Builder
	renderElement(&sb, s.Value)
	return sb.String()
}

// SymbolTable maps names to symbols and remembers declaration order.
// Names are declared once and keep their kind for the life of the table.
type SymbolTable struct {
	symbols []*Symbol
	index   map[string]int
}

// NewSymbolTable creates an empty symbol table
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		index: make(map[string]int),
	}
}

func (t *SymbolTable) declare(name string, kind Kind, value Element) error {
	if _, exists := t.index[name]; exists {
		return newError(ErrDuplicateDeclaration, "%q is already declared", name)
	}
	t.index[name] = len(t.symbols)
	t.symbols = append(t.symbols, &Symbol{Name: name, Kind: kind, Value: value})
	return nil
}

// DeclareInteger declares name as an INTEGER with value 0
func (t *SymbolTable) DeclareInteger(name string) error {
	return t.declare(name, KindInteger, Integer(0))
}

// DeclareList declares name as a LIST with an empty list value
func (t *SymbolTable) DeclareList(name string) error {
	return t.declare(name, KindList, NewList())
}

// IsDeclared reports whether name has been declared
func (t *SymbolTable) IsDeclared(name string) bool {
	_, exists := t.index[name]
	return exists
}

// Get returns the symbol for name
func (t *SymbolTable) Get(name string) (*Symbol, error) {
	i, exists := t.index[name]
	if !exists {
		return nil, newError(ErrUndeclaredIdentifier, "%q", name)
	}
	return t.symbols[i], nil
}

// GetKind returns the symbol for name, failing unless it was declared with kind
func (t *SymbolTable) GetKind(name string, kind Kind) (*Symbol, error) {
	sym, err := t.Get(name)
	if err != nil {
		return nil, err
	}
	if sym.Kind != kind {
		return nil, newError(ErrTypeMismatch, "%q is %s, expected %s", name, sym.Kind, kind)
	}
	return sym, nil
}

// Integer returns the value of an INTEGER symbol
func (t *SymbolTable) Integer(name string) (int64, error) {
	sym, err := t.GetKind(name, KindInteger)
	if err != nil {
		return 0, err
	}
	return int64(sym.Value.(Integer)), nil
}

// List returns the value of a LIST symbol. The table still owns the returned list.
func (t *SymbolTable) List(name string) (*ListValue, error) {
	sym, err := t.GetKind(name, KindList)
	if err != nil {
		return nil, err
	}
	return sym.Value.(*ListValue), nil
}

// SetInteger replaces the value of an INTEGER symbol
func (t *SymbolTable) SetInteger(name string, v int64) error {
	sym, err := t.GetKind(name, KindInteger)
	if err != nil {
		return err
	}
	sym.Value = Integer(v)
	return nil
}

// SetList replaces the value of a LIST symbol. The table takes ownership of v;
// callers must pass a list nothing else references.
func (t *SymbolTable) SetList(name string, v *ListValue) error {
	sym, err := t.GetKind(name, KindList)
	if err != nil {
		return err
	}
	sym.Value = v
	return nil
}

// Symbols returns the symbols in declaration order
func (t *SymbolTable) Symbols() []*Symbol {
	out := make([]*Symbol, len(t.symbols))
	copy(out, t.symbols)
	return out
}

// Len returns the number of declared symbols
func (t *SymbolTable) Len() int {
	return len(t.symbols)
}

// Render writes one line per symbol in declaration order
func (t *SymbolTable) Render(w io.Writer) {
	for _, sym := range t.symbols {
		fmt.Fprintln(w, sym.String())
	}
}

// String returns the rendering produced by Render
func (t *SymbolTable) String() string {
	var sb strings.Builder
	t.Render(&sb)
	return sb.String()
}
