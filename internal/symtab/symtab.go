package symtab

// LocalVariable is a single function-local variable binding: its source name
// and the byte offset of its slot in the current stack frame, counted down
// from the frame base.
type LocalVariable struct {
	Name   string
	Offset int
}

// stride is the size in bytes every local variable occupies, regardless of
// any type it might eventually carry. There is no type checking in this
// compiler, so every slot is word-sized.
const stride = 8

// Table is the flat binding map built while parsing a single function body.
// It has no parent scope: an identifier seen for the first time anywhere in
// the body, however deeply nested in compound statements, is allocated once
// and keeps that offset for the rest of the body.
type Table struct {
	vars   map[string]*LocalVariable
	offset int
}

// New returns an empty Table, ready to have identifiers resolved into it. A
// fresh Table is created at the start of every top-level parse; nothing
// about it is ever reused across calls.
func New() *Table {
	return &Table{vars: make(map[string]*LocalVariable)}
}

// Lookup returns the LocalVariable bound to name, allocating a new one at
// the next free offset if this is the identifier's first appearance. It
// never fails: every identifier the parser resolves through Lookup becomes
// a valid local variable.
func (t *Table) Lookup(name string) *LocalVariable {
	if lv, ok := t.vars[name]; ok {
		return lv
	}

	t.offset += stride
	lv := &LocalVariable{Name: name, Offset: t.offset}
	t.vars[name] = lv

	return lv
}

// FrameSize returns the total number of bytes the current set of local
// variables occupies, rounded up to nothing further since every slot is
// already stride-aligned. A caller laying out a stack frame adds this to
// whatever fixed overhead the calling convention requires.
func (t *Table) FrameSize() int {
	return t.offset
}

// Slots returns every bound variable as a name/offset pair, in no
// particular order. Callers that need a stable order (such as a frame
// layout report) sort the result themselves.
func (t *Table) Slots() []LocalVariable {
	out := make([]LocalVariable, 0, len(t.vars))
	for _, lv := range t.vars {
		out = append(out, *lv)
	}

	return out
}
