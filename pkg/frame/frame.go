package frame

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/connerohnesorge/minicc/internal/symtab"
)

// Slot is one local variable's position within a frame.
type Slot struct {
	Name   string
	Offset int
}

// Frame is the resolved layout of every local variable a parse produced.
type Frame struct {
	FuncName  string
	Size      int
	Slots     []Slot
	Signature string
}

// Builder assembles a Frame from a symbol table. Like the teacher's
// derivation builder, each setter returns the builder itself so calls can
// chain, and nothing is computed until Build.
type Builder struct {
	funcName string
	table    *symtab.Table
}

// NewBuilder starts building a Frame report for funcName.
func NewBuilder(funcName string) *Builder {
	return &Builder{funcName: funcName}
}

// FromTable attaches the symbol table whose layout this Frame reports on.
func (b *Builder) FromTable(table *symtab.Table) *Builder {
	b.table = table

	return b
}

// Build finalizes the Frame: slots are extracted from the table and
// sorted by offset, and a content signature is computed over that sorted
// order so two builds of the same logical layout always match.
func (b *Builder) Build() *Frame {
	f := &Frame{FuncName: b.funcName}

	if b.table == nil {
		f.Signature = f.computeSignature()

		return f
	}

	f.Size = b.table.FrameSize()
	for _, lv := range b.table.Slots() {
		f.Slots = append(f.Slots, Slot{Name: lv.Name, Offset: lv.Offset})
	}
	sort.Slice(f.Slots, func(i, j int) bool { return f.Slots[i].Offset < f.Slots[j].Offset })

	f.Signature = f.computeSignature()

	return f
}

// computeSignature hashes the frame's name, size, and sorted slot list, so
// two frames with identical layouts always produce identical signatures
// regardless of the order variables were first seen in source versus the
// order Slots happens to store them.
func (f *Frame) computeSignature() string {
	parts := []string{
		"func=" + f.FuncName,
		fmt.Sprintf("size=%d", f.Size),
	}

	for _, s := range f.Slots {
		parts = append(parts, fmt.Sprintf("slot.%s=%d", s.Name, s.Offset))
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "\n")))

	return hex.EncodeToString(sum[:])[:16]
}
