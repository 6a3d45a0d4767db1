package symtab

import (
	"fmt"
)

// --- Handles and entries ---------------------------------------------------

// Handle is a weak reference to a symbol entry. The zero value NoSymbol does
// not refer to any entry.
type Handle uint32

// NoSymbol is the handle which never refers to an entry.
const NoSymbol Handle = 0

func (h Handle) String() string {
	if h == NoSymbol {
		return "#-"
	}
	return fmt.Sprintf("#%d", uint32(h))
}

// Type categorizes symbol entries.
type Type int8

// Pre-defined entry types.
const (
	Undefined Type = iota
	VariableType
	FunctionType
	ParameterType
)

func (t Type) String() string {
	switch t {
	case VariableType:
		return "var"
	case FunctionType:
		return "func"
	case ParameterType:
		return "param"
	}
	return "undef"
}

// Entry is a symbol stored in a table. Entries are created by a table only.
type Entry struct {
	name   string
	scope  string
	handle Handle
	Typ    Type
}

// Name gets the entry's name.
func (e *Entry) Name() string {
	return e.name
}

// Handle returns the handle which refers to this entry.
func (e *Entry) Handle() Handle {
	return e.handle
}

// Scope returns the name of the scope the entry has been defined in.
func (e *Entry) Scope() string {
	return e.scope
}

// WithType sets the type of an entry. Use as
//
//    entry := table.Entry(h).WithType(FunctionType)
//
func (e *Entry) WithType(t Type) *Entry {
	e.Typ = t
	return e
}

// String is a debug Stringer for entries.
func (e *Entry) String() string {
	return fmt.Sprintf("<sym '%s'%s:%s>", e.name, e.handle, e.Typ)
}

// === Symbol Tables =========================================================

// Table stores symbol entries. Entries are never removed; a handle obtained
// from a table stays valid as long as the table lives.
//
// A table does not bind names. Entries are created and names are resolved
// through scopes (see Scope), which may bind the same name to different
// entries of a table.
type Table struct {
	entries []*Entry
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{}
}

func (t *Table) newEntry(name string, scope string) *Entry {
	e := &Entry{
		name:   name,
		scope:  scope,
		handle: Handle(len(t.entries) + 1),
	}
	t.entries = append(t.entries, e)
	tracer().Debugf("defined %v", e)
	return e
}

// Entry returns the entry for a handle, or nil if the handle is NoSymbol or
// unknown to this table.
func (t *Table) Entry(h Handle) *Entry {
	if h == NoSymbol || int(h) > len(t.entries) {
		return nil
	}
	return t.entries[h-1]
}

// Name returns the name of the entry for h, or the empty string.
func (t *Table) Name(h Handle) string {
	if e := t.Entry(h); e != nil {
		return e.name
	}
	return ""
}

// Size counts the entries in a table.
func (t *Table) Size() int {
	return len(t.entries)
}

// Each iterates over the entries in the table in order of definition,
// executing a mapper function.
func (t *Table) Each(mapper func(Handle, *Entry)) {
	for _, e := range t.entries {
		mapper(e.handle, e)
	}
}
