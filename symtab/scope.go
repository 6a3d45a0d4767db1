package symtab

import (
	"fmt"
)

// === Scopes ================================================================

// Scope is a named scope, which may contain symbol definitions. Scopes link back to a
// parent scope, forming a tree. All scopes of a tree store their entries in a
// shared table.
type Scope struct {
	Name   string
	Parent *Scope
	table  *Table
	names  map[string]Handle
}

// NewScope creates a new scope. If parent is nil, the scope will store its
// entries in table; otherwise table is ignored and the parent's table is used.
func NewScope(nm string, parent *Scope, table *Table) *Scope {
	if parent != nil {
		table = parent.table
	} else if table == nil {
		table = NewTable()
	}
	return &Scope{
		Name:   nm,
		Parent: parent,
		table:  table,
		names:  make(map[string]Handle),
	}
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Table returns the symbol table the scope stores its entries in.
func (s *Scope) Table() *Table {
	return s.table
}

// Define defines a symbol in the scope. Returns the new handle and the
// handle previously bound to this name in this scope, if any.
//
func (s *Scope) Define(name string) (Handle, Handle) {
	if len(name) == 0 {
		return NoSymbol, NoSymbol
	}
	e := s.table.newEntry(name, s.Name)
	old := s.names[name]
	s.names[name] = e.handle
	return e.handle, old
}

// Resolve finds a symbol. Returns its handle (or NoSymbol) and a scope. The
// scope is the scope (of a scope-tree-path) the symbol was found in.
//
func (s *Scope) Resolve(name string) (Handle, *Scope) {
	for sc := s; sc != nil; sc = sc.Parent {
		if h, ok := sc.names[name]; ok {
			return h, sc
		}
	}
	return NoSymbol, nil
}

// ---------------------------------------------------------------------------

// ScopeTree can be treated as a stack during static analysis, thus
// building a tree from scopes which are pushed an popped to/from the stack.
//
type ScopeTree struct {
	ScopeBase *Scope
	ScopeTOS  *Scope
	table     *Table
}

// NewScopeTree creates a scope tree with a global scope, storing entries
// in table. If table is nil, a new table will be created.
func NewScopeTree(table *Table) *ScopeTree {
	if table == nil {
		table = NewTable()
	}
	scst := &ScopeTree{table: table}
	scst.PushNewScope(GlobalScopeName)
	return scst
}

// GlobalScopeName is the name of the bottom-most scope of a scope tree.
const GlobalScopeName = "globals"

// Table returns the table shared by all scopes of the tree.
func (scst *ScopeTree) Table() *Table {
	return scst.table
}

// Current gets the current scope of a stack (TOS).
func (scst *ScopeTree) Current() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to access scope from empty stack")
	}
	return scst.ScopeTOS
}

// Globals gets the outermost scope, containing global symbols.
func (scst *ScopeTree) Globals() *Scope {
	if scst.ScopeBase == nil {
		panic("attempt to access global scope from empty stack")
	}
	return scst.ScopeBase
}

// PushNewScope pushes a scope onto the stack of scopes.
func (scst *ScopeTree) PushNewScope(nm string) *Scope {
	scp := scst.ScopeTOS
	newsc := NewScope(nm, scp, scst.table)
	if scp == nil { // the new scope is the global scope
		scst.ScopeBase = newsc // make new scope anchor
	}
	scst.ScopeTOS = newsc // new scope now TOS
	tracer().P("scope", newsc.Name).Debugf("pushing new scope")
	return newsc
}

// PopScope pops the top-most (recent) scope.
func (scst *ScopeTree) PopScope() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to pop scope from empty stack")
	}
	sc := scst.ScopeTOS
	tracer().Debugf("popping scope [%s]", sc.Name)
	scst.ScopeTOS = scst.ScopeTOS.Parent
	return sc
}
