package ast

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/astwalk/symtab"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// recorder is an Emitter which records every emission as a short string.
type recorder struct {
	syms   *symtab.Table
	events []string
}

func newRecorder(syms *symtab.Table) *recorder {
	return &recorder{syms: syms}
}

func (r *recorder) name(h symtab.Handle) string {
	if r.syms == nil {
		return h.String()
	}
	return r.syms.Name(h)
}

func (r *recorder) EmitLeaf(n Node) {
	switch x := n.(type) {
	case *Number:
		r.record("leaf(%d)", x.Value())
	case *SymbolRef:
		r.record("leaf(%s)", r.name(x.Symbol()))
	case *SymbolDecl:
		r.record("leaf(var %s)", r.name(x.Symbol()))
	default:
		r.record("leaf(?)")
	}
}

func (r *recorder) EmitAssignment(n *Assignment) { r.record("assignment(%s)", r.name(n.Target())) }
func (r *recorder) EmitCall(n *Call)             { r.record("call(%s)", r.name(n.Callee())) }
func (r *recorder) EmitFuncDef(n *FuncDef)       { r.record("funcdef(%s)", r.name(n.Symbol())) }
func (r *recorder) EmitUnary(n *Unary)           { r.record("unary(%s)", n.Op().Name()) }
func (r *recorder) EmitBinary(n *Binary)         { r.record("binary(%s)", n.Op().Name()) }

func (r *recorder) record(format string, args ...interface{}) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) String() string {
	return strings.Join(r.events, " ")
}

var _ Emitter = (*recorder)(nil)

// corruptNode simulates a node constructed with an invalid discriminant.
type corruptNode struct {
	header
}

func (n *corruptNode) Kind() Kind     { return Kind(42) }
func (n *corruptNode) String() string { return "corrupt" }
func (n *corruptNode) base() *header {
	if n == nil {
		return nil
	}
	return &n.header
}

func symbols(names ...string) (*symtab.Table, []symtab.Handle) {
	globals := symtab.NewScopeTree(nil).Globals()
	handles := make([]symtab.Handle, len(names))
	for i, name := range names {
		handles[i], _ = globals.Define(name)
	}
	return globals.Table(), handles
}

// --- Tests -----------------------------------------------------------------

func TestKindString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.ast")
	defer teardown()
	//
	if s := NumberNode.String(); s != "Number" {
		t.Errorf("expected NumberNode to print as 'Number', is '%s'", s)
	}
	if s := Kind(42).String(); s != "Kind(42)" {
		t.Errorf("expected invalid kind to print as 'Kind(42)', is '%s'", s)
	}
	if s := Mod.Name(); s != "mod" {
		t.Errorf("expected Mod to be named 'mod', is '%s'", s)
	}
}

func TestConstructorsSetKind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.ast")
	defer teardown()
	//
	_, h := symbols("x")
	nodes := map[Kind]Node{
		NumberNode:     NewNumber(1),
		SymbolRefNode:  NewSymbolRef(h[0]),
		SymbolDeclNode: NewSymbolDecl(h[0]),
		UnaryNode:      NewUnary(Negate, NewNumber(1)),
		BinaryNode:     NewBinary(Add, NewNumber(1), NewNumber(2)),
		AssignmentNode: NewAssignment(h[0], NewNumber(1)),
		CallNode:       NewCall(h[0], nil),
		FuncDefNode:    NewFuncDef(h[0], nil, NewNumber(1)),
		ListNode:       NewList(NewNumber(1), nil),
		WhileNode:      NewWhile(NewNumber(1), NewNumber(2)),
	}
	for kind, n := range nodes {
		if n.Kind() != kind {
			t.Errorf("expected node %v to be of kind %s, is %s", n, kind, n.Kind())
		}
	}
}

func TestNodeString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.ast")
	defer teardown()
	//
	_, h := symbols("x")
	tree := ListOf(
		NewAssignment(h[0], NewBinary(Mul, NewUnary(Negate, NewNumber(2)), NewSymbolRef(h[0]))),
		NewCall(h[0], nil),
	)
	expected := "(list (= #1 (* (- 2) #1)) (call #1 nil))"
	if tree.String() != expected {
		t.Errorf("expected %s, got %s", expected, tree.String())
	}
}

func TestListOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.ast")
	defer teardown()
	//
	if ListOf() != nil {
		t.Errorf("expected empty list to be nil")
	}
	l := ListOf(NewNumber(1), NewNumber(2), NewNumber(3))
	cell := l.(*List)
	if cell.Head().(*Number).Value() != 1 {
		t.Errorf("expected head of list to be 1")
	}
	last := cell.Tail().(*List).Tail().(*List)
	if last.Head().(*Number).Value() != 3 || last.Tail() != nil {
		t.Errorf("expected last cell to hold 3 and have a nil tail")
	}
}

func TestLeafClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.ast")
	defer teardown()
	//
	_, h := symbols("x")
	leaves := []Node{NewNumber(1), NewSymbolRef(h[0]), NewSymbolDecl(h[0])}
	for _, n := range leaves {
		if !IsLeaf(n) {
			t.Errorf("expected %s to be a leaf", n.Kind())
		}
	}
	nonLeaves := []Node{
		NewUnary(BitNot, NewNumber(1)),
		NewBinary(Sub, NewNumber(1), NewNumber(2)),
		NewAssignment(h[0], NewNumber(1)),
		NewCall(h[0], nil),
		NewFuncDef(h[0], nil, nil),
		NewList(NewNumber(1), nil),
		NewWhile(NewNumber(1), nil),
		&corruptNode{},
	}
	for _, n := range nonLeaves {
		if IsLeaf(n) {
			t.Errorf("expected %s not to be a leaf", n.Kind())
		}
	}
	if IsLeaf(nil) || IsLeaf((*Number)(nil)) {
		t.Errorf("expected nil not to be a leaf")
	}
}
