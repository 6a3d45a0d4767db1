package ast

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTraverseAssignmentScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.ast")
	defer teardown()
	//
	syms, h := symbols("x")
	tree := NewAssignment(h[0], NewBinary(Add, NewNumber(2), NewNumber(3)))
	r := newRecorder(syms)
	Traverse(tree, r)
	expected := "leaf(2) leaf(3) binary(add) assignment(x)"
	if len(r.events) != 4 || r.String() != expected {
		t.Errorf("expected emissions '%s', got '%s'", expected, r)
	}
}

func TestTraverseCallSkipsArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.ast")
	defer teardown()
	//
	syms, h := symbols("f", "a")
	args := ListOf(NewSymbolRef(h[1]), NewBinary(Mul, NewNumber(4), NewNumber(5)))
	r := newRecorder(syms)
	Traverse(NewCall(h[0], args), r)
	if len(r.events) != 1 || r.events[0] != "call(f)" {
		t.Errorf("expected a single emission 'call(f)', got '%s'", r)
	}
}

func TestTraverseBinaryOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.ast")
	defer teardown()
	//
	syms, h := symbols("a", "b")
	// (a - 1) * (b % 2)
	tree := NewBinary(Mul,
		NewBinary(Sub, NewSymbolRef(h[0]), NewNumber(1)),
		NewBinary(Mod, NewSymbolRef(h[1]), NewNumber(2)))
	r := newRecorder(syms)
	Traverse(tree, r)
	expected := "leaf(a) leaf(1) binary(sub) leaf(b) leaf(2) binary(mod) binary(mul)"
	if r.String() != expected {
		t.Errorf("expected emissions '%s', got '%s'", expected, r)
	}
}

func TestTraverseUnary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.ast")
	defer teardown()
	//
	syms, h := symbols("x", "y")
	tree := NewAssignment(h[0], NewUnary(LogicalNot, NewUnary(BitNot, NewUnary(Negate, NewSymbolRef(h[1])))))
	r := newRecorder(syms)
	Traverse(tree, r)
	expected := "leaf(y) unary(neg) unary(bneg) unary(lneg) assignment(x)"
	if r.String() != expected {
		t.Errorf("expected emissions '%s', got '%s'", expected, r)
	}
}

func TestTraverseFuncDefBeforeBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.ast")
	defer teardown()
	//
	syms, h := symbols("f", "p", "x")
	params := ListOf(NewSymbolDecl(h[1]))
	body := ListOf(
		NewSymbolDecl(h[2]),
		NewAssignment(h[2], NewBinary(Add, NewSymbolRef(h[1]), NewNumber(1))),
	)
	r := newRecorder(syms)
	Traverse(NewFuncDef(h[0], params, body), r)
	expected := "funcdef(f) leaf(var x) leaf(p) leaf(1) binary(add) assignment(x)"
	if r.String() != expected {
		t.Errorf("expected emissions '%s', got '%s'", expected, r)
	}
}

func TestTraverseWhileIsSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.ast")
	defer teardown()
	//
	syms, h := symbols("x")
	loop := NewWhile(NewSymbolRef(h[0]), ListOf(NewAssignment(h[0], NewNumber(0))))
	tree := ListOf(
		NewAssignment(h[0], NewNumber(1)),
		loop,
		NewAssignment(h[0], NewNumber(2)),
	)
	r := newRecorder(syms)
	Traverse(tree, r)
	expected := "leaf(1) assignment(x) leaf(2) assignment(x)"
	if r.String() != expected {
		t.Errorf("expected emissions '%s', got '%s'", expected, r)
	}
	r = newRecorder(syms)
	Traverse(loop, r)
	if len(r.events) != 0 {
		t.Errorf("expected no emissions for a while-loop, got '%s'", r)
	}
}

func TestTraverseNil(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.ast")
	defer teardown()
	//
	r := newRecorder(nil)
	Traverse(nil, r)
	Traverse((*List)(nil), r)
	if len(r.events) != 0 {
		t.Errorf("expected no emissions for nil, got '%s'", r)
	}
}

func TestTraverseCorruptNodeContinues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.ast")
	defer teardown()
	//
	syms, h := symbols("x")
	tree := ListOf(
		NewBinary(Add, &corruptNode{}, NewNumber(1)),
		NewAssignment(h[0], NewNumber(2)),
	)
	r := newRecorder(syms)
	Traverse(tree, r)
	expected := "leaf(1) binary(add) leaf(2) assignment(x)"
	if r.String() != expected {
		t.Errorf("expected emissions '%s', got '%s'", expected, r)
	}
}

func TestTraverseReleasedTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.ast")
	defer teardown()
	//
	tree := NewBinary(Add, NewNumber(2), NewNumber(3))
	Destroy(tree)
	r := newRecorder(nil)
	Traverse(tree, r)
	if len(r.events) != 0 {
		t.Errorf("expected no emissions for a released tree, got '%s'", r)
	}
}

func TestTraverseLongList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "astwalk.ast")
	defer teardown()
	//
	const n = 100000
	var tree Node
	for i := n - 1; i >= 0; i-- {
		tree = NewList(NewNumber(int64(i)), tree)
	}
	r := newRecorder(nil)
	Traverse(tree, r)
	if len(r.events) != n {
		t.Fatalf("expected %d emissions, got %d", n, len(r.events))
	}
	if r.events[0] != "leaf(0)" || r.events[n-1] != "leaf(99999)" {
		t.Errorf("expected list elements to be emitted in sequence order")
	}
	if cnt := Destroy(tree); cnt != 2*n {
		t.Errorf("expected %d nodes to be released, got %d", 2*n, cnt)
	}
}
