package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/astwalk/symtab"
)

// Kind is the discriminant of a node. It is fixed when a node is constructed.
type Kind int8

// Node kinds, one for every variant.
const (
	NoKind Kind = iota
	NumberNode
	SymbolRefNode
	SymbolDeclNode
	UnaryNode
	BinaryNode
	AssignmentNode
	CallNode
	FuncDefNode
	ListNode
	WhileNode
)

var kindNames = [...]string{
	NoKind:         "NoKind",
	NumberNode:     "Number",
	SymbolRefNode:  "SymbolRef",
	SymbolDeclNode: "SymbolDecl",
	UnaryNode:      "Unary",
	BinaryNode:     "Binary",
	AssignmentNode: "Assignment",
	CallNode:       "Call",
	FuncDefNode:    "FuncDef",
	ListNode:       "List",
	WhileNode:      "While",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
	return kindNames[k]
}

// Node is the interface all AST node variants implement. It is sealed: all
// implementations live in this package.
type Node interface {
	Kind() Kind
	String() string
	base() *header
}

// header is state common to all node variants.
type header struct {
	released bool
}

// absent is true for nil nodes, including typed nil pointers.
func absent(n Node) bool {
	return n == nil || n.base() == nil
}

// --- Operators -------------------------------------------------------------

// UnaryOp is the operator of a unary node.
type UnaryOp int8

// Unary operators.
const (
	Negate     UnaryOp = iota // arithmetic negation
	BitNot                    // bitwise complement
	LogicalNot                // logical negation
)

var unaryOps = [...]struct{ sym, name string }{
	Negate:     {"-", "neg"},
	BitNot:     {"~", "bneg"},
	LogicalNot: {"!", "lneg"},
}

func (op UnaryOp) String() string {
	if op < 0 || int(op) >= len(unaryOps) {
		return fmt.Sprintf("UnaryOp(%d)", int8(op))
	}
	return unaryOps[op].sym
}

// Name returns a mnemonic for op, e.g. "neg".
func (op UnaryOp) Name() string {
	if op < 0 || int(op) >= len(unaryOps) {
		return op.String()
	}
	return unaryOps[op].name
}

// BinaryOp is the operator of a binary node.
type BinaryOp int8

// Binary operators.
const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
)

var binaryOps = [...]struct{ sym, name string }{
	Add: {"+", "add"},
	Sub: {"-", "sub"},
	Mul: {"*", "mul"},
	Div: {"/", "div"},
	Mod: {"%", "mod"},
}

func (op BinaryOp) String() string {
	if op < 0 || int(op) >= len(binaryOps) {
		return fmt.Sprintf("BinaryOp(%d)", int8(op))
	}
	return binaryOps[op].sym
}

// Name returns a mnemonic for op, e.g. "add".
func (op BinaryOp) Name() string {
	if op < 0 || int(op) >= len(binaryOps) {
		return op.String()
	}
	return binaryOps[op].name
}

// --- Leaves ----------------------------------------------------------------

// Number is an integer literal.
//
//	x = 42;
//	    ^^  Number{value: 42}
type Number struct {
	header
	value int64
}

// NewNumber creates a number literal.
func NewNumber(value int64) *Number {
	return &Number{value: value}
}

// Value returns the literal's value.
func (n *Number) Value() int64 { return n.value }

func (n *Number) Kind() Kind     { return NumberNode }
func (n *Number) String() string { return fmt.Sprintf("%d", n.value) }
func (n *Number) base() *header {
	if n == nil {
		return nil
	}
	return &n.header
}

// SymbolRef is a read of a symbol.
type SymbolRef struct {
	header
	symbol symtab.Handle
}

// NewSymbolRef creates a reference to a symbol. The handle is not checked.
func NewSymbolRef(symbol symtab.Handle) *SymbolRef {
	return &SymbolRef{symbol: symbol}
}

// Symbol returns the handle of the referenced symbol.
func (n *SymbolRef) Symbol() symtab.Handle { return n.symbol }

func (n *SymbolRef) Kind() Kind     { return SymbolRefNode }
func (n *SymbolRef) String() string { return n.symbol.String() }
func (n *SymbolRef) base() *header {
	if n == nil {
		return nil
	}
	return &n.header
}

// SymbolDecl declares a symbol.
//
//	var x;
//	    ^  SymbolDecl{symbol: x}
type SymbolDecl struct {
	header
	symbol symtab.Handle
}

// NewSymbolDecl creates a declaration of a symbol. The handle is not checked.
func NewSymbolDecl(symbol symtab.Handle) *SymbolDecl {
	return &SymbolDecl{symbol: symbol}
}

// Symbol returns the handle of the declared symbol.
func (n *SymbolDecl) Symbol() symtab.Handle { return n.symbol }

func (n *SymbolDecl) Kind() Kind     { return SymbolDeclNode }
func (n *SymbolDecl) String() string { return fmt.Sprintf("(var %s)", n.symbol) }
func (n *SymbolDecl) base() *header {
	if n == nil {
		return nil
	}
	return &n.header
}

// --- Operators -------------------------------------------------------------

// Unary is an operator applied to a single operand.
type Unary struct {
	header
	op      UnaryOp
	operand Node
}

// NewUnary creates a unary operator node, taking ownership of operand.
func NewUnary(op UnaryOp, operand Node) *Unary {
	return &Unary{op: op, operand: operand}
}

// Op returns the operator.
func (n *Unary) Op() UnaryOp { return n.op }

// Operand returns the single child.
func (n *Unary) Operand() Node { return n.operand }

func (n *Unary) Kind() Kind     { return UnaryNode }
func (n *Unary) String() string { return sexpr(n.op.String(), n.operand) }
func (n *Unary) base() *header {
	if n == nil {
		return nil
	}
	return &n.header
}

// Binary is an operator applied to a left and a right operand.
//
//	x + 1
//	^ ^ ^
//	| | |
//	| | right
//	| op
//	left
type Binary struct {
	header
	op          BinaryOp
	left, right Node
}

// NewBinary creates a binary operator node, taking ownership of left and right.
func NewBinary(op BinaryOp, left, right Node) *Binary {
	return &Binary{op: op, left: left, right: right}
}

// Op returns the operator.
func (n *Binary) Op() BinaryOp { return n.op }

// Left returns the left operand.
func (n *Binary) Left() Node { return n.left }

// Right returns the right operand.
func (n *Binary) Right() Node { return n.right }

func (n *Binary) Kind() Kind     { return BinaryNode }
func (n *Binary) String() string { return sexpr(n.op.String(), n.left, n.right) }
func (n *Binary) base() *header {
	if n == nil {
		return nil
	}
	return &n.header
}

// --- Statements ------------------------------------------------------------

// Assignment stores the value of an expression into a symbol.
type Assignment struct {
	header
	target symtab.Handle
	value  Node
}

// NewAssignment creates an assignment to target, taking ownership of value.
func NewAssignment(target symtab.Handle, value Node) *Assignment {
	return &Assignment{target: target, value: value}
}

// Target returns the handle of the symbol assigned to.
func (n *Assignment) Target() symtab.Handle { return n.target }

// Value returns the expression to assign.
func (n *Assignment) Value() Node { return n.value }

func (n *Assignment) Kind() Kind { return AssignmentNode }
func (n *Assignment) String() string {
	return sexpr("=", NewSymbolRef(n.target), n.value)
}
func (n *Assignment) base() *header {
	if n == nil {
		return nil
	}
	return &n.header
}

// Call calls a function. Its argument list may be nil.
type Call struct {
	header
	callee symtab.Handle
	args   Node
}

// NewCall creates a function call, taking ownership of the argument list.
func NewCall(callee symtab.Handle, args Node) *Call {
	return &Call{callee: callee, args: args}
}

// Callee returns the handle of the called function.
func (n *Call) Callee() symtab.Handle { return n.callee }

// Args returns the argument list, or nil.
func (n *Call) Args() Node { return n.args }

func (n *Call) Kind() Kind     { return CallNode }
func (n *Call) String() string { return sexpr("call "+n.callee.String(), n.args) }
func (n *Call) base() *header {
	if n == nil {
		return nil
	}
	return &n.header
}

// FuncDef defines a function with a parameter list and a body.
type FuncDef struct {
	header
	symbol symtab.Handle
	params Node
	body   Node
}

// NewFuncDef creates a function definition, taking ownership of the
// parameter list and the body.
func NewFuncDef(symbol symtab.Handle, params, body Node) *FuncDef {
	return &FuncDef{symbol: symbol, params: params, body: body}
}

// Symbol returns the handle of the defined function.
func (n *FuncDef) Symbol() symtab.Handle { return n.symbol }

// Params returns the parameter list, or nil.
func (n *FuncDef) Params() Node { return n.params }

// Body returns the function body.
func (n *FuncDef) Body() Node { return n.body }

func (n *FuncDef) Kind() Kind { return FuncDefNode }
func (n *FuncDef) String() string {
	return sexpr("func "+n.symbol.String(), n.params, n.body)
}
func (n *FuncDef) base() *header {
	if n == nil {
		return nil
	}
	return &n.header
}

// List is a sequence of statements, chained to the right. The tail of the
// last element is nil.
type List struct {
	header
	head, tail Node
}

// NewList creates a list cell, taking ownership of head and tail.
func NewList(head, tail Node) *List {
	return &List{head: head, tail: tail}
}

// ListOf chains nodes into a statement list. It returns nil for an empty
// argument list.
func ListOf(nodes ...Node) Node {
	var list Node
	for i := len(nodes) - 1; i >= 0; i-- {
		list = NewList(nodes[i], list)
	}
	return list
}

// Head returns the first element.
func (n *List) Head() Node { return n.head }

// Tail returns the remaining list, or nil.
func (n *List) Tail() Node { return n.tail }

func (n *List) Kind() Kind { return ListNode }
func (n *List) String() string {
	var elems []Node
	var l Node = n
	for !absent(l) {
		cell, ok := l.(*List)
		if !ok {
			elems = append(elems, l)
			break
		}
		elems = append(elems, cell.head)
		l = cell.tail
	}
	return sexpr("list", elems...)
}
func (n *List) base() *header {
	if n == nil {
		return nil
	}
	return &n.header
}

// While repeats its body as long as its condition holds.
// Code generation for loops is not supported.
type While struct {
	header
	cond, body Node
}

// NewWhile creates a loop, taking ownership of condition and body.
func NewWhile(cond, body Node) *While {
	return &While{cond: cond, body: body}
}

// Cond returns the loop condition.
func (n *While) Cond() Node { return n.cond }

// Body returns the loop body.
func (n *While) Body() Node { return n.body }

func (n *While) Kind() Kind     { return WhileNode }
func (n *While) String() string { return sexpr("while", n.cond, n.body) }
func (n *While) base() *header {
	if n == nil {
		return nil
	}
	return &n.header
}

// --- Helpers ---------------------------------------------------------------

// children returns the owned children of a node in source order. Absent
// children are included as nil.
func children(n Node) []Node {
	switch x := n.(type) {
	case *Unary:
		return []Node{x.operand}
	case *Binary:
		return []Node{x.left, x.right}
	case *Assignment:
		return []Node{x.value}
	case *Call:
		return []Node{x.args}
	case *FuncDef:
		return []Node{x.params, x.body}
	case *List:
		return []Node{x.head, x.tail}
	case *While:
		return []Node{x.cond, x.body}
	}
	return nil
}

func sexpr(op string, args ...Node) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(op)
	for _, a := range args {
		b.WriteString(" ")
		if absent(a) {
			b.WriteString("nil")
		} else {
			b.WriteString(a.String())
		}
	}
	b.WriteString(")")
	return b.String()
}
