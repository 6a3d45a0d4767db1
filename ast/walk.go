package ast

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Emitter receives a call for every unit of code a tree produces. Emitters
// are called in evaluation order and have no way to signal errors back to
// the walker; they either succeed or keep track of failures themselves.
type Emitter interface {
	EmitLeaf(Node)              // Number, SymbolRef or SymbolDecl
	EmitAssignment(*Assignment) // after the value has been emitted
	EmitCall(*Call)             // arguments are not emitted
	EmitFuncDef(*FuncDef)       // before the body is emitted
	EmitUnary(*Unary)           // after the operand has been emitted
	EmitBinary(*Binary)         // after left and right operand have been emitted
}

// IsLeaf is a predicate: does n produce code without its children being
// emitted first? Only number literals, symbol references and symbol
// declarations are leaves. For nil it returns false.
//
// A node of unknown kind is reported to the tracer and classified as
// non-leaf.
func IsLeaf(n Node) bool {
	if absent(n) {
		return false
	}
	switch n.Kind() {
	case NumberNode, SymbolRefNode, SymbolDeclNode:
		return true
	case UnaryNode, AssignmentNode, CallNode, FuncDefNode, WhileNode,
		ListNode, BinaryNode:
		return false
	}
	tracer().Errorf("error processing node of invalid kind: %d", int8(n.Kind()))
	return false
}

// walkStep is an entry of the walker's stack. A step either visits a node
// or, with post set, emits the node after its children are done.
type walkStep struct {
	node Node
	post bool
}

// Traverse walks a tree depth-first and calls e for every node, after all
// the node's operands have been emitted. The order of emission is
//
//     leaf            EmitLeaf
//     Assignment      value, then EmitAssignment
//     Call            EmitCall; arguments are not walked
//     FuncDef         EmitFuncDef, then body; parameters are not walked
//     While           nothing; loops are not supported
//     Unary           operand, then EmitUnary
//     Binary          left, right, then EmitBinary
//     List            head, then tail
//
// Traversing nil does nothing. Nodes of unknown kind are reported and skipped,
// the walk continues with their siblings.
func Traverse(root Node, e Emitter) {
	if absent(root) {
		return
	}
	stack := arraystack.New()
	stack.Push(walkStep{node: root})
	for !stack.Empty() {
		v, _ := stack.Pop()
		step := v.(walkStep)
		if step.post {
			emitOperator(step.node, e)
			continue
		}
		visit(step.node, e, stack)
	}
}

// visit emits a leaf or schedules the children of a non-leaf. Children are
// pushed in reverse, so they are popped in evaluation order.
func visit(n Node, e Emitter, stack *arraystack.Stack) {
	if absent(n) {
		return
	}
	if n.base().released {
		tracer().Errorf("cannot traverse released node of kind %s", n.Kind())
		return
	}
	if IsLeaf(n) {
		e.EmitLeaf(n)
		return
	}
	push := func(child Node, post bool) {
		if !absent(child) {
			stack.Push(walkStep{node: child, post: post})
		}
	}
	switch x := n.(type) {
	case *Assignment:
		push(x, true)
		push(x.value, false)
	case *Call:
		e.EmitCall(x) // TODO emit arguments once calling conventions are defined
	case *FuncDef:
		e.EmitFuncDef(x)
		push(x.body, false)
	case *While:
		tracer().Debugf("while-loop is not supported, skipped")
	case *Unary:
		push(x, true)
		push(x.operand, false)
	case *Binary:
		push(x, true)
		push(x.right, false)
		push(x.left, false)
	case *List:
		push(x.tail, false)
		push(x.head, false)
	}
}

func emitOperator(n Node, e Emitter) {
	switch x := n.(type) {
	case *Assignment:
		e.EmitAssignment(x)
	case *Unary:
		e.EmitUnary(x)
	case *Binary:
		e.EmitBinary(x)
	}
}
