package ast

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/gconf"
)

// Destroy releases a tree. Every node reachable from tree through owned
// children is released exactly once, children before their parent. Symbols
// the nodes refer to are not touched. Destroying nil or an already released
// tree does nothing.
//
// Returns the number of nodes released.
func Destroy(tree Node) int {
	return DestroyWith(tree, nil)
}

// DestroyWith is like Destroy and additionally calls released for every node,
// in the order the nodes are released:
//
//     Binary, List, While    right subtree, left subtree, node
//     Unary                  operand, node
//     Assignment             value, node
//     Call                   arguments, node
//     FuncDef                parameters, body, node
//     leaves                 node
//
// A node of unknown kind is reported and released without descending into
// it. Unwinding continues with its siblings, unless configuration flag
// 'panic-on-corrupt-ast' is set.
func DestroyWith(tree Node, released func(Node)) int {
	if absent(tree) {
		return 0
	}
	count := 0
	stack := arraystack.New()
	stack.Push(walkStep{node: tree})
	for !stack.Empty() {
		v, _ := stack.Pop()
		step := v.(walkStep)
		n := step.node
		if absent(n) || n.base().released {
			continue
		}
		if step.post {
			release(n)
			count++
			if released != nil {
				released(n)
			}
			continue
		}
		stack.Push(walkStep{node: n, post: true})
		push := func(child Node) {
			if !absent(child) {
				stack.Push(walkStep{node: child})
			}
		}
		switch x := n.(type) { // children pushed in reverse release order
		case *Binary:
			push(x.left)
			push(x.right)
		case *List:
			push(x.head)
			push(x.tail)
		case *While:
			push(x.cond)
			push(x.body)
		case *Unary:
			push(x.operand)
		case *Assignment:
			push(x.value)
		case *Call:
			push(x.args)
		case *FuncDef:
			push(x.body)
			push(x.params)
		case *Number, *SymbolRef, *SymbolDecl:
			// no children
		default:
			corrupt(n)
		}
	}
	return count
}

// release detaches the children of n and marks it as released.
func release(n Node) {
	switch x := n.(type) {
	case *Binary:
		x.left, x.right = nil, nil
	case *List:
		x.head, x.tail = nil, nil
	case *While:
		x.cond, x.body = nil, nil
	case *Unary:
		x.operand = nil
	case *Assignment:
		x.value = nil
	case *Call:
		x.args = nil
	case *FuncDef:
		x.params, x.body = nil, nil
	}
	n.base().released = true
}

func corrupt(n Node) {
	msg := fmt.Sprintf("error freeing node of invalid kind %d", int8(n.Kind()))
	tracer().Errorf("%s", msg)
	if gconf.GetBool("panic-on-corrupt-ast") {
		panic(`AST is corrupt.

Configuration flag panic-on-corrupt-ast is set to true. It is aimed at helping
to debug tree construction and do a post-mortem of how a node of unknown kind
made it into the tree. If you did not expect this to panic, please unset
panic-on-corrupt-ast to its default (false).

` + msg)
	}
}

// Released is a predicate: has n been released by Destroy? For nil it
// returns false.
func Released(n Node) bool {
	return !absent(n) && n.base().released
}

// Count returns the number of live nodes reachable from tree through owned
// children, including parameter and argument lists.
func Count(tree Node) int {
	count := 0
	stack := arraystack.New()
	if !absent(tree) {
		stack.Push(tree)
	}
	for !stack.Empty() {
		v, _ := stack.Pop()
		n := v.(Node)
		if n.base().released {
			continue
		}
		count++
		for _, ch := range children(n) {
			if !absent(ch) {
				stack.Push(ch)
			}
		}
	}
	return count
}
