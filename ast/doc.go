/*
Package ast implements the abstract syntax tree of the compiler: its node
shapes, their release and the tree walker driving code generation.

Node Model

Nodes form a closed set of variants, one Go type per construct. Every variant
carries exactly the children and payload it needs:

    Number, SymbolRef, SymbolDecl      leaves
    Unary                              one operand
    Binary                             left and right operand
    Assignment                         value (target is a symbol handle)
    Call                               argument list, may be nil
    FuncDef                            parameter list and body
    List                               head and tail of a statement sequence
    While                              condition and body

Children are owned: a subtree belongs to exactly one parent. Symbols are not
owned; nodes refer to them by symtab.Handle only.

Tree Walker

Traverse visits a tree exactly once, bottom-up, and calls an Emitter for
every node whose code has to be generated. Destroy releases a tree. Both use
an explicit stack, so long statement chains do not exhaust the goroutine
stack.

    tree := ast.NewAssignment(x, ast.NewBinary(ast.Add, ast.NewNumber(2), ast.NewNumber(3)))
    ast.Traverse(tree, emitter)  // leaf(2), leaf(3), binary(+), assignment(x)
    ast.Destroy(tree)

Anomalies found during walking (nodes of unknown kind) indicate a bug in tree
construction. They are reported to the tracer with key 'astwalk.ast' and do
not stop the walk. Setting configuration flag 'panic-on-corrupt-ast' will
make Destroy panic instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'astwalk.ast'.
func tracer() tracing.Trace {
	return tracing.Select("astwalk.ast")
}
