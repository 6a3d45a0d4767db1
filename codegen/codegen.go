package codegen

import (
	"fmt"
	"io"

	"github.com/npillmayer/astwalk/ast"
	"github.com/npillmayer/astwalk/symtab"
)

// Linux system call numbers (int $0x80).
const (
	sysExit = 0x1
)

// Generator is an emitter for 32-bit x86 assembly. The first write error is
// recorded and stops all further output; check it with Err.
type Generator struct {
	out     io.Writer
	syms    *symtab.Table
	vars    []symtab.Handle        // variables in order of appearance
	seen    map[symtab.Handle]bool // variables
	defined map[symtab.Handle]bool // functions with a definition
	funcs   []*ast.FuncDef         // definitions waiting for Functions
	err     error
}

var _ ast.Emitter = (*Generator)(nil)

// NewGenerator creates a generator writing to out. Symbol handles found in
// the tree are resolved with syms.
func NewGenerator(out io.Writer, syms *symtab.Table) *Generator {
	if syms == nil {
		syms = symtab.NewTable()
	}
	return &Generator{
		out:     out,
		syms:    syms,
		seen:    make(map[symtab.Handle]bool),
		defined: make(map[symtab.Handle]bool),
	}
}

// Generate writes a complete program for tree: prologue, the code for tree
// and an epilogue exiting with exitCode.
func Generate(tree ast.Node, out io.Writer, syms *symtab.Table, exitCode int) error {
	gen := NewGenerator(out, syms)
	gen.Prologue()
	gen.Program(tree)
	gen.Epilogue(exitCode)
	return gen.Err()
}

// Err returns the first error which occured while writing output.
func (g *Generator) Err() error {
	return g.err
}

// Prologue writes the program entry boilerplate.
func (g *Generator) Prologue() {
	g.printf(".text\n")
	g.directive(".global _start")
	g.blank()
	g.label("_start")
}

// Program writes the code for a statement list. Function definitions at the
// top level are set aside, to be written by Functions outside of the main
// code path. All other statements are walked in order.
func (g *Generator) Program(tree ast.Node) {
	for stmt := tree; stmt != nil; {
		l, ok := stmt.(*ast.List)
		if !ok {
			g.statement(stmt)
			return
		}
		if l.Head() != nil {
			g.statement(l.Head())
		}
		stmt = l.Tail()
	}
}

func (g *Generator) statement(stmt ast.Node) {
	if fd, ok := stmt.(*ast.FuncDef); ok {
		tracer().Debugf("deferring function %s", g.Label(fd.Symbol()))
		g.funcs = append(g.funcs, fd)
		return
	}
	ast.Traverse(stmt, g)
}

// Functions writes the function definitions set aside by Program. Every
// function returns to its caller after the last statement of its body.
func (g *Generator) Functions() {
	for _, fd := range g.funcs {
		ast.Traverse(fd, g)
		g.instr("movl", "%ebp", "%esp")
		g.instr("popl", "%ebp")
		g.instr("ret")
	}
	g.funcs = nil
}

// Epilogue writes the exit system call, the deferred functions and the data
// section for all variables seen.
func (g *Generator) Epilogue(exitCode int) {
	g.instr("movl", fmt.Sprintf("$%d", exitCode), "%ebx")
	g.instr("movl", fmt.Sprintf("$%d", sysExit), "%eax")
	g.instr("int", "$0x80")
	g.Functions()
	if len(g.vars) == 0 {
		return
	}
	g.blank()
	g.directive(".data")
	for _, h := range g.vars {
		if g.defined[h] {
			tracer().Errorf("function %s used as a variable", g.Label(h))
			continue
		}
		g.label(g.Label(h))
		g.directive(".long 0")
	}
}

// Label returns the assembler label for a symbol. Symbols defined outside of
// the global scope are qualified by their scope's name.
func (g *Generator) Label(h symtab.Handle) string {
	e := g.syms.Entry(h)
	if e == nil {
		return fmt.Sprintf("_sym%d", uint32(h))
	}
	if e.Scope() == "" || e.Scope() == symtab.GlobalScopeName {
		return e.Name()
	}
	return e.Scope() + "." + e.Name()
}

// --- ast.Emitter -----------------------------------------------------------

// EmitLeaf pushes a literal or the value of a variable. Declarations
// produce no code; they reserve storage in the data section.
func (g *Generator) EmitLeaf(n ast.Node) {
	switch x := n.(type) {
	case *ast.Number:
		g.instr("pushl", fmt.Sprintf("$%d", x.Value()))
	case *ast.SymbolRef:
		g.variable(x.Symbol())
		g.instr("pushl", g.Label(x.Symbol()))
	case *ast.SymbolDecl:
		g.variable(x.Symbol())
	default:
		tracer().Errorf("cannot generate code for leaf %v", n)
	}
}

// EmitAssignment pops the value and stores it.
func (g *Generator) EmitAssignment(n *ast.Assignment) {
	g.variable(n.Target())
	g.instr("popl", "%eax")
	g.instr("movl", "%eax", g.Label(n.Target()))
}

// EmitCall calls a function and pushes its result (%eax).
func (g *Generator) EmitCall(n *ast.Call) {
	g.instr("call", g.Label(n.Callee()))
	g.instr("pushl", "%eax")
}

// EmitFuncDef writes the function's label and frame setup. Program and
// Functions complete the function with a return sequence.
func (g *Generator) EmitFuncDef(n *ast.FuncDef) {
	g.defined[n.Symbol()] = true
	label := g.Label(n.Symbol())
	g.blank()
	g.directive(fmt.Sprintf(".type %s, @function", label))
	g.label(label)
	g.instr("pushl", "%ebp")
	g.instr("movl", "%esp", "%ebp")
}

// EmitUnary applies a unary operator to the top of the stack.
func (g *Generator) EmitUnary(n *ast.Unary) {
	g.instr("popl", "%eax")
	switch n.Op() {
	case ast.Negate:
		g.instr("negl", "%eax")
	case ast.BitNot:
		g.instr("notl", "%eax")
	case ast.LogicalNot:
		g.instr("testl", "%eax", "%eax")
		g.instr("sete", "%al")
		g.instr("movzbl", "%al", "%eax")
	default:
		tracer().Errorf("unknown unary operator %v", n.Op())
	}
	g.instr("pushl", "%eax")
}

// EmitBinary applies a binary operator to the two topmost stack values.
// The right operand is on top.
func (g *Generator) EmitBinary(n *ast.Binary) {
	g.instr("popl", "%ebx")
	g.instr("popl", "%eax")
	switch n.Op() {
	case ast.Add:
		g.instr("addl", "%ebx", "%eax")
	case ast.Sub:
		g.instr("subl", "%ebx", "%eax")
	case ast.Mul:
		g.instr("imull", "%ebx", "%eax")
	case ast.Div:
		g.instr("cltd")
		g.instr("idivl", "%ebx")
	case ast.Mod:
		g.instr("cltd")
		g.instr("idivl", "%ebx")
		g.instr("movl", "%edx", "%eax")
	default:
		tracer().Errorf("unknown binary operator %v", n.Op())
	}
	g.instr("pushl", "%eax")
}

// --- Helpers ---------------------------------------------------------------

// variable records h as needing storage in the data section.
func (g *Generator) variable(h symtab.Handle) {
	if !g.seen[h] {
		g.seen[h] = true
		g.vars = append(g.vars, h)
	}
}

func (g *Generator) instr(mnemonic string, operands ...string) {
	switch len(operands) {
	case 0:
		g.printf("\t%s\n", mnemonic)
	case 1:
		g.printf("\t%s\t%s\n", mnemonic, operands[0])
	default:
		g.printf("\t%s\t%s, %s\n", mnemonic, operands[0], operands[1])
	}
}

func (g *Generator) directive(d string) {
	g.printf("\t%s\n", d)
}

func (g *Generator) label(l string) {
	g.printf("%s:\n", l)
}

func (g *Generator) blank() {
	g.printf("\n")
}

func (g *Generator) printf(format string, args ...interface{}) {
	if g.err != nil {
		return
	}
	if _, err := fmt.Fprintf(g.out, format, args...); err != nil {
		tracer().Errorf("cannot write output: %v", err)
		g.err = err
	}
}
