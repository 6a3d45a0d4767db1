package main

import (
	"fmt"

	"github.com/npillmayer/astwalk/ast"
	"github.com/npillmayer/astwalk/symtab"
	"github.com/pterm/pterm"
)

// renderTree displays an AST as a tree on the terminal.
func renderTree(tree ast.Node, syms *symtab.Table) {
	if tree == nil {
		pterm.Info.Println("empty program")
		return
	}
	ll := leveledNode(tree, syms, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d", len(ll))
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

// leveledNode appends n and its children to ll, pre-order. Statement lists are
// flattened into a single level.
func leveledNode(n ast.Node, syms *symtab.Table, ll pterm.LeveledList, level int) pterm.LeveledList {
	item := func(text string, lvl int) {
		ll = append(ll, pterm.LeveledListItem{Level: lvl, Text: text})
	}
	if n == nil {
		item("nil", level)
		return ll
	}
	name := func(h symtab.Handle) string {
		if s := syms.Name(h); s != "" {
			return s
		}
		return h.String()
	}
	switch x := n.(type) {
	case *ast.Number:
		item(fmt.Sprintf("%d", x.Value()), level)
	case *ast.SymbolRef:
		item(name(x.Symbol()), level)
	case *ast.SymbolDecl:
		item("var "+name(x.Symbol()), level)
	case *ast.Unary:
		item(x.Op().String(), level)
		ll = leveledNode(x.Operand(), syms, ll, level+1)
	case *ast.Binary:
		item(x.Op().String(), level)
		ll = leveledNode(x.Left(), syms, ll, level+1)
		ll = leveledNode(x.Right(), syms, ll, level+1)
	case *ast.Assignment:
		item(name(x.Target())+" =", level)
		ll = leveledNode(x.Value(), syms, ll, level+1)
	case *ast.Call:
		item("call "+name(x.Callee()), level)
		if x.Args() != nil {
			ll = leveledNode(x.Args(), syms, ll, level+1)
		}
	case *ast.FuncDef:
		item("func "+name(x.Symbol()), level)
		if x.Params() != nil {
			ll = leveledNode(x.Params(), syms, ll, level+1)
		}
		ll = leveledNode(x.Body(), syms, ll, level+1)
	case *ast.While:
		item("while", level)
		ll = leveledNode(x.Cond(), syms, ll, level+1)
		ll = leveledNode(x.Body(), syms, ll, level+1)
	case *ast.List:
		item("list", level)
		var l ast.Node = x
		for l != nil {
			cell, ok := l.(*ast.List)
			if !ok {
				ll = leveledNode(l, syms, ll, level+1)
				break
			}
			ll = leveledNode(cell.Head(), syms, ll, level+1)
			l = cell.Tail()
		}
	default:
		item(n.String(), level)
	}
	return ll
}
