package main

import (
	"bytes"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/astwalk/ast"
	"github.com/npillmayer/astwalk/codegen"
	"github.com/npillmayer/astwalk/frontend"
	"github.com/npillmayer/astwalk/symtab"
	"github.com/pterm/pterm"
)

// Intp is our interactive session object. Symbols persist from line to line.
type Intp struct {
	opts   options
	scopes *symtab.ScopeTree
	repl   *readline.Instance
}

func newIntp(opts options) *Intp {
	return &Intp{
		opts:   opts,
		scopes: symtab.NewScopeTree(nil),
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	repl, err := readline.New("astc> ")
	if err != nil {
		tracer().Errorf("%s", err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		code, err := intp.Eval(line)
		if err != nil {
			reportError(err, line)
			continue
		}
		pterm.Println(code)
	}
	println("Good bye!")
}

// Eval parses a line of input and returns the code generated for it.
// There is no prologue or epilogue; functions defined by the line follow
// the code of its other statements.
func (intp *Intp) Eval(line string) (string, error) {
	tree, err := frontend.Parse(line, intp.scopes)
	if err != nil {
		return "", err
	}
	defer ast.Destroy(tree)
	display(tree, intp.scopes.Table(), intp.opts)
	var buf bytes.Buffer
	gen := codegen.NewGenerator(&buf, intp.scopes.Table())
	gen.Program(tree)
	gen.Functions()
	return buf.String(), gen.Err()
}
