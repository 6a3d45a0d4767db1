package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/npillmayer/astwalk/ast"
	"github.com/npillmayer/astwalk/codegen"
	"github.com/npillmayer/astwalk/frontend"
	"github.com/npillmayer/astwalk/symtab"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// options collects the command line flags relevant for compiling.
type options struct {
	tree        bool // display the AST
	fingerprint bool // print the AST's structural hash
	symbols     bool // list the symbol table
	exitCode    int  // exit code of the generated program
}

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	outname := flag.String("o", "out.s", "Output file for assembly text")
	interactive := flag.Bool("i", false, "Start an interactive session")
	opts := options{}
	flag.BoolVar(&opts.tree, "tree", false, "Display the AST")
	flag.BoolVar(&opts.fingerprint, "fingerprint", false, "Print a structural hash of the AST")
	flag.BoolVar(&opts.symbols, "symbols", false, "List the symbol table")
	flag.IntVar(&opts.exitCode, "exit", 0, "Exit code of the generated program")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	//
	if *interactive {
		pterm.Info.Println("Welcome to A.REPL") // colored welcome message
		tracer().Infof("Quit with <ctrl>D")    // inform user how to stop the CLI
		newIntp(opts).REPL()
		return
	}
	input, err := readInput(flag.Args())
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	if err := compileToFile(input, *outname, opts); err != nil {
		reportError(err, input)
		os.Exit(2)
	}
	pterm.Info.Println("Wrote " + *outname)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// readInput reads the program text from the file named by the first
// argument, or from stdin if there is none.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		tracer().Infof("Reading program from stdin")
		b, err := ioutil.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := ioutil.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("unable to read input file: %w", err)
	}
	return string(b), nil
}

func compileToFile(input string, outname string, opts options) (err error) {
	f, err := os.Create(outname)
	if err != nil {
		return fmt.Errorf("unable to open output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(f)
	if err = compile(input, w, opts); err != nil {
		return err
	}
	return w.Flush()
}

// compile parses input, generates a complete program for it and finally
// releases the AST.
func compile(input string, out io.Writer, opts options) error {
	scopes := symtab.NewScopeTree(nil)
	tree, err := frontend.Parse(input, scopes)
	if err != nil {
		return err
	}
	defer func() {
		n := ast.Destroy(tree)
		tracer().Debugf("released %d AST nodes", n)
	}()
	display(tree, scopes.Table(), opts)
	return codegen.Generate(tree, out, scopes.Table(), opts.exitCode)
}

func display(tree ast.Node, syms *symtab.Table, opts options) {
	if opts.tree {
		renderTree(tree, syms)
	}
	if opts.fingerprint {
		fp, err := ast.Fingerprint(tree)
		if err != nil {
			tracer().Errorf("cannot fingerprint AST: %v", err)
			return
		}
		pterm.Info.Println("AST fingerprint " + fp)
	}
	if opts.symbols {
		for _, line := range symbolListing(syms) {
			pterm.Println(line)
		}
	}
}

// symbolListing returns a line for every entry of syms, in order of
// definition.
func symbolListing(syms *symtab.Table) []string {
	var lines []string
	syms.Each(func(h symtab.Handle, e *symtab.Entry) {
		lines = append(lines, fmt.Sprintf("%-4s %-6s %s.%s", h, e.Typ, e.Scope(), e.Name()))
	})
	return lines
}

// reportError prints err. Syntax errors are followed by the part of input
// they refer to.
func reportError(err error, input string) {
	pterm.Error.Println(err.Error())
	var serr *frontend.SyntaxError
	if errors.As(err, &serr) {
		if x := serr.Excerpt(input); x != "" {
			pterm.Println("    " + x)
		}
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
