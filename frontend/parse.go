package frontend

import (
	"fmt"

	"github.com/npillmayer/astwalk"
	"github.com/npillmayer/astwalk/ast"
	"github.com/npillmayer/astwalk/symtab"
)

// Parser is a recursive descent parser for the language. Create one with
// NewParser; a parser is good for one input.
type Parser struct {
	toks      []Token
	pos       int
	scopes    *symtab.ScopeTree
	discarded int // nodes of partial trees released after errors
}

// NewParser creates a parser for input. Symbols will be entered into scopes.
// If scopes is nil, a new scope tree will be created.
func NewParser(input string, scopes *symtab.ScopeTree) (*Parser, error) {
	if scopes == nil {
		scopes = symtab.NewScopeTree(nil)
	}
	toks, err := Tokens(input)
	if err != nil {
		return nil, err
	}
	return &Parser{toks: toks, scopes: scopes}, nil
}

// Parse is a convenience function, parsing input and returning the AST for
// it. An empty program results in a nil tree.
func Parse(input string, scopes *symtab.ScopeTree) (ast.Node, error) {
	p, err := NewParser(input, scopes)
	if err != nil {
		return nil, err
	}
	return p.Program()
}

// Scopes returns the scope tree the parser enters symbols into.
func (p *Parser) Scopes() *symtab.ScopeTree {
	return p.scopes
}

// Program parses a sequence of statements up to the end of input.
func (p *Parser) Program() (ast.Node, error) {
	stmts, err := p.statements(Token{}, EOF)
	if err != nil {
		return nil, err
	}
	tree := ast.ListOf(stmts...)
	tracer().Debugf("AST = %v", tree)
	return tree, nil
}

// statements parses statements up to (not including) a token of type end.
// open is the token opening the block, if any.
func (p *Parser) statements(open Token, end astwalk.TokType) ([]ast.Node, error) {
	var stmts []ast.Node
	for p.peek().kind != end {
		if p.peek().kind == EOF {
			err := p.rangeError(open, p.peek(), "expected %s", TokenName(end))
			return nil, p.discard(err, stmts...)
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, p.discard(err, stmts...)
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) statement() (ast.Node, error) {
	switch p.peek().kind {
	case Var:
		return p.declaration()
	case Func:
		return p.function()
	case While:
		return p.loop()
	case Ident:
		if p.peekAt(1).kind == Assign {
			return p.assignment()
		}
	}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Semicolon); err != nil {
		return nil, p.discard(err, e)
	}
	return e, nil
}

// var x;
func (p *Parser) declaration() (ast.Node, error) {
	p.next()
	name, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Semicolon); err != nil {
		return nil, err
	}
	return ast.NewSymbolDecl(p.declare(name.lexeme, symtab.VariableType)), nil
}

// x = expr;
func (p *Parser) assignment() (ast.Node, error) {
	name := p.next()
	p.next()
	target := p.resolve(name.lexeme, symtab.VariableType)
	value, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Semicolon); err != nil {
		return nil, p.discard(err, value)
	}
	return ast.NewAssignment(target, value), nil
}

// func f(a, b) { … }
func (p *Parser) function() (ast.Node, error) {
	p.next()
	name, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}
	fn := p.declare(name.lexeme, symtab.FunctionType)
	if _, err := p.expect(LParen); err != nil {
		return nil, err
	}
	p.scopes.PushNewScope(name.lexeme)
	defer p.scopes.PopScope()
	var params []ast.Node
	for p.peek().kind != RParen {
		if len(params) > 0 {
			if _, err := p.expect(Comma); err != nil {
				return nil, p.discard(err, params...)
			}
		}
		param, err := p.expect(Ident)
		if err != nil {
			return nil, p.discard(err, params...)
		}
		params = append(params, ast.NewSymbolDecl(p.declare(param.lexeme, symtab.ParameterType)))
	}
	p.next()
	lbrace, err := p.expect(LBrace)
	if err != nil {
		return nil, p.discard(err, params...)
	}
	body, err := p.statements(lbrace, RBrace)
	if err != nil {
		return nil, p.discard(err, params...)
	}
	p.next()
	return ast.NewFuncDef(fn, ast.ListOf(params...), ast.ListOf(body...)), nil
}

// while (cond) { … }
func (p *Parser) loop() (ast.Node, error) {
	p.next()
	if _, err := p.expect(LParen); err != nil {
		return nil, err
	}
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RParen); err != nil {
		return nil, p.discard(err, cond)
	}
	lbrace, err := p.expect(LBrace)
	if err != nil {
		return nil, p.discard(err, cond)
	}
	body, err := p.statements(lbrace, RBrace)
	if err != nil {
		return nil, p.discard(err, cond)
	}
	p.next()
	return ast.NewWhile(cond, ast.ListOf(body...)), nil
}

// --- Expressions -----------------------------------------------------------

var binaryOps = map[astwalk.TokType]ast.BinaryOp{
	Plus: ast.Add, Minus: ast.Sub, Star: ast.Mul, Slash: ast.Div, Percent: ast.Mod,
}

var unaryOps = map[astwalk.TokType]ast.UnaryOp{
	Minus: ast.Negate, Tilde: ast.BitNot, Bang: ast.LogicalNot,
}

// expr := term { ("+"|"-") term }
func (p *Parser) expr() (ast.Node, error) {
	return p.binary(p.term, Plus, Minus)
}

// term := unary { ("*"|"/"|"%") unary }
func (p *Parser) term() (ast.Node, error) {
	return p.binary(p.unary, Star, Slash, Percent)
}

// binary parses a left-associative chain of operands, separated by one of ops.
func (p *Parser) binary(operand func() (ast.Node, error), ops ...astwalk.TokType) (ast.Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.peekIs(ops...) {
		op := binaryOps[p.next().kind]
		right, err := operand()
		if err != nil {
			return nil, p.discard(err, left)
		}
		left = ast.NewBinary(op, left, right)
	}
	return left, nil
}

// unary := ("-"|"~"|"!") unary | primary
func (p *Parser) unary() (ast.Node, error) {
	if !p.peekIs(Minus, Tilde, Bang) {
		return p.primary()
	}
	op := unaryOps[p.next().kind]
	operand, err := p.unary()
	if err != nil {
		return nil, err
	}
	return ast.NewUnary(op, operand), nil
}

// primary := number | ident | ident "(" [ expr { "," expr } ] ")" | "(" expr ")"
func (p *Parser) primary() (ast.Node, error) {
	t := p.next()
	switch t.kind {
	case Number:
		return ast.NewNumber(t.value), nil
	case Ident:
		if p.peek().kind != LParen {
			return ast.NewSymbolRef(p.resolve(t.lexeme, symtab.VariableType)), nil
		}
		p.next()
		callee := p.resolve(t.lexeme, symtab.FunctionType)
		var args []ast.Node
		for p.peek().kind != RParen {
			if len(args) > 0 {
				if _, err := p.expect(Comma); err != nil {
					return nil, p.discard(err, args...)
				}
			}
			arg, err := p.expr()
			if err != nil {
				return nil, p.discard(err, args...)
			}
			args = append(args, arg)
		}
		p.next()
		return ast.NewCall(callee, ast.ListOf(args...)), nil
	case LParen:
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != RParen {
			err = p.rangeError(t, p.peek(), "expected %s, found %s", TokenName(RParen), p.peek())
			return nil, p.discard(err, e)
		}
		p.next()
		return e, nil
	}
	return nil, p.errorf(t, "unexpected %s", t)
}

// --- Symbols ---------------------------------------------------------------

// declare defines a symbol in the current scope. A symbol of the same type
// already defined in this scope is re-used.
func (p *Parser) declare(name string, typ symtab.Type) symtab.Handle {
	sc := p.scopes.Current()
	if h, found := sc.Resolve(name); found == sc {
		if e := sc.Table().Entry(h); e.Typ == typ {
			return h
		}
	}
	h, _ := sc.Define(name)
	sc.Table().Entry(h).WithType(typ)
	return h
}

// resolve finds a symbol. Unknown symbols are implicitly defined in the
// global scope.
func (p *Parser) resolve(name string, typ symtab.Type) symtab.Handle {
	if h, _ := p.scopes.Current().Resolve(name); h != symtab.NoSymbol {
		return h
	}
	tracer().Infof("implicit declaration of %s %s", typ, name)
	h, _ := p.scopes.Globals().Define(name)
	p.scopes.Table().Entry(h).WithType(typ)
	return h
}

// --- Token handling --------------------------------------------------------

func (p *Parser) peek() Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(i int) Token {
	if p.pos+i >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.pos+i]
}

func (p *Parser) peekIs(kinds ...astwalk.TokType) bool {
	k := p.peek().kind
	for _, kind := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (p *Parser) next() Token {
	t := p.peek()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) expect(kind astwalk.TokType) (Token, error) {
	t := p.peek()
	if t.kind != kind {
		return t, p.errorf(t, "expected %s, found %s", TokenName(kind), t)
	}
	return p.next(), nil
}

func (p *Parser) errorf(t Token, format string, args ...interface{}) error {
	return &SyntaxError{Pos: t.Pos, Span: t.span, Msg: fmt.Sprintf(format, args...)}
}

// rangeError is a syntax error at token at, covering the input from token
// from up to at. If from is the zero token, it is the same as errorf.
func (p *Parser) rangeError(from, at Token, format string, args ...interface{}) error {
	return &SyntaxError{
		Pos:  at.Pos,
		Span: from.span.Extend(at.span),
		Msg:  fmt.Sprintf(format, args...),
	}
}

// discard releases partial trees after a syntax error and passes err on.
func (p *Parser) discard(err error, partial ...ast.Node) error {
	for _, n := range partial {
		p.discarded += ast.Destroy(n)
	}
	if len(partial) > 0 {
		tracer().Debugf("discarded partial trees, %d nodes released so far", p.discarded)
	}
	return err
}
