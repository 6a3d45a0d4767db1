package frontend

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/astwalk"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the language.
const (
	EOF astwalk.TokType = iota
	Number
	Ident
	Var
	Func
	While
	Plus
	Minus
	Star
	Slash
	Percent
	Tilde
	Bang
	Assign
	LParen
	RParen
	LBrace
	RBrace
	Comma
	Semicolon
)

var literals = map[string]astwalk.TokType{
	"+": Plus, "-": Minus, "*": Star, "/": Slash, "%": Percent,
	"~": Tilde, "!": Bang, "=": Assign,
	"(": LParen, ")": RParen, "{": LBrace, "}": RBrace,
	",": Comma, ";": Semicolon,
}

var keywords = map[string]astwalk.TokType{
	"var": Var, "func": Func, "while": While,
}

// TokenName returns a printable name for a token type.
func TokenName(t astwalk.TokType) string {
	switch t {
	case EOF:
		return "<eof>"
	case Number:
		return "number"
	case Ident:
		return "identifier"
	}
	for k, v := range keywords {
		if v == t {
			return k
		}
	}
	for k, v := range literals {
		if v == t {
			return "'" + k + "'"
		}
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// --- Tokens ----------------------------------------------------------------

// Token is a scanned token.
type Token struct {
	kind   astwalk.TokType
	lexeme string
	value  int64
	span   astwalk.Span
	Pos    astwalk.Position
}

func (t Token) TokType() astwalk.TokType {
	return t.kind
}

func (t Token) Lexeme() string {
	return t.lexeme
}

// Value returns the int64 value of number tokens and nil otherwise.
func (t Token) Value() interface{} {
	if t.kind == Number {
		return t.value
	}
	return nil
}

func (t Token) Span() astwalk.Span {
	return t.span
}

func (t Token) String() string {
	if t.kind == EOF {
		return TokenName(EOF)
	}
	return fmt.Sprintf("'%s'", t.lexeme)
}

// --- lexmachine adapter ----------------------------------------------------

var compiled struct {
	once  sync.Once
	lexer *lexmachine.Lexer
	err   error
}

// lexer returns the lexmachine lexer for the language. The DFA is compiled
// once, on first use.
func lexer() (*lexmachine.Lexer, error) {
	compiled.once.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`( |\t|\n|\r)+`), skip)
		lx.Add([]byte(`//[^\n]*`), skip)
		for lit, id := range literals {
			r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
			lx.Add([]byte(r), makeToken(id))
		}
		for kw, id := range keywords { // keywords take precedence over identifiers
			lx.Add([]byte(kw), makeToken(id))
		}
		lx.Add([]byte(`[0-9]+`), makeToken(Number))
		lx.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), makeToken(Ident))
		if err := lx.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			compiled.err = err
			return
		}
		compiled.lexer = lx
	})
	return compiled.lexer, compiled.err
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(id astwalk.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(id), string(m.Bytes), m), nil
	}
}

// Scanner produces tokens from an input string.
type Scanner struct {
	scanner *lexmachine.Scanner
	last    astwalk.Position
	end     uint64
}

// NewScanner creates a scanner for input.
func NewScanner(input string) (*Scanner, error) {
	lx, err := lexer()
	if err != nil {
		return nil, err
	}
	s, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{
		scanner: s,
		last:    astwalk.Position{Line: 1, Column: 1},
		end:     uint64(len(input)),
	}, nil
}

// NextToken returns the next token of the input. At the end of input it
// returns a token of type EOF. Input which does not form a token results in
// a *SyntaxError.
func (sc *Scanner) NextToken() (Token, error) {
	tok, err, eof := sc.scanner.Next()
	if err != nil {
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			pos := astwalk.Position{Line: ui.StartLine, Column: ui.StartColumn}
			span := astwalk.Span{uint64(ui.StartTC), uint64(ui.FailTC)}
			sc.scanner.TC = ui.FailTC
			return Token{}, &SyntaxError{Pos: pos, Span: span, Msg: fmt.Sprintf("invalid input %q", ui.Text)}
		}
		return Token{}, err
	}
	if eof {
		return Token{kind: EOF, span: astwalk.Span{sc.end, sc.end}, Pos: sc.last}, nil
	}
	lt := tok.(*lexmachine.Token)
	t := Token{
		kind:   astwalk.TokType(lt.Type),
		lexeme: string(lt.Lexeme),
		span:   astwalk.Span{uint64(lt.TC), uint64(lt.TC + len(lt.Lexeme))},
		Pos:    astwalk.Position{Line: lt.StartLine, Column: lt.StartColumn},
	}
	if t.kind == Number {
		v, err := strconv.ParseInt(t.lexeme, 10, 32) // immediates are 32 bit
		if err != nil {
			return t, &SyntaxError{Pos: t.Pos, Span: t.span, Msg: fmt.Sprintf("number out of range: %s", t.lexeme)}
		}
		t.value = v
	}
	sc.last = astwalk.Position{Line: lt.EndLine, Column: lt.EndColumn + 1}
	tracer().Debugf("token %s %s @%s", TokenName(t.kind), t, t.Pos)
	return t, nil
}

// Tokens scans the complete input. The last token is of type EOF.
func Tokens(input string) ([]Token, error) {
	sc, err := NewScanner(input)
	if err != nil {
		return nil, err
	}
	var toks []Token
	for {
		t, err := sc.NextToken()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.kind == EOF {
			return toks, nil
		}
	}
}

// --- Errors ----------------------------------------------------------------

// SyntaxError is an error in the source text, located at a position. Span
// covers the offending input; it is empty if the error is located at the end
// of input.
type SyntaxError struct {
	Pos  astwalk.Position
	Span astwalk.Span
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Pos, e.Msg)
}

// Excerpt returns the part of input covered by the error's span.
func (e *SyntaxError) Excerpt(input string) string {
	if e.Span.IsNull() || e.Span.To() > uint64(len(input)) || e.Span.From() > e.Span.To() {
		return ""
	}
	return input[e.Span.From():e.Span.To()]
}
