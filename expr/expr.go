// Package expr compiles a restricted arithmetic grammar into a small stack
// program and evaluates it over batches of x samples.
//
// The grammar accepts float literals, the variable x, the operators
// + - * / ** with the usual precedence and parentheses, and a fixed whitelist
// of functions. Anything else is rejected at compile time; no general-purpose
// interpreter ever sees the source text. Compilation happens once per
// expression, evaluation runs vectorized over the whole sample batch.
package expr

import (
	"fmt"
	"strconv"
	"strings"
)

type (
	// Function is a compiled expression. It is immutable after Compile and
	// safe to evaluate any number of times.
	Function struct {
		src   string
		code  []instr
		depth int // maximum stack depth the program reaches
	}

	instr struct {
		op  opcode
		val float64 // operand of opConst
		fn  int     // operand of opCall, index into builtins
	}

	opcode int

	// ParseError reports malformed expression syntax. The position is a byte
	// offset into the source text.
	ParseError struct {
		Pos int
		Msg string
	}

	// DisallowedTokenError reports an identifier outside the function
	// whitelist. This is the sandboxing boundary: rejecting unknown names at
	// parse time guarantees only whitelisted grammar productions are ever
	// evaluated.
	DisallowedTokenError struct {
		Pos   int
		Token string
	}
)

const (
	opConst opcode = iota
	opX
	opNeg
	opAdd
	opSub
	opMul
	opDiv
	opPow
	opCall
)

// maxCode caps the compiled program length. The grammar has no loops or
// recursion, so this bounds the evaluation steps per sample.
const maxCode = 256

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Msg)
}

func (e *DisallowedTokenError) Error() string {
	return fmt.Sprintf("disallowed token %q at offset %d", e.Token, e.Pos)
}

// Compile parses src and returns the compiled function. The error is either
// a *ParseError or a *DisallowedTokenError; on error no part of the
// expression is evaluated.
func Compile(src string) (*Function, error) {
	p := parser{src: src, f: &Function{src: src}}
	p.next()
	if err := p.parseSum(); err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		return nil, &ParseError{Pos: p.tok.pos, Msg: fmt.Sprintf("unexpected %q", p.tok.text)}
	}
	return p.f, nil
}

// String returns the source text the function was compiled from.
func (f *Function) String() string { return f.src }

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenPow
	tokenLParen
	tokenRParen
	tokenBad
)

type token struct {
	kind tokenKind
	pos  int
	text string
	val  float64 // tokenNumber only
}

type parser struct {
	src   string
	pos   int
	tok   token
	f     *Function
	stack int // current stack depth of the emitted program
}

func (p *parser) next() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
	start := p.pos
	if p.pos >= len(p.src) {
		p.tok = token{kind: tokenEOF, pos: start}
		return
	}
	c := p.src[p.pos]
	switch {
	case c >= '0' && c <= '9' || c == '.':
		for p.pos < len(p.src) && (p.src[p.pos] >= '0' && p.src[p.pos] <= '9' || p.src[p.pos] == '.') {
			p.pos++
		}
		// exponent part, e.g. 1.5e-3
		if p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
			q := p.pos + 1
			if q < len(p.src) && (p.src[q] == '+' || p.src[q] == '-') {
				q++
			}
			if q < len(p.src) && p.src[q] >= '0' && p.src[q] <= '9' {
				for q < len(p.src) && p.src[q] >= '0' && p.src[q] <= '9' {
					q++
				}
				p.pos = q
			}
		}
		text := p.src[start:p.pos]
		val, err := strconv.ParseFloat(text, 64)
		if err != nil {
			p.tok = token{kind: tokenBad, pos: start, text: text}
			return
		}
		p.tok = token{kind: tokenNumber, pos: start, text: text, val: val}
	case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
		for p.pos < len(p.src) && (isIdentChar(p.src[p.pos])) {
			p.pos++
		}
		p.tok = token{kind: tokenIdent, pos: start, text: p.src[start:p.pos]}
	case c == '*':
		if p.pos+1 < len(p.src) && p.src[p.pos+1] == '*' {
			p.pos += 2
			p.tok = token{kind: tokenPow, pos: start, text: "**"}
			return
		}
		p.pos++
		p.tok = token{kind: tokenStar, pos: start, text: "*"}
	case c == '+':
		p.pos++
		p.tok = token{kind: tokenPlus, pos: start, text: "+"}
	case c == '-':
		p.pos++
		p.tok = token{kind: tokenMinus, pos: start, text: "-"}
	case c == '/':
		p.pos++
		p.tok = token{kind: tokenSlash, pos: start, text: "/"}
	case c == '(':
		p.pos++
		p.tok = token{kind: tokenLParen, pos: start, text: "("}
	case c == ')':
		p.pos++
		p.tok = token{kind: tokenRParen, pos: start, text: ")"}
	default:
		p.pos++
		p.tok = token{kind: tokenBad, pos: start, text: string(c)}
	}
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func (p *parser) emit(in instr) error {
	if len(p.f.code) >= maxCode {
		return &ParseError{Pos: p.tok.pos, Msg: "expression too long"}
	}
	p.f.code = append(p.f.code, in)
	switch in.op {
	case opConst, opX:
		p.stack++
		if p.stack > p.f.depth {
			p.f.depth = p.stack
		}
	case opAdd, opSub, opMul, opDiv, opPow:
		p.stack--
	}
	return nil
}

// sum := product (('+'|'-') product)*
func (p *parser) parseSum() error {
	if err := p.parseProduct(); err != nil {
		return err
	}
	for p.tok.kind == tokenPlus || p.tok.kind == tokenMinus {
		op := opAdd
		if p.tok.kind == tokenMinus {
			op = opSub
		}
		p.next()
		if err := p.parseProduct(); err != nil {
			return err
		}
		if err := p.emit(instr{op: op}); err != nil {
			return err
		}
	}
	return nil
}

// product := unary (('*'|'/') unary)*
func (p *parser) parseProduct() error {
	if err := p.parseUnary(); err != nil {
		return err
	}
	for p.tok.kind == tokenStar || p.tok.kind == tokenSlash {
		op := opMul
		if p.tok.kind == tokenSlash {
			op = opDiv
		}
		p.next()
		if err := p.parseUnary(); err != nil {
			return err
		}
		if err := p.emit(instr{op: op}); err != nil {
			return err
		}
	}
	return nil
}

// unary := '-' unary | power
//
// ** binds tighter than unary minus, so -x**2 parses as -(x**2).
func (p *parser) parseUnary() error {
	if p.tok.kind == tokenMinus {
		p.next()
		if err := p.parseUnary(); err != nil {
			return err
		}
		return p.emit(instr{op: opNeg})
	}
	return p.parsePower()
}

// power := atom ['**' unary]
//
// Right-associative, and the exponent may carry a sign: 2**-3 is valid.
func (p *parser) parsePower() error {
	if err := p.parseAtom(); err != nil {
		return err
	}
	if p.tok.kind == tokenPow {
		p.next()
		if err := p.parseUnary(); err != nil {
			return err
		}
		return p.emit(instr{op: opPow})
	}
	return nil
}

// atom := number | 'x' | ident '(' sum ')' | '(' sum ')'
func (p *parser) parseAtom() error {
	switch p.tok.kind {
	case tokenNumber:
		in := instr{op: opConst, val: p.tok.val}
		p.next()
		return p.emit(in)
	case tokenIdent:
		name := p.tok.text
		pos := p.tok.pos
		p.next()
		if name == "x" {
			return p.emit(instr{op: opX})
		}
		fn := builtinIndex(name)
		if fn < 0 {
			return &DisallowedTokenError{Pos: pos, Token: name}
		}
		if p.tok.kind != tokenLParen {
			return &ParseError{Pos: p.tok.pos, Msg: fmt.Sprintf("expected ( after %s", name)}
		}
		p.next()
		if err := p.parseSum(); err != nil {
			return err
		}
		if p.tok.kind != tokenRParen {
			return &ParseError{Pos: p.tok.pos, Msg: "expected )"}
		}
		p.next()
		return p.emit(instr{op: opCall, fn: fn})
	case tokenLParen:
		p.next()
		if err := p.parseSum(); err != nil {
			return err
		}
		if p.tok.kind != tokenRParen {
			return &ParseError{Pos: p.tok.pos, Msg: "expected )"}
		}
		p.next()
		return nil
	case tokenEOF:
		return &ParseError{Pos: p.tok.pos, Msg: "unexpected end of expression"}
	default:
		return &ParseError{Pos: p.tok.pos, Msg: fmt.Sprintf("unexpected %q", p.tok.text)}
	}
}

// Funcs returns the names of the whitelisted functions, for display purposes.
func Funcs() string {
	names := make([]string, len(builtins))
	for i, b := range builtins {
		names[i] = b.name
	}
	return strings.Join(names, ", ")
}
