package snailfish

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrEmptyInput is wrapped by a ParseError for empty input text.
var ErrEmptyInput = errors.New("empty input")

// ParseError is returned if a text does not conform to the grammar for
// snailfish numbers or if a numeric literal does not fit into an int64.
// No partial tree is ever returned together with a ParseError.
type ParseError struct {
	Text string // input text
	Pos  int    // byte offset where the error was detected
	Msg  string
	Err  error // underlying cause, may be nil
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse snailfish number %q at position %d: %s", e.Text, e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts a text of the form "[[1,2],3]" into a tree of nodes.
// The complete text must match the grammar; white space is not allowed.
func Parse(s string) (Node, error) {
	p := &parser{text: s}
	if len(s) == 0 {
		return nil, p.errorf(ErrEmptyInput, "empty input")
	}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.text) {
		return nil, p.errorf(nil, "unexpected trailing character %q", p.text[p.pos])
	}
	tracer().Debugf("parsed snailfish number %s", n)
	return n, nil
}

// MustParse is like Parse but panics on error. It is intended for
// literals in tests and examples.
func MustParse(s string) Node {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

type parser struct {
	text string
	pos  int
}

func (p *parser) errorf(cause error, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Text: p.text,
		Pos:  p.pos,
		Msg:  fmt.Sprintf(format, args...),
		Err:  cause,
	}
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.text) {
		return 0, false
	}
	return p.text[p.pos], true
}

func (p *parser) expect(c byte) error {
	next, ok := p.peek()
	if !ok {
		return p.errorf(nil, "expected %q, found end of input", c)
	}
	if next != c {
		return p.errorf(nil, "expected %q, found %q", c, next)
	}
	p.pos++
	return nil
}

// expr ::= "[" expr "," expr "]" | number
func (p *parser) expr() (Node, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.errorf(nil, "expected '[' or digit, found end of input")
	}
	if c != '[' {
		return p.number()
	}
	p.pos++
	left, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err = p.expect(','); err != nil {
		return nil, err
	}
	right, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err = p.expect(']'); err != nil {
		return nil, err
	}
	return Branch{Left: left, Right: right}, nil
}

// number ::= digit+
func (p *parser) number() (Node, error) {
	start := p.pos
	for p.pos < len(p.text) && isDigit(p.text[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		if c, ok := p.peek(); ok {
			return nil, p.errorf(nil, "expected '[' or digit, found %q", c)
		}
		return nil, p.errorf(nil, "expected '[' or digit, found end of input")
	}
	literal := p.text[start:p.pos]
	v, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		p.pos = start
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return nil, p.errorf(err, "numeric literal %s does not fit into int64", literal)
	}
	return Leaf{Value: v}, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
