// Package day16 solves "Packet Decoder", day 16 of Advent of Code 2021.
//
// A transmission is a hexadecimal string encoding a single BITS packet.
// Packets are either literal values or operators containing sub-packets;
// operators evaluate to sums, products, minima, maxima or comparisons.
package day16

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/aoc2021"
	"github.com/npillmayer/aoc2021/input"
	"github.com/npillmayer/aoc2021/solver"
	"github.com/npillmayer/schuko/tracing"
	tp "github.com/xlab/treeprint"
)

// Puzzle describes day 16.
var Puzzle = solver.Puzzle{Day: 16, Title: "Packet Decoder", Solve: Solve}

// tracer traces with key 'aoc.day16'.
func tracer() tracing.Trace {
	return tracing.Select("aoc.day16")
}

// ErrTruncated is returned if a transmission ends in the middle of a packet.
var ErrTruncated = errors.New("truncated transmission")

// Packet type IDs.
const (
	TypeSum     = 0
	TypeProduct = 1
	TypeMin     = 2
	TypeMax     = 3
	TypeLiteral = 4
	TypeGreater = 5
	TypeLess    = 6
	TypeEqual   = 7
)

var typeNames = [...]string{"sum", "product", "min", "max", "literal", "gt", "lt", "eq"}

// Packet is a decoded BITS packet.
type Packet struct {
	Version int
	Type    int
	Value   int64     // literal packets only
	Sub     []*Packet // operator packets only
}

// Decode parses a hexadecimal transmission. Trailing bits after the
// outermost packet are ignored.
func Decode(hex string) (*Packet, error) {
	br, err := newBitReader(strings.TrimSpace(hex))
	if err != nil {
		return nil, err
	}
	return br.packet()
}

// VersionSum adds up the version numbers of p and all its sub-packets.
func (p *Packet) VersionSum() int {
	sum := p.Version
	for _, sub := range p.Sub {
		sum += sub.VersionSum()
	}
	return sum
}

// Eval computes the value of the expression p represents.
func (p *Packet) Eval() (int64, error) {
	if p.Type == TypeLiteral {
		return p.Value, nil
	}
	if len(p.Sub) == 0 {
		return 0, fmt.Errorf("%s packet without operands", typeNames[p.Type])
	}
	values := make([]int64, len(p.Sub))
	for i, sub := range p.Sub {
		v, err := sub.Eval()
		if err != nil {
			return 0, err
		}
		values[i] = v
	}
	switch p.Type {
	case TypeSum:
		return aoc.Sum(values), nil
	case TypeProduct:
		return aoc.Product(values), nil
	case TypeMin:
		return aoc.Fold(values[1:], values[0], func(m, v int64) int64 { return min(m, v) }), nil
	case TypeMax:
		return aoc.Fold(values[1:], values[0], func(m, v int64) int64 { return max(m, v) }), nil
	}
	if len(values) != 2 {
		return 0, fmt.Errorf("%s packet needs 2 operands, has %d", typeNames[p.Type], len(values))
	}
	var result bool
	switch p.Type {
	case TypeGreater:
		result = values[0] > values[1]
	case TypeLess:
		result = values[0] < values[1]
	case TypeEqual:
		result = values[0] == values[1]
	}
	if result {
		return 1, nil
	}
	return 0, nil
}

func (p *Packet) label() string {
	if p.Type == TypeLiteral {
		return fmt.Sprintf("v%d literal %d", p.Version, p.Value)
	}
	return fmt.Sprintf("v%d %s", p.Version, typeNames[p.Type])
}

// Dump renders the packet hierarchy as a tree.
func Dump(p *Packet) string {
	printer := tp.New()
	dumpPacket(printer, p)
	return printer.String()
}

func dumpPacket(printer tp.Tree, p *Packet) {
	if p.Type == TypeLiteral {
		printer.AddNode(p.label())
		return
	}
	branch := printer.AddBranch(p.label())
	for _, sub := range p.Sub {
		dumpPacket(branch, sub)
	}
}

// --- Bit stream ------------------------------------------------------------

type bitReader struct {
	bits []byte
	pos  int
}

func newBitReader(hex string) (*bitReader, error) {
	br := &bitReader{bits: make([]byte, 0, 4*len(hex))}
	for i := 0; i < len(hex); i++ {
		nibble, err := hexValue(hex[i])
		if err != nil {
			return nil, err
		}
		for shift := 3; shift >= 0; shift-- {
			br.bits = append(br.bits, (nibble>>shift)&1)
		}
	}
	return br, nil
}

func hexValue(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	}
	return 0, fmt.Errorf("invalid hexadecimal digit %q", c)
}

func (br *bitReader) read(n int) (int64, error) {
	if br.pos+n > len(br.bits) {
		return 0, fmt.Errorf("%w: need %d bits at position %d", ErrTruncated, n, br.pos)
	}
	var v int64
	for _, b := range br.bits[br.pos : br.pos+n] {
		v = v<<1 | int64(b)
	}
	br.pos += n
	return v, nil
}

func (br *bitReader) packet() (*Packet, error) {
	version, err := br.read(3)
	if err != nil {
		return nil, err
	}
	typ, err := br.read(3)
	if err != nil {
		return nil, err
	}
	p := &Packet{Version: int(version), Type: int(typ)}
	if p.Type == TypeLiteral {
		p.Value, err = br.literal()
		return p, err
	}
	lengthType, err := br.read(1)
	if err != nil {
		return nil, err
	}
	if lengthType == 0 {
		length, err := br.read(15)
		if err != nil {
			return nil, err
		}
		end := br.pos + int(length)
		for br.pos < end {
			sub, err := br.packet()
			if err != nil {
				return nil, err
			}
			p.Sub = append(p.Sub, sub)
		}
		if br.pos != end {
			return nil, fmt.Errorf("sub-packets exceed announced length of %d bits", length)
		}
		return p, nil
	}
	count, err := br.read(11)
	if err != nil {
		return nil, err
	}
	for i := 0; i < int(count); i++ {
		sub, err := br.packet()
		if err != nil {
			return nil, err
		}
		p.Sub = append(p.Sub, sub)
	}
	return p, nil
}

func (br *bitReader) literal() (int64, error) {
	var v int64
	for {
		group, err := br.read(5)
		if err != nil {
			return 0, err
		}
		if v > (1<<63-1)>>4 {
			return 0, errors.New("literal value overflows int64")
		}
		v = v<<4 | group&0xf
		if group&0x10 == 0 {
			return v, nil
		}
	}
}

// Solve adds up all version numbers and evaluates the transmission.
func Solve(r io.Reader) (solver.Answers, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	var hex string
	for _, line := range lines {
		if line != "" {
			hex = line
			break
		}
	}
	if hex == "" {
		return nil, errors.New("empty transmission")
	}
	p, err := Decode(hex)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("packets:\n%s", Dump(p))
	v, err := p.Eval()
	if err != nil {
		return nil, err
	}
	return solver.Parts(p.VersionSum(), v), nil
}
