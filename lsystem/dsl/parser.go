package dsl

import (
	"io"
	"strconv"

	"github.com/lsys-xyz/go-lsys/lsystem"
)

// DocumentNode is the raw parse tree of one document: header values, the
// axiom, and the flat list of production statements in source order.
// Interpret folds it into an lsystem.LSystem.
type DocumentNode struct {
	Generations int
	Angle       float64
	Scale       float64
	Axiom       lsystem.RuleSequence
	Productions []ProductionNode
}

// ProductionNode is one production statement. Weight is 1 when the source
// had no explicit weight clause.
type ProductionNode struct {
	Predecessor lsystem.Symbol
	Weight      float64
	Successor   lsystem.RuleSequence
}

// Parse parses input and returns the assembled, validated LSystem.
func Parse(input string) (*lsystem.LSystem, error) {
	node, err := ParseDocument(input)
	if err != nil {
		return nil, err
	}
	return Interpret(node)
}

// ParseReader reads r fully, then parses it. The format requires no
// streaming: documents are small and parsing is whole-buffer.
func ParseReader(r io.Reader) (*lsystem.LSystem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// ParseDocument parses input into its raw parse tree without assembling or
// validating it. Most callers want Parse.
func ParseDocument(input string) (*DocumentNode, error) {
	p := &parser{s: newScanner(input)}
	return p.parseDocument()
}

type parser struct {
	s *scanner
}

func (p *parser) parseDocument() (*DocumentNode, error) {
	node := &DocumentNode{}
	p.s.skipBlankLines()

	generations, err := p.parseIntField("generations:")
	if err != nil {
		return nil, err
	}
	node.Generations = generations

	if node.Angle, err = p.parseFloatField("angle:"); err != nil {
		return nil, err
	}
	if node.Scale, err = p.parseFloatField("scale:"); err != nil {
		return nil, err
	}

	if err := p.expectLiteral("axiom", "axiom:"); err != nil {
		return nil, err
	}
	if node.Axiom, err = p.parseSequence("axiom"); err != nil {
		return nil, err
	}
	if err := p.endOfLine("axiom"); err != nil {
		return nil, err
	}

	for {
		p.s.skipBlankLines()
		if p.s.eof() {
			return node, nil
		}
		prod, err := p.parseProduction()
		if err != nil {
			return nil, err
		}
		node.Productions = append(node.Productions, prod)
	}
}

func (p *parser) parseProduction() (ProductionNode, error) {
	prod := ProductionNode{Weight: 1}

	pred, err := p.readSymbol("production")
	if err != nil {
		return prod, err
	}
	prod.Predecessor = pred

	p.s.skipSpaces()
	if p.s.ch == '(' {
		p.s.next()
		p.s.skipSpaces()
		if prod.Weight, err = p.readFloat("production weight"); err != nil {
			return prod, err
		}
		p.s.skipSpaces()
		if err := p.expectLiteral("production weight", ")"); err != nil {
			return prod, err
		}
		p.s.skipSpaces()
	}

	if err := p.expectLiteral("production", "->"); err != nil {
		return prod, err
	}
	if prod.Successor, err = p.parseSequence("production successor"); err != nil {
		return prod, err
	}
	if err := p.endOfLine("production"); err != nil {
		return prod, err
	}
	return prod, nil
}

// parseSequence reads one or more symbol tokens up to the end of the line.
// Symbols are undelimited: "F[+F]f" is six symbols.
func (p *parser) parseSequence(rule string) (lsystem.RuleSequence, error) {
	var seq lsystem.RuleSequence
	for {
		p.s.skipSpaces()
		if p.s.eof() || p.s.ch == '\n' || p.s.ch == '#' {
			break
		}
		sym, err := p.readSymbol(rule)
		if err != nil {
			return nil, err
		}
		seq = append(seq, sym)
	}
	if len(seq) == 0 {
		return nil, p.s.errf(rule, "at least one symbol")
	}
	return seq, nil
}

// readSymbol consumes exactly one non-space, non-newline character.
func (p *parser) readSymbol(rule string) (lsystem.Symbol, error) {
	if p.s.eof() || p.s.ch == '\n' || p.s.ch == ' ' {
		return lsystem.Symbol{}, p.s.errf(rule, "a symbol")
	}
	sym := lsystem.FromRune(p.s.ch)
	p.s.next()
	return sym, nil
}

func (p *parser) parseIntField(keyword string) (int, error) {
	rule := keyword[:len(keyword)-1]
	if err := p.expectLiteral(rule, keyword); err != nil {
		return 0, err
	}
	p.s.skipSpaces()
	lit := p.readNumberLiteral()
	n, err := strconv.Atoi(lit)
	if err != nil {
		return 0, p.s.errf(rule, "an integer")
	}
	if err := p.endOfLine(rule); err != nil {
		return 0, err
	}
	p.s.skipBlankLines()
	return n, nil
}

func (p *parser) parseFloatField(keyword string) (float64, error) {
	rule := keyword[:len(keyword)-1]
	if err := p.expectLiteral(rule, keyword); err != nil {
		return 0, err
	}
	p.s.skipSpaces()
	f, err := p.readFloat(rule)
	if err != nil {
		return 0, err
	}
	if err := p.endOfLine(rule); err != nil {
		return 0, err
	}
	p.s.skipBlankLines()
	return f, nil
}

// readFloat consumes a floating point literal and parses it.
func (p *parser) readFloat(rule string) (float64, error) {
	lit := p.readNumberLiteral()
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, p.s.errf(rule, "a number")
	}
	return f, nil
}

// readNumberLiteral consumes the maximal run of number characters. The
// literal is validated by strconv afterwards, which keeps malformed-number
// reporting in one place.
func (p *parser) readNumberLiteral() string {
	start := p.s.off
	for !p.s.eof() && isNumberChar(p.s.ch) {
		p.s.next()
	}
	return p.s.input[start:p.s.off]
}

func isNumberChar(r rune) bool {
	return r >= '0' && r <= '9' || r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E'
}

// expectLiteral matches a fixed case-sensitive string after optional spaces.
func (p *parser) expectLiteral(rule, lit string) error {
	p.s.skipSpaces()
	if !p.s.hasPrefix(lit) {
		return p.s.errf(rule, strconv.Quote(lit))
	}
	for range lit {
		p.s.next()
	}
	return nil
}

// endOfLine requires the current statement to stop here: optional spaces,
// then a newline, a comment (which consumes its newline), or end of input.
func (p *parser) endOfLine(rule string) error {
	p.s.skipSpaces()
	switch {
	case p.s.ch == '\n':
		p.s.next()
		return nil
	case p.s.ch == '#':
		p.s.skipComment()
		return nil
	case p.s.eof():
		return nil
	default:
		return p.s.errf(rule, "end of line")
	}
}
