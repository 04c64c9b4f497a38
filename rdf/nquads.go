package rdf

import (
	"fmt"
	"strings"
)

// EmitNQuad serializes a single quad as one N-Quads line, ending in "\n",
// with blank node labels written verbatim. Literal lexical forms are quoted
// with Go's %q rules, so printable non-ASCII characters are written as-is
// rather than escaped; IRIs are written unescaped. This is the package's
// native implementation of the emit_nquad hook the canonicalization driver
// depends on; GoldCodec provides an alternative backed by piprate/json-gold.
func EmitNQuad(q Quad) (string, error) {
	if q.S == nil || q.P.Value == "" || q.O == nil {
		return "", &InvalidInputError{Reason: "quad missing subject, predicate, or object", Quad: q}
	}
	line := renderTerm(q.S) + " " + renderIRI(q.P) + " " + renderTerm(q.O)
	if q.G != nil {
		line += " " + renderTerm(q.G)
	}
	line += " .\n"
	return line, nil
}

func renderIRI(iri IRI) string {
	return "<" + iri.Value + ">"
}

func renderTerm(term Term) string {
	switch value := term.(type) {
	case IRI:
		return renderIRI(value)
	case BlankNode:
		return value.String()
	case Literal:
		if value.Lang != "" {
			return fmt.Sprintf("%q@%s", value.Lexical, value.Lang)
		}
		if value.Datatype.Value != "" {
			return fmt.Sprintf("%q^^%s", value.Lexical, renderIRI(value.Datatype))
		}
		return fmt.Sprintf("%q", value.Lexical)
	default:
		return ""
	}
}

// ParseNQuads parses N-Quads text into a Dataset. It is the package's
// native implementation of the parse_nquads hook; GoldCodec provides an
// alternative backed by piprate/json-gold.
func ParseNQuads(text string) (Dataset, error) {
	ds := NewDataset()
	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		quad, err := parseNQuadLine(line)
		if err != nil {
			return nil, fmt.Errorf("urdna2015: line %d: %w", lineNo+1, err)
		}
		ds.AddTriple(graphKey(quad.G), quad.ToTriple())
	}
	return ds, nil
}

func parseNQuadLine(line string) (Quad, error) {
	c := &nqCursor{input: line}
	subject, err := c.parseTerm(false)
	if err != nil {
		return Quad{}, err
	}
	predicate, err := c.parseIRI()
	if err != nil {
		return Quad{}, err
	}
	object, err := c.parseTerm(true)
	if err != nil {
		return Quad{}, err
	}
	graph := c.parseOptionalGraph()
	c.skipWS()
	if !c.consume('.') {
		return Quad{}, c.errorf("expected '.' at end of statement")
	}
	return Quad{S: subject, P: predicate, O: object, G: graph}, nil
}

// nqCursor is a minimal recursive-descent cursor over a single N-Quads
// line. It only needs to recognize IRIs, blank nodes, and literals, since
// those are the only term kinds the canonicalization data model admits.
type nqCursor struct {
	input string
	pos   int
}

func (c *nqCursor) skipWS() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t', '\r':
			c.pos++
		default:
			return
		}
	}
}

func (c *nqCursor) consume(ch byte) bool {
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

func (c *nqCursor) parseOptionalGraph() Term {
	c.skipWS()
	if c.pos >= len(c.input) || c.input[c.pos] == '.' {
		return nil
	}
	term, _ := c.parseTerm(false)
	return term
}

func (c *nqCursor) parseTerm(allowLiteral bool) (Term, error) {
	c.skipWS()
	if c.pos >= len(c.input) {
		return nil, c.errorf("unexpected end of line")
	}
	switch {
	case c.input[c.pos] == '<':
		return c.parseIRI()
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankNode()
	case c.input[c.pos] == '"':
		if !allowLiteral {
			return nil, c.errorf("literal not allowed here")
		}
		return c.parseLiteral()
	default:
		return nil, c.errorf("unexpected token")
	}
}

func (c *nqCursor) parseIRI() (IRI, error) {
	c.skipWS()
	if !c.consume('<') {
		return IRI{}, c.errorf("expected IRI")
	}
	start := c.pos
	for c.pos < len(c.input) && c.input[c.pos] != '>' {
		c.pos++
	}
	if c.pos >= len(c.input) {
		return IRI{}, c.errorf("unterminated IRI")
	}
	value := c.input[start:c.pos]
	c.pos++
	return IRI{Value: value}, nil
}

func (c *nqCursor) parseBlankNode() (BlankNode, error) {
	c.skipWS()
	if !strings.HasPrefix(c.input[c.pos:], "_:") {
		return BlankNode{}, c.errorf("expected blank node")
	}
	c.pos += 2
	start := c.pos
	for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
		c.pos++
	}
	if start == c.pos {
		return BlankNode{}, c.errorf("blank node id missing")
	}
	return BlankNode{ID: c.input[start:c.pos]}, nil
}

func (c *nqCursor) parseLiteral() (Literal, error) {
	c.skipWS()
	if !c.consume('"') {
		return Literal{}, c.errorf("expected literal")
	}
	var b strings.Builder
	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		if ch == '"' {
			c.pos++
			break
		}
		if ch == '\\' {
			if c.pos+1 >= len(c.input) {
				return Literal{}, c.errorf("unterminated escape")
			}
			switch c.input[c.pos+1] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte(c.input[c.pos+1])
			}
			c.pos += 2
			continue
		}
		b.WriteByte(ch)
		c.pos++
	}
	lexical := b.String()
	if strings.HasPrefix(c.input[c.pos:], "@") {
		c.pos++
		start := c.pos
		for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
			c.pos++
		}
		return Literal{Lexical: lexical, Lang: c.input[start:c.pos]}, nil
	}
	if strings.HasPrefix(c.input[c.pos:], "^^") {
		c.pos += 2
		dt, err := c.parseIRI()
		if err != nil {
			return Literal{}, err
		}
		return Literal{Lexical: lexical, Datatype: dt}, nil
	}
	return Literal{Lexical: lexical}, nil
}

func (c *nqCursor) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("nquads: "+format, args...)
}

func isTermDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '.':
		return true
	default:
		return false
	}
}
