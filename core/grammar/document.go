package grammar

import (
	"github.com/solfaml/solfaml-parser/core/score"
)

// Parse parses a complete score document with default options.
func Parse(src string) (*score.Document, error) {
	return ParseWithOptions(src, Options{})
}

// ParseWithOptions parses a complete score document. The whole input must be
// consumed; trailing text that is not part of a staff is a syntax error.
func ParseWithOptions(src string, opts Options) (*score.Document, error) {
	p := newParser(src, opts)
	doc, ok := p.document()
	if ok && !p.eof() {
		ok = p.expect("end of input")
	}
	if p.fatal != nil || !ok {
		err := p.err()
		p.log.Debug("parse_failed", "bytes", len(src), "error", err)
		return nil, err
	}
	p.log.Debug("parse_completed", "bytes", len(src), "staves", len(doc.Staves))
	return doc, nil
}

// document := ws* header ws+ staff (ws+ staff)* ws*
func (p *parser) document() (*score.Document, bool) {
	header, ok := p.header()
	if !ok {
		return nil, false
	}
	if !p.multispace1() {
		return nil, false
	}

	first, ok := p.staff(0)
	if !ok {
		return nil, false
	}
	doc := &score.Document{Header: header, Staves: []*score.Staff{first}}
	for {
		mark := p.pos
		if !p.multispace1() {
			break
		}
		st, ok := p.staff(len(doc.Staves))
		if !ok {
			p.pos = mark
			break
		}
		doc.Staves = append(doc.Staves, st)
	}

	p.multispace0()
	return doc, true
}
