package grammar

import (
	"github.com/solfaml/solfaml-parser/core/errors"
	"github.com/solfaml/solfaml-parser/core/score"
)

// levels is ordered so that longer marks are tried first.
var levels = []struct {
	mark string
	kind score.LevelKind
}{
	{"fff", score.LevelFFF},
	{"ff", score.LevelFF},
	{"f", score.LevelF},
	{"mf", score.LevelMF},
	{"mp", score.LevelMP},
	{"ppp", score.LevelPPP},
	{"pp", score.LevelPP},
	{"p", score.LevelP},
}

// ParseDynamics parses an optional dynamics line. The marks are only kept
// when the line opens with "|:"; without it the result is empty. The rule
// always succeeds unless a position overflows.
func ParseDynamics(input string) ([]score.Dynamic, string, error) {
	return runRule(input, Options{}, (*parser).dynamicsLine)
}

// dynamicsLine := "|:"? sp* (mark (sp+ mark)*)? sp* ("||" | "|")? newline?
func (p *parser) dynamicsLine() ([]score.Dynamic, bool) {
	defer p.enter(errors.KindDynamics)()

	gated := p.lit("|:")
	p.space0()

	var marks []score.Dynamic
	if d, ok := p.dynamicMark(); ok {
		marks = append(marks, d)
		for {
			mark := p.pos
			if !p.space1() {
				break
			}
			d, ok := p.dynamicMark()
			if !ok {
				p.pos = mark
				break
			}
			marks = append(marks, d)
		}
	}

	p.space0()
	_ = p.lit("||") || p.lit("|")
	_ = p.newline()

	if p.fatal != nil {
		return nil, false
	}
	if !gated {
		return nil, true
	}
	return marks, true
}

// dynamicMark := level sp* pos | "DC" sp* pos | "^" sp* pos | "<" sp* span | ">" sp* span
func (p *parser) dynamicMark() (score.Dynamic, bool) {
	start := p.pos

	for _, lv := range levels {
		if !p.accept(lv.mark) {
			continue
		}
		p.space0()
		if at, ok := p.position(); ok {
			return &score.Level{Pos: at, Kind: lv.kind}, true
		}
		p.pos = start
	}

	switch {
	case p.accept("DC"):
		p.space0()
		if at, ok := p.position(); ok {
			return &score.DC{Pos: at}, true
		}
	case p.accept("^"):
		p.space0()
		if at, ok := p.position(); ok {
			return &score.Accent{Pos: at}, true
		}
	case p.accept("<"):
		p.space0()
		if from, to, ok := p.span(); ok {
			return &score.Crescendo{Start: from, End: to}, true
		}
	case p.accept(">"):
		p.space0()
		if from, to, ok := p.span(); ok {
			return &score.Decrescendo{Start: from, End: to}, true
		}
	default:
		p.expect("dynamic mark")
	}

	p.pos = start
	return nil, false
}

// position := "{" sp* digits sp* "}"
func (p *parser) position() (uint16, bool) {
	start := p.pos
	if p.lit("{") {
		p.space0()
		if n, ok := p.number(); ok {
			p.space0()
			if p.lit("}") {
				return n, true
			}
		}
	}
	p.pos = start
	return 0, false
}

// span := "{" sp* digits sp* "," sp* digits sp* "}"
func (p *parser) span() (uint16, uint16, bool) {
	start := p.pos
	if p.lit("{") {
		p.space0()
		if from, ok := p.number(); ok {
			p.space0()
			if p.lit(",") {
				p.space0()
				if to, ok := p.number(); ok {
					p.space0()
					if p.lit("}") {
						return from, to, true
					}
				}
			}
		}
	}
	p.pos = start
	return 0, 0, false
}

// number := digit+
func (p *parser) number() (uint16, bool) {
	at := p.pos
	digits, ok := p.takeWhile(1, isDigit, "digit")
	if !ok {
		return 0, false
	}
	n, ok := p.uint16At(digits, at)
	if !ok {
		p.pos = at
		return 0, false
	}
	return n, true
}
