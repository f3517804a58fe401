package grammar

import (
	"github.com/solfaml/solfaml-parser/core/errors"
	"github.com/solfaml/solfaml-parser/core/score"
)

const (
	ruleNormal byte = iota
	ruleHalf
	ruleQuarter
)

// ParseDivision parses one beat expression of a measure.
func ParseDivision(input string) (score.Measure, string, error) {
	return runRule(input, Options{}, (*parser).normalDiv)
}

// ParseMeasureLine parses one voice line: an optional leading bar, one or
// more measures separated by "|" and a terminating "|" or "||".
func ParseMeasureLine(input string) ([]score.Measure, string, error) {
	return runRule(input, Options{}, (*parser).measureLine)
}

// measureLine := ws* "|"? division ("|" division)* ("||" | "|")
func (p *parser) measureLine() ([]score.Measure, bool) {
	defer p.enter(errors.KindVoice)()
	start := p.pos

	p.multispace0()
	p.lit("|")

	first, ok := p.normalDiv()
	if !ok {
		p.pos = start
		return nil, false
	}
	measures := []score.Measure{first}
	for {
		mark := p.pos
		if !p.lit("|") {
			break
		}
		m, ok := p.normalDiv()
		if !ok {
			p.pos = mark
			break
		}
		measures = append(measures, m)
	}

	if !p.lit("||") && !p.lit("|") {
		p.pos = start
		return nil, false
	}
	return measures, true
}

// staffBar := "|" "-"+ ("||" | "|") newline
func (p *parser) staffBar() bool {
	start := p.pos
	if p.lit("|") {
		if _, ok := p.takeWhile(1, func(c byte) bool { return c == '-' }, `"-"`); ok {
			if (p.lit("||") || p.lit("|")) && p.newline() {
				return true
			}
		}
	}
	p.pos = start
	return false
}

// normalDiv := halfDiv (":" normalDiv)?
func (p *parser) normalDiv() (score.Measure, bool) {
	return p.memoized(ruleNormal, func() (score.Measure, bool) {
		return p.division(score.DivisionNormal, ":", p.halfDiv, p.normalDiv)
	})
}

// halfDiv := quarterDiv ("." halfDiv)?
func (p *parser) halfDiv() (score.Measure, bool) {
	return p.memoized(ruleHalf, func() (score.Measure, bool) {
		return p.division(score.DivisionHalf, ".", p.quarterDiv, p.halfDiv)
	})
}

// quarterDiv := beat ("," quarterDiv)?
func (p *parser) quarterDiv() (score.Measure, bool) {
	return p.memoized(ruleQuarter, func() (score.Measure, bool) {
		return p.division(score.DivisionQuarter, ",", p.beat, p.quarterDiv)
	})
}

// division parses lhs, then optionally sep and rhs. A node is only built
// when the right-hand side is present.
func (p *parser) division(kind score.DivisionKind, sep string, lhs, rhs func() (score.Measure, bool)) (score.Measure, bool) {
	left, ok := lhs()
	if !ok {
		return nil, false
	}
	mark := p.pos
	if p.lit(sep) {
		if right, ok := rhs(); ok {
			return &score.BeatDivision{Kind: kind, Left: left, Right: right}, true
		}
		p.pos = mark
	}
	return left, true
}

// beat := sp* ("-" | note | "_" normalDiv "_") sp*
func (p *parser) beat() (score.Measure, bool) {
	start := p.pos
	p.space0()

	var m score.Measure
	switch c := p.peek(); {
	case c == '-':
		p.pos++
		m = &score.EmptyNote{}
	case isDegree(c):
		n, ok := p.note()
		if !ok {
			p.pos = start
			return nil, false
		}
		m = &score.NoteMeasure{Note: n}
	case c == '_':
		p.pos++
		inner, ok := p.normalDiv()
		if !ok || !p.lit("_") {
			p.pos = start
			return nil, false
		}
		m = &score.UnderlinedMeasure{Inner: inner}
	default:
		p.expect(`"-"`)
		p.expect("note")
		p.expect(`"_"`)
		p.pos = start
		return nil, false
	}

	p.space0()
	return m, true
}
