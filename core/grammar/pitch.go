package grammar

import (
	"github.com/solfaml/solfaml-parser/core/score"
)

var degrees = map[byte]score.BaseNote{
	'd': score.Do,
	'r': score.Re,
	'm': score.Mi,
	'f': score.Fa,
	's': score.Sol,
	'l': score.La,
	't': score.Ti,
}

func isDegree(c byte) bool {
	_, ok := degrees[c]
	return ok
}

// ParseNote parses one note: a degree letter, an optional variant suffix
// ('i' raised, 'a' lowered) and an optional octave marker.
func ParseNote(input string) (score.Note, string, error) {
	return runRule(input, Options{}, (*parser).note)
}

// note := degree ("a" | "i")? octave?
func (p *parser) note() (score.Note, bool) {
	base, ok := degrees[p.peek()]
	if !ok || p.eof() {
		return score.Note{}, p.expect("note")
	}
	p.pos++

	n := score.Note{Base: base}
	switch p.peek() {
	case 'a':
		n.Variant = score.VariantLowered
		p.pos++
	case 'i':
		n.Variant = score.VariantRaised
		p.pos++
	}

	if oct, ok := p.octave(); ok {
		n.Octave = oct
	}
	return n, p.fatal == nil
}

// octave := "+" digits | "-" digits | ","+ !beat | "'"+
func (p *parser) octave() (score.Octave, bool) {
	start := p.pos
	switch p.peek() {
	case '+', '-':
		sign := p.peek()
		p.pos++
		at := p.pos
		digits, ok := p.takeWhile(1, isDigit, "digit")
		if !ok {
			p.pos = start
			return score.Octave{}, false
		}
		n, ok := p.uint16At(digits, at)
		if !ok {
			p.pos = start
			return score.Octave{}, false
		}
		if sign == '+' {
			return score.Up(n), true
		}
		return score.Down(n), true

	case ',':
		run := p.run(',')
		if p.probe(p.beatFollows) {
			// the commas separate quarter beats
			p.pos = start
			return score.Octave{}, false
		}
		n, ok := p.count(run, start)
		if !ok {
			p.pos = start
			return score.Octave{}, false
		}
		return score.Down(n), true

	case '\'':
		run := p.run('\'')
		n, ok := p.count(run, start)
		if !ok {
			p.pos = start
			return score.Octave{}, false
		}
		return score.Up(n), true
	}
	return score.Octave{}, false
}

func (p *parser) beatFollows() bool {
	_, ok := p.normalDiv()
	return ok
}
