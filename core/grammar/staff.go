package grammar

import (
	"github.com/solfaml/solfaml-parser/core/errors"
	"github.com/solfaml/solfaml-parser/core/score"
	"github.com/solfaml/solfaml-parser/internal/logging"
)

// ParseStaff parses one staff: a dynamics line, an optional bar-rule line
// and four voice lines, each optionally followed by its verses.
func ParseStaff(input string, opts Options) (*score.Staff, string, error) {
	return runRule(input, opts, func(p *parser) (*score.Staff, bool) {
		return p.staff(0)
	})
}

// staff := dynamicsLine staffBar? (measureLine lyricsBlock?){4}
func (p *parser) staff(index int) (*score.Staff, bool) {
	start := p.pos

	dynamics, ok := p.dynamicsLine()
	if !ok {
		p.pos = start
		return nil, false
	}
	st := &score.Staff{Dynamics: dynamics}

	p.staffBar()

	var voices [score.Voices][]score.Measure
	for v := range voices {
		measures, ok := p.measureLine()
		if !ok {
			p.pos = start
			return nil, false
		}
		voices[v] = measures
		if verses, ok := p.lyricsBlock(); ok {
			st.Lyrics = append(st.Lyrics, score.VoiceLyrics{Voice: v, Verses: verses})
		}
	}

	columns, ok := p.zip(index, voices)
	if !ok {
		p.pos = start
		return nil, false
	}
	st.Measures = columns
	return st, true
}

// zip pairs the voices bar by bar. Voices of different lengths are cut to the
// shortest one unless the parse is strict.
func (p *parser) zip(index int, voices [score.Voices][]score.Measure) ([]score.Column, bool) {
	var lengths [score.Voices]int
	n := len(voices[0])
	mismatch := false
	for v, ms := range voices {
		lengths[v] = len(ms)
		if len(ms) != n {
			mismatch = true
		}
		n = min(n, len(ms))
	}

	if mismatch {
		if p.opts.Strict {
			if p.fatal == nil {
				p.fatal = errors.NewStructuralMismatch(index, lengths)
			}
			return nil, false
		}
		logging.VoiceTruncated(p.log, index, n, lengths[:])
	}

	columns := make([]score.Column, n)
	for i := range columns {
		for v := range voices {
			columns[i][v] = voices[v][i]
		}
	}
	return columns, true
}
