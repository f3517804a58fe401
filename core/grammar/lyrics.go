package grammar

import (
	"github.com/solfaml/solfaml-parser/core/errors"
	"github.com/solfaml/solfaml-parser/core/score"
)

// isLyricText reports whether c may appear inside a literal syllable.
func isLyricText(c byte) bool {
	switch c {
	case ' ', '_', '<', '|', '$', '\r', '\n', '%', '\\':
		return false
	}
	return true
}

func isPrefix(c byte) bool {
	return c != ' ' && c != '|'
}

// ParseLyricsChunk parses the syllable group of one lyrics bar.
func ParseLyricsChunk(input string) (score.LyricsChunk, string, error) {
	return runRule(input, Options{}, func(p *parser) (score.LyricsChunk, bool) {
		defer p.enter(errors.KindLyrics)()
		return p.lyricsChunk()
	})
}

// ParseLyricsMeasure parses the bar structure of a verse without its prefix.
func ParseLyricsMeasure(input string) (score.LyricsMeasure, string, error) {
	return runRule(input, Options{}, func(p *parser) (score.LyricsMeasure, bool) {
		defer p.enter(errors.KindLyrics)()
		return p.lyricsMeasure()
	})
}

// ParseLyricsTree parses one verse: a prefix followed by its bars.
func ParseLyricsTree(input string) (*score.LyricsTree, string, error) {
	return runRule(input, Options{}, func(p *parser) (*score.LyricsTree, bool) {
		defer p.enter(errors.KindLyrics)()
		return p.lyricsTree()
	})
}

// ParseLyricsBlock parses the verses attached to one voice line.
func ParseLyricsBlock(input string) ([]*score.LyricsTree, string, error) {
	return runRule(input, Options{}, (*parser).lyricsBlock)
}

// lyricsBlock := (ws* tree) (ws+ ws* tree)*
func (p *parser) lyricsBlock() ([]*score.LyricsTree, bool) {
	defer p.enter(errors.KindLyrics)()
	start := p.pos

	p.multispace0()
	first, ok := p.lyricsTree()
	if !ok {
		p.pos = start
		return nil, false
	}
	trees := []*score.LyricsTree{first}
	for {
		mark := p.pos
		if !p.multispace1() {
			break
		}
		t, ok := p.lyricsTree()
		if !ok {
			p.pos = mark
			break
		}
		trees = append(trees, t)
	}
	return trees, true
}

// lyricsTree := prefix measure ("||" | "|")?
func (p *parser) lyricsTree() (*score.LyricsTree, bool) {
	start := p.pos
	prefix, ok := p.takeWhile(1, isPrefix, "verse prefix")
	if !ok {
		return nil, false
	}
	root, ok := p.lyricsMeasure()
	if !ok {
		p.pos = start
		return nil, false
	}
	_ = p.lit("||") || p.lit("|")
	return &score.LyricsTree{Prefix: prefix, Root: root}, true
}

// lyricsMeasure := chunk (("|" | "<|>") lyricsMeasure)?
func (p *parser) lyricsMeasure() (score.LyricsMeasure, bool) {
	c, ok := p.lyricsChunk()
	if !ok {
		return nil, false
	}
	var left score.LyricsMeasure = &score.Chunk{Chunk: c}

	mark := p.pos
	tie := false
	switch {
	case p.lit("|"):
	case p.lit("<|>"):
		tie = true
	default:
		return left, true
	}
	right, ok := p.lyricsMeasure()
	if !ok {
		p.pos = mark
		return left, true
	}
	if tie {
		return &score.Tie{Left: left, Right: right}, true
	}
	return &score.Join{Left: left, Right: right}, true
}

// lyricsChunk := sp* syllable ((" " | "_") lyricsChunk)? sp*
func (p *parser) lyricsChunk() (score.LyricsChunk, bool) {
	start := p.pos
	p.space0()
	left, ok := p.syllable()
	if !ok {
		p.pos = start
		return nil, false
	}

	mark := p.pos
	if sep := p.peek(); sep == ' ' || sep == '_' {
		p.pos++
		if right, ok := p.lyricsChunk(); ok {
			if sep == '_' {
				left = &score.Elision{Left: left, Right: right}
			} else {
				left = &score.Space{Left: left, Right: right}
			}
		} else {
			p.pos = mark
		}
	}

	p.space0()
	return left, true
}

// syllable := ("%" | text ("$" syllable)?) "\"?
func (p *parser) syllable() (score.LyricsChunk, bool) {
	var c score.LyricsChunk
	if p.accept("%") {
		c = &score.Placeholder{}
	} else {
		text, ok := p.takeWhile(1, isLyricText, "lyric text")
		if !ok {
			return nil, p.expect(`"%"`)
		}
		c = &score.Text{Value: text}

		mark := p.pos
		if p.accept("$") {
			if right, ok := p.syllable(); ok {
				c = &score.Split{Left: c, Right: right}
			} else {
				p.pos = mark
			}
		}
	}

	if p.accept(`\`) {
		c = &score.NewLineSuffixed{Chunk: c}
	}
	return c, true
}
