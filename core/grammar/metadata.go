package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/solfaml/solfaml-parser/core/errors"
	"github.com/solfaml/solfaml-parser/core/score"
)

// headerBlock is the grammar of the metadata block: one Entry token per line.
type headerBlock struct {
	Entries []string `parser:"@Entry*"`
}

// headerLexer reads the header line by line. A line that is not a complete
// "key: value" pair fails to lex.
var headerLexer = lexer.MustSimple([]lexer.SimpleRule{
	// key: value (key is alphanumeric, value is non-empty)
	{Name: "Entry", Pattern: `[a-zA-Z0-9]+[ \t]*:[ \t]*[^ \t\r\n][^\r\n]*`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Newline", Pattern: `[\r\n]+`},
})

var headerParser = participle.MustBuild[headerBlock](
	participle.Lexer(headerLexer),
	participle.Elide("Whitespace", "Newline"),
)

// separator is the line that ends the header.
const separator = "---"

// ParseMetadata parses a header block of "key: value" lines. Later duplicate
// keys overwrite earlier values.
func ParseMetadata(block string) (*score.Header, error) {
	p := newParser(block, Options{})
	h, ok := p.metadata(0, len(block))
	if !ok {
		return nil, p.err()
	}
	return h, nil
}

// ParseHeader parses the metadata block and the "---" separator line that
// ends it, returning the input after the separator.
func ParseHeader(input string) (*score.Header, string, error) {
	return runRule(input, Options{}, (*parser).header)
}

// header := ws* metadata ws* "---"
func (p *parser) header() (*score.Header, bool) {
	p.multispace0()
	from := p.pos

	at, ok := p.findSeparator(from)
	if !ok {
		defer p.enter(errors.KindMissingSeparator)()
		p.pos = len(p.src)
		return nil, p.expect(`"---"`)
	}
	h, ok := p.metadata(from, at)
	if !ok {
		return nil, false
	}
	p.pos = at + len(separator)
	return h, true
}

// findSeparator returns the offset of the first "---" that stands alone on a
// line at or after from.
func (p *parser) findSeparator(from int) (int, bool) {
	for start := from; start <= len(p.src); {
		end := strings.IndexByte(p.src[start:], '\n')
		if end < 0 {
			end = len(p.src)
		} else {
			end += start
		}
		line := p.src[start:end]
		if strings.TrimSpace(line) == separator {
			return start + strings.Index(line, separator), true
		}
		if end == len(p.src) {
			break
		}
		start = end + 1
	}
	return 0, false
}

// metadata parses p.src[from:to] as the header block. A malformed line
// aborts the whole parse.
func (p *parser) metadata(from, to int) (*score.Header, bool) {
	h := score.NewHeader()
	if strings.TrimSpace(p.src[from:to]) == "" {
		return h, true
	}

	block, err := headerParser.ParseString("", p.src[from:to])
	if err != nil {
		offset := from
		var perr participle.Error
		if errors.As(err, &perr) {
			offset += perr.Position().Offset
		}
		line, col := p.lineCol(offset)
		p.fatal = errors.NewSyntax(errors.KindMetadata, offset, line, col,
			[]string{`"key: value" line`}, p.found(offset))
		return nil, false
	}

	for _, entry := range block.Entries {
		i := strings.IndexByte(entry, ':')
		h.Set(strings.TrimRight(entry[:i], " \t"), strings.TrimLeft(entry[i+1:], " \t"))
	}
	return h, true
}
