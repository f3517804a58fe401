package grammar

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/solfaml/solfaml-parser/core/errors"
	"github.com/solfaml/solfaml-parser/core/score"
	"github.com/solfaml/solfaml-parser/internal/logging"
)

// Options configures a parse. The zero value is valid.
type Options struct {
	// Strict fails a staff whose voices have different lengths with a
	// *errors.StructuralMismatchError instead of truncating to the shortest voice.
	Strict bool

	// Logger receives diagnostics. Nil uses the process logger.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.GetLogger()
}

// maxFound bounds the input excerpt carried by a SyntaxError.
const maxFound = 16

type memoKey struct {
	rule byte
	pos  int
}

type memoEntry struct {
	m   score.Measure
	end int
	ok  bool
}

// parser is the cursor over one input. A rule that fails leaves pos where
// the rule started.
type parser struct {
	src  string
	pos  int
	opts Options
	log  *slog.Logger

	region errors.Kind

	// farthest failure
	failPos  int
	failKind errors.Kind
	expected []string

	// quiet suppresses failure tracking inside lookahead probes
	quiet int
	fatal error

	memo      map[memoKey]memoEntry
	quietMemo map[memoKey]memoEntry
	lookahead map[int]bool
}

func newParser(src string, opts Options) *parser {
	return &parser{
		src:       src,
		opts:      opts,
		log:       opts.logger(),
		region:    errors.KindVoice,
		failPos:   -1,
		memo:      make(map[memoKey]memoEntry),
		quietMemo: make(map[memoKey]memoEntry),
		lookahead: make(map[int]bool),
	}
}

// enter switches the error region until the returned func is called.
func (p *parser) enter(k errors.Kind) func() {
	prev := p.region
	p.region = k
	return func() { p.region = prev }
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

// peek returns the byte under the cursor, or 0 at end of input.
func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

// expect records that what would have been accepted at the cursor. It always
// returns false so rules can write `return p.expect("x")`.
func (p *parser) expect(what string) bool {
	if p.quiet > 0 {
		return false
	}
	switch {
	case p.pos > p.failPos:
		p.failPos = p.pos
		p.failKind = p.region
		p.expected = append(p.expected[:0], what)
	case p.pos == p.failPos:
		p.failKind = p.region
		for _, e := range p.expected {
			if e == what {
				return false
			}
		}
		p.expected = append(p.expected, what)
	}
	return false
}

// accept consumes s if the input continues with it, without recording a failure.
func (p *parser) accept(s string) bool {
	if strings.HasPrefix(p.src[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	return false
}

// lit consumes s or records it as expected.
func (p *parser) lit(s string) bool {
	if p.accept(s) {
		return true
	}
	return p.expect(strconv.Quote(s))
}

// takeWhile consumes the longest run of bytes satisfying pred. Runs shorter
// than min fail and are recorded as what.
func (p *parser) takeWhile(min int, pred func(byte) bool, what string) (string, bool) {
	start := p.pos
	end := start
	for end < len(p.src) && pred(p.src[end]) {
		end++
	}
	if end-start < min {
		return "", p.expect(what)
	}
	p.pos = end
	return p.src[start:end], true
}

// run consumes a run of c and returns its length.
func (p *parser) run(c byte) int {
	start := p.pos
	for !p.eof() && p.src[p.pos] == c {
		p.pos++
	}
	return p.pos - start
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

func isMultispace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// space0 skips horizontal whitespace.
func (p *parser) space0() {
	_, _ = p.takeWhile(0, isSpace, "")
}

func (p *parser) space1() bool {
	_, ok := p.takeWhile(1, isSpace, "whitespace")
	return ok
}

// multispace0 skips whitespace including line breaks.
func (p *parser) multispace0() {
	_, _ = p.takeWhile(0, isMultispace, "")
}

func (p *parser) multispace1() bool {
	_, ok := p.takeWhile(1, isMultispace, "whitespace")
	return ok
}

// newline accepts "\n", tolerating a preceding "\r".
func (p *parser) newline() bool {
	if p.accept("\r\n") {
		return true
	}
	return p.lit("\n")
}

// uint16At converts a digit run starting at offset to a 16-bit value.
func (p *parser) uint16At(digits string, offset int) (uint16, bool) {
	n, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		p.overflow(offset, digits)
		return 0, false
	}
	return uint16(n), true
}

// count converts the length of a mark run starting at offset to a 16-bit value.
func (p *parser) count(n, offset int) (uint16, bool) {
	if n > 0xFFFF {
		p.overflow(offset, p.src[offset:offset+n])
		return 0, false
	}
	return uint16(n), true
}

// overflow records a fatal OverflowError. Inside a probe the rule just fails.
func (p *parser) overflow(offset int, text string) {
	if p.fatal != nil || p.quiet > 0 {
		return
	}
	line, col := p.lineCol(offset)
	if len(text) > maxFound {
		text = text[:maxFound]
	}
	p.fatal = errors.NewOverflow(offset, line, col, text)
}

// probe reports whether rule matches at the cursor without consuming input
// or recording failures. Results are cached per position.
func (p *parser) probe(rule func() bool) bool {
	if ok, hit := p.lookahead[p.pos]; hit {
		return ok
	}
	start := p.pos
	p.quiet++
	ok := rule()
	p.quiet--
	p.pos = start
	p.lookahead[start] = ok
	return ok
}

// memoized caches the result of a rhythm rule by position. Results computed
// inside probes go to quietMemo: they carry no failure expectations, so only
// other probes may reuse them.
func (p *parser) memoized(rule byte, fn func() (score.Measure, bool)) (score.Measure, bool) {
	key := memoKey{rule: rule, pos: p.pos}
	e, hit := p.memo[key]
	if !hit && p.quiet > 0 {
		e, hit = p.quietMemo[key]
	}
	if hit {
		if e.ok {
			p.pos = e.end
		}
		return e.m, e.ok
	}

	start := p.pos
	m, ok := fn()
	if !ok {
		p.pos = start
	}
	e = memoEntry{m: m, end: p.pos, ok: ok}
	if p.quiet > 0 {
		p.quietMemo[key] = e
	} else {
		p.memo[key] = e
	}
	return m, ok
}

// lineCol converts a byte offset to a 1-based line and column.
func (p *parser) lineCol(offset int) (int, int) {
	if offset > len(p.src) {
		offset = len(p.src)
	}
	before := p.src[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndexByte(before, '\n')
	return line, col
}

// found returns a short excerpt of the input at offset, up to the end of the line.
func (p *parser) found(offset int) string {
	if offset >= len(p.src) {
		return ""
	}
	rest := p.src[offset:]
	if i := strings.IndexByte(rest, '\n'); i == 0 {
		return "\n"
	} else if i > 0 {
		rest = rest[:i]
	}
	n := 0
	for i := range rest {
		if n == maxFound {
			return rest[:i]
		}
		n++
	}
	if !utf8.ValidString(rest) {
		return strings.ToValidUTF8(rest, "?")
	}
	return rest
}

// err returns the error describing the failed parse.
func (p *parser) err() error {
	if p.fatal != nil {
		return p.fatal
	}
	pos, kind := p.failPos, p.failKind
	if pos < 0 {
		pos, kind = p.pos, p.region
	}
	line, col := p.lineCol(pos)
	expected := make([]string, len(p.expected))
	copy(expected, p.expected)
	return errors.NewSyntax(kind, pos, line, col, expected, p.found(pos))
}

// runRule parses input with rule and returns the value with the residual input.
func runRule[T any](input string, opts Options, rule func(*parser) (T, bool)) (T, string, error) {
	p := newParser(input, opts)
	v, ok := rule(p)
	if p.fatal != nil || !ok {
		var zero T
		return zero, input, p.err()
	}
	return v, input[p.pos:], nil
}
