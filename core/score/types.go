package score

// Voices is the number of synchronized voice parts in every staff.
const Voices = 4

// Document is the root of a parsed score.
type Document struct {
	// Header holds the free-form metadata block in insertion order.
	Header *Header

	// Staves contains the staves in source order.
	Staves []*Staff
}

// Staff is one system of four synchronized voices.
type Staff struct {
	// Dynamics contains the expression marks of the staff's dynamics line.
	Dynamics []Dynamic

	// Measures contains one column per bar, each holding that bar of every voice.
	Measures []Column

	// Lyrics contains the verse sets of the voices that carry lyrics, in voice order.
	Lyrics []VoiceLyrics
}

// Column is one bar of a staff across all four voices.
type Column [Voices]Measure

// VoiceLyrics is the ordered verse set attached to one voice.
type VoiceLyrics struct {
	// Voice is the 0-based voice index (0..3).
	Voice int

	// Verses contains the verse trees in source order.
	Verses []*LyricsTree
}

// Voice returns the measure sequence of voice i, or nil if i is out of range.
func (s *Staff) Voice(i int) []Measure {
	if i < 0 || i >= Voices {
		return nil
	}
	out := make([]Measure, len(s.Measures))
	for n, col := range s.Measures {
		out[n] = col[i]
	}
	return out
}

// Verses returns the verse trees attached to voice i.
func (s *Staff) Verses(i int) []*LyricsTree {
	for _, vl := range s.Lyrics {
		if vl.Voice == i {
			return vl.Verses
		}
	}
	return nil
}

// BaseNote is a movable-do degree.
type BaseNote string

// Base note constants.
const (
	Do  BaseNote = "D"
	Re  BaseNote = "R"
	Mi  BaseNote = "M"
	Fa  BaseNote = "F"
	Sol BaseNote = "S"
	La  BaseNote = "L"
	Ti  BaseNote = "T"
)

// NoteVariant is the chromatic inflection of a degree.
type NoteVariant int

// Note variant constants.
const (
	VariantBase NoteVariant = iota
	VariantRaised
	VariantLowered
)

func (v NoteVariant) String() string {
	switch v {
	case VariantRaised:
		return "raised"
	case VariantLowered:
		return "lowered"
	default:
		return "base"
	}
}

// OctaveDirection tells whether a note sits in, above or below the base octave.
type OctaveDirection int

// Octave direction constants.
const (
	OctaveBase OctaveDirection = iota
	OctaveUp
	OctaveDown
)

// Octave is the octave displacement of a note. The zero value is the base octave.
type Octave struct {
	Direction OctaveDirection
	Steps     uint16
}

// Up returns an octave n steps above the base octave.
func Up(n uint16) Octave {
	return Octave{Direction: OctaveUp, Steps: n}
}

// Down returns an octave n steps below the base octave.
func Down(n uint16) Octave {
	return Octave{Direction: OctaveDown, Steps: n}
}

// Note is one pitched sol-fa syllable.
type Note struct {
	Base    BaseNote
	Variant NoteVariant
	Octave  Octave
}

// DivisionKind is the nesting level of a beat division. It carries no duration.
type DivisionKind int

// Division kind constants, loosest first.
const (
	DivisionNormal DivisionKind = iota
	DivisionHalf
	DivisionQuarter
)

func (k DivisionKind) String() string {
	switch k {
	case DivisionHalf:
		return "half"
	case DivisionQuarter:
		return "quarter"
	default:
		return "normal"
	}
}

// Measure is the recursive content of one bar of a voice.
type Measure interface {
	isMeasure()
}

// EmptyNote is a rest.
type EmptyNote struct{}

// NoteMeasure is a single sounded note.
type NoteMeasure struct {
	Note Note
}

// BeatDivision splits a beat into a left and right part at one nesting level.
type BeatDivision struct {
	Kind  DivisionKind
	Left  Measure
	Right Measure
}

// UnderlinedMeasure groups a sub-measure under a connecting underline.
type UnderlinedMeasure struct {
	Inner Measure
}

// Repeated marks a repeated sub-measure. Reserved: no grammar rule produces it yet.
type Repeated struct {
	Inner Measure
}

// RepeatStart opens a repeat. Reserved: no grammar rule produces it yet.
type RepeatStart struct {
	Inner Measure
}

// RepeatEnd closes a repeat. Reserved: no grammar rule produces it yet.
type RepeatEnd struct {
	Inner Measure
}

func (*EmptyNote) isMeasure()         {}
func (*NoteMeasure) isMeasure()       {}
func (*BeatDivision) isMeasure()      {}
func (*UnderlinedMeasure) isMeasure() {}
func (*Repeated) isMeasure()          {}
func (*RepeatStart) isMeasure()       {}
func (*RepeatEnd) isMeasure()         {}

// LevelKind is a named dynamic level.
type LevelKind string

// Dynamic level constants.
const (
	LevelFFF LevelKind = "fff"
	LevelFF  LevelKind = "ff"
	LevelF   LevelKind = "f"
	LevelMF  LevelKind = "mf"
	LevelMP  LevelKind = "mp"
	LevelP   LevelKind = "p"
	LevelPP  LevelKind = "pp"
	LevelPPP LevelKind = "ppp"
)

// Dynamic is an expression mark anchored to beat positions. Positions are
// structural and are not checked against the staff's measure count.
type Dynamic interface {
	isDynamic()
}

// DC is a da capo mark.
type DC struct {
	Pos uint16
}

// DS is a dal segno mark. Reserved: no grammar rule produces it yet.
type DS struct {
	Pos uint16
}

// Sign is a segno sign. Reserved: no grammar rule produces it yet.
type Sign struct {
	Pos uint16
}

// Accent is an accent on one beat.
type Accent struct {
	Pos uint16
}

// Level sets a named dynamic level from a beat onwards.
type Level struct {
	Pos  uint16
	Kind LevelKind
}

// Crescendo spans beats Start to End.
type Crescendo struct {
	Start uint16
	End   uint16
}

// Decrescendo spans beats Start to End.
type Decrescendo struct {
	Start uint16
	End   uint16
}

func (*DC) isDynamic()          {}
func (*DS) isDynamic()          {}
func (*Sign) isDynamic()        {}
func (*Accent) isDynamic()      {}
func (*Level) isDynamic()       {}
func (*Crescendo) isDynamic()   {}
func (*Decrescendo) isDynamic() {}

// LyricsChunk is the recursive content of one syllable group.
type LyricsChunk interface {
	isLyricsChunk()
}

// Placeholder repeats the previous syllable.
type Placeholder struct{}

// Text is a literal syllable.
type Text struct {
	Value string
}

// NewLineSuffixed marks an explicit line break after its chunk.
type NewLineSuffixed struct {
	Chunk LyricsChunk
}

// Split is an explicit syllable break inside one word.
type Split struct {
	Left  LyricsChunk
	Right LyricsChunk
}

// Space is a word boundary.
type Space struct {
	Left  LyricsChunk
	Right LyricsChunk
}

// Elision ties two syllables onto one note (the "_" concatenation).
type Elision struct {
	Left  LyricsChunk
	Right LyricsChunk
}

func (*Placeholder) isLyricsChunk()     {}
func (*Text) isLyricsChunk()            {}
func (*NewLineSuffixed) isLyricsChunk() {}
func (*Split) isLyricsChunk()           {}
func (*Space) isLyricsChunk()           {}
func (*Elision) isLyricsChunk()         {}

// LyricsMeasure is the recursive bar structure of a verse.
type LyricsMeasure interface {
	isLyricsMeasure()
}

// Chunk is the syllable group of one bar.
type Chunk struct {
	Chunk LyricsChunk
}

// Join continues a verse into the next bar ("|").
type Join struct {
	Left  LyricsMeasure
	Right LyricsMeasure
}

// Tie carries a syllable across a bar boundary ("<|>").
type Tie struct {
	Left  LyricsMeasure
	Right LyricsMeasure
}

func (*Chunk) isLyricsMeasure() {}
func (*Join) isLyricsMeasure()  {}
func (*Tie) isLyricsMeasure()   {}

// LyricsTree is one verse of a voice.
type LyricsTree struct {
	// Prefix is the verse marker, e.g. "1." or ">".
	Prefix string

	// Root is the verse's bar structure.
	Root LyricsMeasure
}
