package score

import (
	"reflect"
	"testing"
)

func note(b BaseNote) *NoteMeasure {
	return &NoteMeasure{Note: Note{Base: b}}
}

func TestWalk_PreOrder(t *testing.T) {
	m := &BeatDivision{
		Kind: DivisionNormal,
		Left: note(Do),
		Right: &UnderlinedMeasure{Inner: &BeatDivision{
			Kind:  DivisionQuarter,
			Left:  note(Re),
			Right: &EmptyNote{},
		}},
	}

	var kinds []string
	Walk(m, func(n Measure) bool {
		switch n := n.(type) {
		case *BeatDivision:
			kinds = append(kinds, "div:"+n.Kind.String())
		case *UnderlinedMeasure:
			kinds = append(kinds, "underline")
		case *NoteMeasure:
			kinds = append(kinds, string(n.Note.Base))
		case *EmptyNote:
			kinds = append(kinds, "rest")
		}
		return true
	})

	want := []string{"div:normal", "D", "underline", "div:quarter", "R", "rest"}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("Walk order = %v, want %v", kinds, want)
	}
}

func TestWalk_SkipChildren(t *testing.T) {
	m := &UnderlinedMeasure{Inner: note(Mi)}
	visited := 0
	Walk(m, func(Measure) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("visited = %d, want 1", visited)
	}
	Walk(nil, func(Measure) bool {
		t.Error("Walk(nil) visited a node")
		return true
	})
}

func TestCountNotes(t *testing.T) {
	ms := []Measure{
		&BeatDivision{Kind: DivisionNormal, Left: note(Do), Right: &EmptyNote{}},
		&Repeated{Inner: note(Sol)},
		&EmptyNote{},
	}
	notes, rests := CountNotes(ms)
	if notes != 2 || rests != 2 {
		t.Errorf("CountNotes() = %d, %d, want 2, 2", notes, rests)
	}
}

func TestSyllables(t *testing.T) {
	root := &Join{
		Left: &Chunk{Chunk: &Space{
			Left:  &Text{Value: "do"},
			Right: &Elision{Left: &Text{Value: "re"}, Right: &NewLineSuffixed{Chunk: &Text{Value: "mi"}}},
		}},
		Right: &Tie{
			Left:  &Chunk{Chunk: &Split{Left: &Text{Value: "ti"}, Right: &Text{Value: "e"}}},
			Right: &Chunk{Chunk: &Placeholder{}},
		},
	}

	got := Syllables(root)
	want := []LyricsChunk{
		&Text{Value: "do"}, &Text{Value: "re"}, &Text{Value: "mi"},
		&Text{Value: "ti"}, &Text{Value: "e"}, &Placeholder{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Syllables() = %v, want %v", got, want)
	}
}

func TestStaff_VoiceAndVerses(t *testing.T) {
	s := &Staff{
		Measures: []Column{
			{note(Do), note(Re), note(Mi), note(Fa)},
			{note(Sol), note(La), note(Ti), &EmptyNote{}},
		},
		Lyrics: []VoiceLyrics{
			{Voice: 2, Verses: []*LyricsTree{{Prefix: ">", Root: &Chunk{Chunk: &Text{Value: "ya"}}}}},
		},
	}

	if got, want := s.Voice(1), []Measure{note(Re), note(La)}; !reflect.DeepEqual(got, want) {
		t.Errorf("Voice(1) = %v, want %v", got, want)
	}
	if s.Voice(4) != nil || s.Voice(-1) != nil {
		t.Error("out of range voice should be nil")
	}
	if v := s.Verses(2); len(v) != 1 || v[0].Prefix != ">" {
		t.Errorf("Verses(2) = %v", v)
	}
	if v := s.Verses(0); v != nil {
		t.Errorf("Verses(0) = %v, want nil", v)
	}
}

func TestOctaveHelpers(t *testing.T) {
	if got := Up(2); got != (Octave{Direction: OctaveUp, Steps: 2}) {
		t.Errorf("Up(2) = %+v", got)
	}
	if got := Down(1); got != (Octave{Direction: OctaveDown, Steps: 1}) {
		t.Errorf("Down(1) = %+v", got)
	}
	var zero Octave
	if zero.Direction != OctaveBase {
		t.Error("zero Octave should be the base octave")
	}
	if VariantLowered.String() != "lowered" || VariantBase.String() != "base" {
		t.Error("NoteVariant.String mismatch")
	}
}
