package grammar

import (
	"testing"

	"github.com/solfaml/solfaml-parser/core/errors"
	"github.com/solfaml/solfaml-parser/core/score"
)

func TestParseNoteDegrees(t *testing.T) {
	degreesWant := map[string]score.BaseNote{
		"d": score.Do,
		"r": score.Re,
		"m": score.Mi,
		"f": score.Fa,
		"s": score.Sol,
		"l": score.La,
		"t": score.Ti,
	}
	for input, base := range degreesWant {
		t.Run(input, func(t *testing.T) {
			got, rest, err := ParseNote(input)
			if err != nil {
				t.Fatalf("ParseNote(%q) error = %v", input, err)
			}
			want := score.Note{Base: base}
			if got != want {
				t.Errorf("ParseNote(%q) = %+v, want %+v", input, got, want)
			}
			if rest != "" {
				t.Errorf("rest = %q, want empty", rest)
			}
		})
	}
}

func TestParseNote(t *testing.T) {
	tests := []struct {
		input string
		want  score.Note
		rest  string
	}{
		{"ti", score.Note{Base: score.Ti, Variant: score.VariantRaised}, ""},
		{"ma", score.Note{Base: score.Mi, Variant: score.VariantLowered}, ""},
		{"da", score.Note{Base: score.Do, Variant: score.VariantLowered}, ""},
		{"d'", score.Note{Base: score.Do, Octave: score.Up(1)}, ""},
		{"r''", score.Note{Base: score.Re, Octave: score.Up(2)}, ""},
		{"r,", score.Note{Base: score.Re, Octave: score.Down(1)}, ""},
		{"d,,", score.Note{Base: score.Do, Octave: score.Down(2)}, ""},
		{"m+2", score.Note{Base: score.Mi, Octave: score.Up(2)}, ""},
		{"f-2", score.Note{Base: score.Fa, Octave: score.Down(2)}, ""},
		{"ri'", score.Note{Base: score.Re, Variant: score.VariantRaised, Octave: score.Up(1)}, ""},
		{"ma,", score.Note{Base: score.Mi, Variant: score.VariantLowered, Octave: score.Down(1)}, ""},
		{"si+1", score.Note{Base: score.Sol, Variant: score.VariantRaised, Octave: score.Up(1)}, ""},
		{"ra-3", score.Note{Base: score.Re, Variant: score.VariantLowered, Octave: score.Down(3)}, ""},
		{"s+65535", score.Note{Base: score.Sol, Octave: score.Up(65535)}, ""},
		// a following beat turns the commas into separators
		{"d, r", score.Note{Base: score.Do}, ", r"},
		{"d,,r", score.Note{Base: score.Do}, ",,r"},
		// a sign without digits is not an octave
		{"d-", score.Note{Base: score.Do}, "-"},
		{"d :", score.Note{Base: score.Do}, " :"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, rest, err := ParseNote(tt.input)
			if err != nil {
				t.Fatalf("ParseNote(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseNote(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if rest != tt.rest {
				t.Errorf("rest = %q, want %q", rest, tt.rest)
			}
		})
	}
}

func TestParseNoteInvalid(t *testing.T) {
	_, rest, err := ParseNote("x")
	if err == nil {
		t.Fatal("ParseNote(\"x\") should fail")
	}
	var se *errors.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("error type = %T, want *errors.SyntaxError", err)
	}
	if se.Offset != 0 || se.Line != 1 || se.Column != 1 {
		t.Errorf("position = %d (%d:%d), want 0 (1:1)", se.Offset, se.Line, se.Column)
	}
	if se.Kind != errors.KindVoice {
		t.Errorf("Kind = %q, want %q", se.Kind, errors.KindVoice)
	}
	if se.Found != "x" {
		t.Errorf("Found = %q, want %q", se.Found, "x")
	}
	if rest != "x" {
		t.Errorf("rest = %q, want input back", rest)
	}
	if !errors.Is(err, errors.ErrSyntax) {
		t.Error("error should match ErrSyntax")
	}
}

func TestParseNoteOverflow(t *testing.T) {
	tests := []struct {
		input  string
		offset int
	}{
		{"d+65536", 2},
		{"ri-99999999", 3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, _, err := ParseNote(tt.input)
			if !errors.Is(err, errors.ErrOverflow) {
				t.Fatalf("ParseNote(%q) error = %v, want overflow", tt.input, err)
			}
			var oe *errors.OverflowError
			if !errors.As(err, &oe) {
				t.Fatalf("error type = %T, want *errors.OverflowError", err)
			}
			if oe.Offset != tt.offset {
				t.Errorf("Offset = %d, want %d", oe.Offset, tt.offset)
			}
		})
	}
}
