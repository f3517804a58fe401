package grammar

import (
	"reflect"
	"testing"

	"github.com/solfaml/solfaml-parser/core/errors"
	"github.com/solfaml/solfaml-parser/core/score"
)

func TestParseDynamics(t *testing.T) {
	got, rest, err := ParseDynamics("|: f{1} <{3,7} ^{8} mp{10} ||")
	if err != nil {
		t.Fatalf("ParseDynamics failed: %v", err)
	}
	want := []score.Dynamic{
		&score.Level{Pos: 1, Kind: score.LevelF},
		&score.Crescendo{Start: 3, End: 7},
		&score.Accent{Pos: 8},
		&score.Level{Pos: 10, Kind: score.LevelMP},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseDynamics() = %#v, want %#v", got, want)
	}
	if rest != "" {
		t.Errorf("rest = %q, want empty", rest)
	}
}

func TestParseDynamicsUngated(t *testing.T) {
	got, rest, err := ParseDynamics("f{1} <{3,7} ^{8} mp{10} ||")
	if err != nil {
		t.Fatalf("ParseDynamics failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ParseDynamics() = %v, want empty", got)
	}
	if rest != "" {
		t.Errorf("rest = %q, want empty", rest)
	}
}

func TestParseDynamicsMarks(t *testing.T) {
	tests := []struct {
		input string
		want  score.Dynamic
	}{
		{"|: fff{2}", &score.Level{Pos: 2, Kind: score.LevelFFF}},
		{"|: ff{2}", &score.Level{Pos: 2, Kind: score.LevelFF}},
		{"|: mf{2}", &score.Level{Pos: 2, Kind: score.LevelMF}},
		{"|: p{2}", &score.Level{Pos: 2, Kind: score.LevelP}},
		{"|: pp{2}", &score.Level{Pos: 2, Kind: score.LevelPP}},
		{"|: ppp{2}", &score.Level{Pos: 2, Kind: score.LevelPPP}},
		{"|: f {  4 }", &score.Level{Pos: 4, Kind: score.LevelF}},
		{"|: DC{9}", &score.DC{Pos: 9}},
		{"|: ^ {8}", &score.Accent{Pos: 8}},
		{"|: >{1,3}", &score.Decrescendo{Start: 1, End: 3}},
		{"|: <{ 4 , 7 }", &score.Crescendo{Start: 4, End: 7}},
		{"|: f{65535}", &score.Level{Pos: 65535, Kind: score.LevelF}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, _, err := ParseDynamics(tt.input)
			if err != nil {
				t.Fatalf("ParseDynamics(%q) failed: %v", tt.input, err)
			}
			if len(got) != 1 {
				t.Fatalf("len = %d, want 1", len(got))
			}
			if !reflect.DeepEqual(got[0], tt.want) {
				t.Errorf("ParseDynamics(%q) = %#v, want %#v", tt.input, got[0], tt.want)
			}
		})
	}
}

func TestParseDynamicsLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int
		rest  string
	}{
		{"consumes newline", "|: f{1} ||\n| d ||", 1, "| d ||"},
		{"crlf", "|: f{1} |\r\n| d ||", 1, "| d ||"},
		{"gate only", "|: ||\n", 0, ""},
		{"stops at bad mark", "|: f{1} q{2} ||", 1, "q{2} ||"},
		{"no dynamics line", "| d : r ||", 0, " d : r ||"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest, err := ParseDynamics(tt.input)
			if err != nil {
				t.Fatalf("ParseDynamics(%q) failed: %v", tt.input, err)
			}
			if len(got) != tt.count {
				t.Errorf("len = %d, want %d", len(got), tt.count)
			}
			if rest != tt.rest {
				t.Errorf("rest = %q, want %q", rest, tt.rest)
			}
		})
	}
}

func TestParseDynamicsOverflow(t *testing.T) {
	_, _, err := ParseDynamics("|: <{3,70000} ||")
	if !errors.Is(err, errors.ErrOverflow) {
		t.Fatalf("ParseDynamics() error = %v, want overflow", err)
	}
	var oe *errors.OverflowError
	if !errors.As(err, &oe) {
		t.Fatalf("error type = %T, want *errors.OverflowError", err)
	}
	if oe.Offset != 7 || oe.Digits != "70000" {
		t.Errorf("OverflowError = %+v, want offset 7 digits 70000", oe)
	}
}
