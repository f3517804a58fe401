package grammar

import (
	"bytes"
	"log/slog"

	"github.com/solfaml/solfaml-parser/core/score"
)

func nm(base score.BaseNote) *score.NoteMeasure {
	return &score.NoteMeasure{Note: score.Note{Base: base}}
}

func nmOf(n score.Note) *score.NoteMeasure {
	return &score.NoteMeasure{Note: n}
}

func rst() *score.EmptyNote { return &score.EmptyNote{} }

func normal(l, r score.Measure) *score.BeatDivision {
	return &score.BeatDivision{Kind: score.DivisionNormal, Left: l, Right: r}
}

func half(l, r score.Measure) *score.BeatDivision {
	return &score.BeatDivision{Kind: score.DivisionHalf, Left: l, Right: r}
}

func quarter(l, r score.Measure) *score.BeatDivision {
	return &score.BeatDivision{Kind: score.DivisionQuarter, Left: l, Right: r}
}

func txt(s string) *score.Text { return &score.Text{Value: s} }

func space(l, r score.LyricsChunk) *score.Space { return &score.Space{Left: l, Right: r} }

func chunk(c score.LyricsChunk) *score.Chunk { return &score.Chunk{Chunk: c} }

// captureLogger returns a JSON logger writing to the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
