// Package score provides the document tree for four-voice tonic sol-fa vocal scores.
//
// A score is written as a header of free-form metadata followed by staves. Each
// staff holds four synchronized voice parts, optional expression dynamics and
// optional per-voice verse lyrics.
//
// # Core Types
//
// The tree is organized hierarchically:
//
//   - Document: the header plus an ordered sequence of staves
//   - Staff: dynamics, measure columns (one Measure per voice) and voice lyrics
//   - Measure: a rest, a note, or a binary beat division of two measures
//   - LyricsTree: one verse, tagged by its prefix marker ("1.", ">")
//
// # Tagged Variants
//
// Dynamic, Measure, LyricsChunk and LyricsMeasure are closed interfaces. Each
// concrete variant is a distinct Go type; consumers switch on the dynamic type:
//
//	switch m := m.(type) {
//	case *score.BeatDivision:
//	    walk(m.Left)
//	    walk(m.Right)
//	case *score.NoteMeasure:
//	    use(m.Note)
//	}
//
// Recursive nodes own their children exclusively. Trees are never mutated
// after the grammar builds them.
//
// # Durations
//
// The tree records only the structural nesting of beat subdivisions
// (normal, half, quarter). It does not compute absolute note durations.
package score
