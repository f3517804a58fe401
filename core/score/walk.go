package score

// Walk visits m and its descendants in pre-order. Returning false from fn
// skips the children of the visited node.
func Walk(m Measure, fn func(Measure) bool) {
	if m == nil || !fn(m) {
		return
	}
	switch m := m.(type) {
	case *BeatDivision:
		Walk(m.Left, fn)
		Walk(m.Right, fn)
	case *UnderlinedMeasure:
		Walk(m.Inner, fn)
	case *Repeated:
		Walk(m.Inner, fn)
	case *RepeatStart:
		Walk(m.Inner, fn)
	case *RepeatEnd:
		Walk(m.Inner, fn)
	}
}

// CountNotes returns the number of sounded notes and rests in ms.
func CountNotes(ms []Measure) (notes, rests int) {
	for _, m := range ms {
		Walk(m, func(n Measure) bool {
			switch n.(type) {
			case *NoteMeasure:
				notes++
			case *EmptyNote:
				rests++
			}
			return true
		})
	}
	return notes, rests
}

// Syllables returns the leaf chunks of a verse (Text and Placeholder) in order.
func Syllables(m LyricsMeasure) []LyricsChunk {
	var out []LyricsChunk
	var measure func(LyricsMeasure)
	var chunk func(LyricsChunk)

	chunk = func(c LyricsChunk) {
		switch c := c.(type) {
		case *Text, *Placeholder:
			out = append(out, c)
		case *NewLineSuffixed:
			chunk(c.Chunk)
		case *Split:
			chunk(c.Left)
			chunk(c.Right)
		case *Space:
			chunk(c.Left)
			chunk(c.Right)
		case *Elision:
			chunk(c.Left)
			chunk(c.Right)
		}
	}
	measure = func(m LyricsMeasure) {
		switch m := m.(type) {
		case *Chunk:
			chunk(m.Chunk)
		case *Join:
			measure(m.Left)
			measure(m.Right)
		case *Tie:
			measure(m.Left)
			measure(m.Right)
		}
	}

	measure(m)
	return out
}
