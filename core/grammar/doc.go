// Package grammar parses the plain-text tonic sol-fa notation into a score.Document.
//
// The engine is a recursive-descent analyzer that reads the raw text directly;
// there is no token stream. Each rule works on a shared cursor and ordered
// alternatives are tried against a saved cursor position that is restored
// before the next alternative runs.
//
// # Rules
//
// Every rule is exposed on its own and returns the residual input:
//
//	note, rest, err := grammar.ParseNote("ti,")
//	measures, rest, err := grammar.ParseMeasureLine("| d : r | m : f ||")
//
// Parse reads a whole document and requires the input to be fully consumed.
//
// # Rhythm Precedence
//
// Beat divisions compose right-associatively at three levels. ":" binds
// loosest, "." next and "," tightest, so "d : r . m , f" reads as
// d : (r . (m , f)).
//
// # Comma Disambiguation
//
// A comma run directly after a note is an octave-down marker unless another
// beat follows it, in which case it is a quarter-division separator. The rule
// probes for the following beat without consuming input. Probe results and
// the divisions parsed inside probes are cached per offset, so long comma
// chains parse in linear time. A digit run too wide for 16 bits only makes a
// probe fail; the overflow is reported when the main parse reaches it.
//
// # Errors
//
// A failed parse returns a *errors.SyntaxError located at the farthest input
// position where no alternative matched. Digit runs are 16 bits wide; wider
// values fail with *errors.OverflowError. No partial tree is ever returned.
package grammar
