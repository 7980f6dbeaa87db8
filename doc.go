// Package fmtcore implements a format-directed text-rendering engine: given
// a format string containing literal characters and typed "~" directives,
// plus a positional argument list, it renders either a rune sequence or a
// UTF-8 byte sequence.
//
// # Directive syntax
//
// A directive has the shape:
//
//	~[-][Width|*][.[Precision|*]][.PadChar|.*][t][l][k|K]ControlChar
//
// Width and Precision are decimal digits or "*" (consume one integer
// argument). PadChar is a single code point or "*" (consumes one rune
// argument). The modifier flags t/l/k/K select unicode encoding, disable
// string-heuristic printing, and select maps ordering, respectively. The
// control char alphabet is:
//
//	c ~ n i b B x X + # e f g s w W p P
//
// # Two-pass rendering
//
// [RenderChars] and [RenderBytes] work in two passes. The first pass
// renders every bounded ("small") directive in place and counts the
// unbounded ("big") directives — ~s, ~w, ~W, ~p, ~P — that must share
// whatever character budget [WithCharsLimit] imposes. The second pass
// renders each big directive with an equal share of the remaining budget,
// recomputed after each one so that directives which under-use their share
// leave the surplus for the ones that follow.
//
// # Collaborators
//
// ~w/~W delegate to a [Writer] and ~p/~P delegate to a [PrettyPrinter].
// Both are external collaborators by design — this package supplies
// minimal defaults ([DefaultWriter], [DefaultPrettyPrinter]) but callers
// are expected to supply their own via [WithWriter] / [WithPrettyPrinter]
// for anything beyond basic use.
//
// # Errors
//
// Format failures are fatal and return no partial output: a
// [*FormatError] wrapping one of [ErrBadFormat], [ErrMissingArg],
// [ErrBadArgType], [ErrBadPrecision], or [ErrBadBase]. [Parse] reports
// malformed directives, missing arguments and wrongly typed inline
// arguments; [ErrBadPrecision], [ErrBadBase] and wrongly typed values for
// small directives are reported by the first rendering pass. The only silent,
// by-design recovery is that a ~ts directive fed invalid UTF-8 falls back
// to interpreting the bytes as Latin-1.
package fmtcore
