// Package errs collects the closed error taxonomy shared across the
// algebra packages (spec §7). Keeping it dependency-free lets every other
// package, including the leaves, report these without import cycles.
package errs

import "fmt"

// ParseError signals that input text does not form a valid regex at some
// rune position. Begin/End delimit the offending span in the source text,
// counted in runes.
type ParseError struct {
	Begin, End int
	Cause      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: %s", e.Begin, e.Cause)
}

// NotRenderableError signals that render was invoked on a term whose
// denotation has no textual form: an empty CharClass, a Multiplier with
// max=0 or min=∞, or an empty Pattern.
type NotRenderableError struct {
	Reason string
}

func (e *NotRenderableError) Error() string {
	return "not renderable: " + e.Reason
}

// NoCommonMultiplicandError signals that ⊓ or ⊖ was attempted on two
// Mults whose multiplicands differ. It surfaces to callers (spec §7);
// it is not a Reducer control-flow signal.
type NoCommonMultiplicandError struct {
	Reason string
}

func (e *NoCommonMultiplicandError) Error() string {
	return "no common multiplicand: " + e.Reason
}

// NoMultPrefixError signals that common-prefix extraction found no
// non-trivial shared Mult. It is an expected internal control-flow signal
// caught by the Reducer; it never escapes to callers (spec §7).
type NoMultPrefixError struct{ Reason string }

func (e *NoMultPrefixError) Error() string { return "no mult prefix: " + e.Reason }

// NoMultSuffixError is NoMultPrefixError's mirror for suffix extraction.
type NoMultSuffixError struct{ Reason string }

func (e *NoMultSuffixError) Error() string { return "no mult suffix: " + e.Reason }

// DomainError signals a multiplier subtraction that is not well-defined
// (finite - ∞), or construction of a Multiplier with bad bounds.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return "domain error: " + e.Reason
}

// StructuralError is a guard against building a term with the wrong kind
// of child. Go's type system prevents most of these at compile time (spec
// §9); this remains for the runtime shape check the `-` combinator makes
// on operands of type interface{} (term.Subtract).
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return "structural error: " + e.Reason
}
