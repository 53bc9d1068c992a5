package charclass

import (
	"strings"

	"github.com/andersk/greenery/errs"
	"github.com/andersk/greenery/symbol"
)

// EscapeChar returns the source spelling for s if it needs escaping
// outside a bracket (a metacharacter or a named escape), and ok=false if
// it can be emitted literally.
func EscapeChar(s symbol.Symbol) (string, bool) {
	if spelling, ok := namedEscapes[s]; ok {
		return spelling, true
	}
	if outsideMetachar[s] {
		return `\` + s.String(), true
	}
	return "", false
}

// UnescapeNamed looks up a named single-character escape (\t \n \v \f \r)
// by its source spelling; used by the parser.
func UnescapeNamed(spelling string) (symbol.Symbol, bool) {
	s, ok := namedEscapesBySpelling[spelling]
	return s, ok
}

// IsOutsideMetachar reports whether s must be escaped outside a bracketed
// class.
func IsOutsideMetachar(s symbol.Symbol) bool { return outsideMetachar[s] }

// IsInsideMetachar reports whether s must be escaped inside a bracketed
// class.
func IsInsideMetachar(s symbol.Symbol) bool { return insideMetachar[s] }

// minRunLength is the shortest run of an allowable range worth collapsing
// into "X-Y" form; shorter runs are cheaper to print literally (spec
// §4.1).
const minRunLength = 4

// Render implements spec §4.1's pretty-printing algorithm.
func (c CharClass) Render() (string, error) {
	if c.IsEmpty() {
		return "", &errs.NotRenderableError{Reason: "empty CharClass has no textual form"}
	}
	if text, ok := shorthandFor(c); ok {
		return text, nil
	}
	if c.negated {
		return "[^" + bracketInterior(c.Symbols()) + "]", nil
	}
	if len(c.set) == 1 {
		only := c.Symbols()[0]
		if spelling, ok := EscapeChar(only); ok {
			return spelling, nil
		}
		return only.String(), nil
	}
	return "[" + bracketInterior(c.Symbols()) + "]", nil
}

// String renders c, falling back to a diagnostic placeholder for the
// unrenderable empty class rather than panicking; callers that need the
// NotRenderableError should call Render directly.
func (c CharClass) String() string {
	s, err := c.Render()
	if err != nil {
		return "[]"
	}
	return s
}

// bracketInterior renders the body of a [...]/[^...] class: sorted
// symbols with same-allowable-range runs of at least minRunLength
// collapsed to "X-Y", and bracket-special characters escaped.
func bracketInterior(sorted []symbol.Symbol) string {
	var b strings.Builder
	i := 0
	for i < len(sorted) {
		runEnd := i
		for runEnd+1 < len(sorted) && isConsecutiveInSameRange(sorted[runEnd], sorted[runEnd+1]) {
			runEnd++
		}
		runLen := runEnd - i + 1
		if runLen >= minRunLength {
			writeBracketSymbol(&b, sorted[i])
			b.WriteByte('-')
			writeBracketSymbol(&b, sorted[runEnd])
			i = runEnd + 1
			continue
		}
		writeBracketSymbol(&b, sorted[i])
		i++
	}
	return b.String()
}

func isConsecutiveInSameRange(a, b symbol.Symbol) bool {
	if b != a+1 {
		return false
	}
	for _, r := range allowableRanges {
		if a >= r.lo && a <= r.hi && b >= r.lo && b <= r.hi {
			return true
		}
	}
	return false
}

func writeBracketSymbol(b *strings.Builder, s symbol.Symbol) {
	if spelling, ok := namedEscapes[s]; ok {
		b.WriteString(spelling)
		return
	}
	if insideMetachar[s] {
		b.WriteByte('\\')
	}
	b.WriteString(s.String())
}
