// Package term implements the mutually recursive core term model: Mult
// pairs a multiplicand with a Multiplier, Conc is an ordered tuple of
// Mults, and Pattern is an unordered set of Concs. The three are one
// package because their constructors, equality, rendering, reduction, and
// FSM production all recurse into one another.
package term

import (
	"fmt"
	"strings"

	"github.com/andersk/greenery/charclass"
	"github.com/andersk/greenery/errs"
	"github.com/andersk/greenery/fsm"
	"github.com/andersk/greenery/multiplier"
	"github.com/andersk/greenery/symbol"
)

// Multiplicand is the sum type a Mult pairs with a Multiplier: either a
// CharClass or a Pattern. Go's interface dispatch gives this the
// compile-time exhaustiveness spec §9 asks a systems language for, in
// place of the informal "CharClass or Pattern" union.
type Multiplicand interface {
	IsMultiplicand()
}

// Mult is a multiplicand paired with a Multiplier (spec §4.3).
type Mult struct {
	x Multiplicand
	m multiplier.Multiplier
}

// NewMult builds a Mult from a multiplicand and multiplier.
func NewMult(x Multiplicand, m multiplier.Multiplier) Mult {
	return Mult{x: x, m: m}
}

// Multiplicand returns the paired multiplicand.
func (mu Mult) Multiplicand() Multiplicand { return mu.x }

// Multiplier returns the paired Multiplier.
func (mu Mult) Multiplier() multiplier.Multiplier { return mu.m }

func multiplicandEqual(a, b Multiplicand) bool {
	switch av := a.(type) {
	case charclass.CharClass:
		bv, ok := b.(charclass.CharClass)
		return ok && av.Equal(bv)
	case Pattern:
		bv, ok := b.(Pattern)
		return ok && av.Equal(bv)
	default:
		return false
	}
}

func multiplicandHash(x Multiplicand) uint64 {
	switch v := x.(type) {
	case charclass.CharClass:
		return v.Hash()
	case Pattern:
		return v.Hash()
	default:
		return 0
	}
}

// multiplicandKey renders a total-order sort key for a multiplicand,
// independent of renderability (used internally to give Pattern's
// set-of-Concs a canonical order for Equal/Hash; never exposed).
func multiplicandKey(x Multiplicand) string {
	switch v := x.(type) {
	case charclass.CharClass:
		return "c" + classKey(v)
	case Pattern:
		return "p" + v.sortKey()
	default:
		return "?"
	}
}

func classKey(c charclass.CharClass) string {
	var b strings.Builder
	if c.Negated() {
		b.WriteByte('!')
	}
	for _, s := range c.Symbols() {
		fmt.Fprintf(&b, "%d,", int32(s))
	}
	return b.String()
}

// Equal reports structural equality: equal multiplicands and equal
// multipliers.
func (mu Mult) Equal(o Mult) bool {
	return mu.m.Equal(o.m) && multiplicandEqual(mu.x, o.x)
}

func (mu Mult) hash() uint64 {
	return multiplicandHash(mu.x)*31 + uint64(mu.m.Min())*7 + uint64(mu.m.Max())
}

func (mu Mult) sortKey() string {
	return fmt.Sprintf("%d-%d:%s", mu.m.Min(), mu.m.Max(), multiplicandKey(mu.x))
}

// Subtract implements (x, μ) ⊖ (x, ν) = (x, μ ⊖ ν), requiring the two
// Mults share an equal multiplicand (spec §4.3); NoCommonMultiplicandError
// otherwise.
func (mu Mult) Subtract(o Mult) (Mult, error) {
	if !multiplicandEqual(mu.x, o.x) {
		return Mult{}, &errs.NoCommonMultiplicandError{Reason: "subtract requires equal multiplicands"}
	}
	m, err := multiplier.Subtract(mu.m, o.m)
	if err != nil {
		return Mult{}, err
	}
	return Mult{x: mu.x, m: m}, nil
}

// Intersect implements (x, μ) ⊓ (x, ν) = (x, μ ⊓ ν), requiring an equal
// multiplicand (spec §4.3).
func (mu Mult) Intersect(o Mult) (Mult, error) {
	if !multiplicandEqual(mu.x, o.x) {
		return Mult{}, &errs.NoCommonMultiplicandError{Reason: "intersect requires equal multiplicands"}
	}
	return Mult{x: mu.x, m: multiplier.Intersect(mu.m, o.m)}, nil
}

// FSM delegates to the multiplicand's acceptor, then applies the FSM
// repetition operator for (min, max) (spec §4.3).
func (mu Mult) FSM(alphabet []symbol.Symbol) *fsm.FSM {
	base := multiplicandFSM(mu.x, alphabet)
	return fsm.Repeat(base, boundToFSM(mu.m.Min()), boundToFSM(mu.m.Max()))
}

func multiplicandFSM(x Multiplicand, alphabet []symbol.Symbol) *fsm.FSM {
	switch v := x.(type) {
	case charclass.CharClass:
		return v.FSM(alphabet)
	case Pattern:
		return v.FSM(alphabet)
	default:
		panic("term: multiplicand is neither CharClass nor Pattern")
	}
}

func boundToFSM(b multiplier.Bound) int {
	if b == multiplier.Unbounded {
		return fsm.Unbounded
	}
	return int(b)
}

// Render implements spec §4.3's pretty-printing: for an equal (min, max),
// pick whichever of the repeated-literal or braced-quantifier spelling is
// shorter; otherwise the multiplicand (parenthesized if it is a Pattern)
// followed by the multiplier's textual suffix.
func (mu Mult) Render() (string, error) {
	inner, err := renderMultiplicand(mu.x)
	if err != nil {
		return "", err
	}
	if mu.m.Equal(multiplier.One) {
		return inner, nil
	}
	if mu.m.Min() == mu.m.Max() && mu.m.Min() != multiplier.Unbounded {
		n := int(mu.m.Min())
		if n == 0 {
			return "", &errs.NotRenderableError{Reason: "a multiplier of {0} has no textual form"}
		}
		literal := strings.Repeat(inner, n)
		braced := fmt.Sprintf("%s{%d}", inner, n)
		if len(literal) <= len(braced) {
			return literal, nil
		}
		return braced, nil
	}
	suffix, err := mu.m.Render()
	if err != nil {
		return "", err
	}
	return inner + suffix, nil
}

func renderMultiplicand(x Multiplicand) (string, error) {
	switch v := x.(type) {
	case charclass.CharClass:
		return v.Render()
	case Pattern:
		inner, err := v.Render()
		if err != nil {
			return "", err
		}
		return "(" + inner + ")", nil
	default:
		panic("term: multiplicand is neither CharClass nor Pattern")
	}
}
