// Package multiplier implements the (min, max) repetition scalar and its
// algebra: multiplication, addition, subtraction, and "common multiplicity"
// intersection, all defined over ℕ ∪ {∞}.
package multiplier

import (
	"fmt"
	"math"

	"github.com/andersk/greenery/errs"
)

// Bound is one endpoint of a Multiplier: a non-negative integer, or
// Unbounded (∞).
type Bound int

// Unbounded represents ∞. Any finite Bound is strictly less than it.
const Unbounded Bound = math.MaxInt

// Multiplier is a (min, max) pair over ℕ ∪ {∞} with min <= max.
type Multiplier struct {
	min, max Bound
}

// New constructs a Multiplier, rejecting negative bounds or max < min.
func New(min, max Bound) (Multiplier, error) {
	if min < 0 || (max < 0 && max != Unbounded) {
		return Multiplier{}, &errs.DomainError{Reason: fmt.Sprintf("negative multiplier bound (%d,%d)", min, max)}
	}
	if max < min {
		return Multiplier{}, &errs.DomainError{Reason: fmt.Sprintf("multiplier max < min (%d,%d)", min, max)}
	}
	return Multiplier{min: min, max: max}, nil
}

// MustNew is New but panics on a malformed bound pair; used for the
// module-level named constants, which are known-good at compile time.
func MustNew(min, max Bound) Multiplier {
	m, err := New(min, max)
	if err != nil {
		panic(err)
	}
	return m
}

// Named constants, deep-frozen at package init per spec §3.
var (
	Zero = MustNew(0, 0)
	QM   = MustNew(0, 1)
	One  = MustNew(1, 1)
	Star = MustNew(0, Unbounded)
	Plus = MustNew(1, Unbounded)
	Inf  = MustNew(Unbounded, Unbounded)
)

// Min returns the multiplier's minimum bound.
func (m Multiplier) Min() Bound { return m.min }

// Max returns the multiplier's maximum bound.
func (m Multiplier) Max() Bound { return m.max }

// Mandatory is the derived (mandatory, optional) view: the mandatory
// component equals min.
func (m Multiplier) Mandatory() Bound { return m.min }

// Optional is the derived (mandatory, optional) view's optional
// component: max - min, with ∞ - n = ∞ and ∞ - ∞ = 0 by the convention
// spec §3 calls load-bearing.
func (m Multiplier) Optional() Bound {
	if m.max == Unbounded && m.min == Unbounded {
		return 0
	}
	if m.max == Unbounded {
		return Unbounded
	}
	return m.max - m.min
}

// fromMandatoryOptional reconstructs (min, max) from a (mandatory,
// optional) pair per spec §4.2: if mandatory is ∞ and optional is 0,
// min = max = ∞; otherwise min = mandatory, max = mandatory + optional.
func fromMandatoryOptional(mandatory, optional Bound) Multiplier {
	if mandatory == Unbounded && optional == 0 {
		return Multiplier{min: Unbounded, max: Unbounded}
	}
	max := addBound(mandatory, optional)
	return Multiplier{min: mandatory, max: max}
}

func addBound(a, b Bound) Bound {
	if a == Unbounded || b == Unbounded {
		return Unbounded
	}
	return a + b
}

func mulBound(a, b Bound) Bound {
	if a == 0 || b == 0 {
		// 0 * n = 0, except the spec calls for ∞ to be absorbing even
		// against a zero factor when either side is already ∞: 0*∞ = ∞*0 = ∞.
		if a == Unbounded || b == Unbounded {
			return Unbounded
		}
		return 0
	}
	if a == Unbounded || b == Unbounded {
		return Unbounded
	}
	return a * b
}

// Multiply implements A ⊗ B: component-wise multiplication, with
// 0 * ∞ = ∞ * 0 = ∞.
func Multiply(a, b Multiplier) Multiplier {
	return Multiplier{min: mulBound(a.min, b.min), max: mulBound(a.max, b.max)}
}

// Add implements A ⊕ B: component-wise addition, with n + ∞ = ∞.
func Add(a, b Multiplier) Multiplier {
	return Multiplier{min: addBound(a.min, b.min), max: addBound(a.max, b.max)}
}

// Subtract implements A ⊖ B, operating on the (mandatory, optional) view.
// Per component: finite - finite subtracts normally; ∞ - ∞ = 0 by
// convention; ∞ - n = ∞; n - ∞ is undefined and returns a DomainError.
func Subtract(a, b Multiplier) (Multiplier, error) {
	mandatory, err := subBound(a.Mandatory(), b.Mandatory())
	if err != nil {
		return Multiplier{}, err
	}
	optional, err := subBound(a.Optional(), b.Optional())
	if err != nil {
		return Multiplier{}, err
	}
	return fromMandatoryOptional(mandatory, optional), nil
}

func subBound(a, b Bound) (Bound, error) {
	switch {
	case a == Unbounded && b == Unbounded:
		return 0, nil
	case a == Unbounded:
		return Unbounded, nil
	case b == Unbounded:
		return 0, &errs.DomainError{Reason: fmt.Sprintf("cannot subtract unbounded from finite bound %d", a)}
	default:
		if a < b {
			return 0, &errs.DomainError{Reason: fmt.Sprintf("multiplier subtraction would go negative (%d - %d)", a, b)}
		}
		return a - b, nil
	}
}

// Intersect implements A ⊓ B, the "common multiplicity": per component,
// take the min, treating ∞ as larger than every finite value.
func Intersect(a, b Multiplier) Multiplier {
	mandatory := minBound(a.Mandatory(), b.Mandatory())
	optional := minBound(a.Optional(), b.Optional())
	return fromMandatoryOptional(mandatory, optional)
}

func minBound(a, b Bound) Bound {
	if a == Unbounded {
		return b
	}
	if b == Unbounded {
		return a
	}
	if a < b {
		return a
	}
	return b
}

// Contains reports whether n falls within [min, max]. No other package
// in this module calls it; the parser validates repeat counts through
// New.
func (m Multiplier) Contains(n Bound) bool {
	return n >= m.min && (m.max == Unbounded || n <= m.max)
}

// Equal reports structural equality.
func (m Multiplier) Equal(o Multiplier) bool {
	return m.min == o.min && m.max == o.max
}

// IsZero reports whether m denotes no repetitions at all.
func (m Multiplier) IsZero() bool {
	return m.min == 0 && m.max == 0
}

// IsOne reports whether m denotes exactly one repetition.
func (m Multiplier) IsOne() bool {
	return m.min == 1 && m.max == 1
}

// String renders the multiplier's textual quantifier form: "" for One,
// "?", "*", "+", or a brace form. Callers needing NotRenderable semantics
// for Zero/Inf use Render instead.
func (m Multiplier) String() string {
	s, err := m.Render()
	if err != nil {
		return fmt.Sprintf("<%d,%d>", m.min, m.max)
	}
	return s
}

// Render renders the quantifier suffix form used after a multiplicand:
// "" (one), "?", "*", "+", "{n}", "{n,}", "{n,m}". Zero and Inf have no
// quantifier-suffix form on their own (Zero denotes "appears never",
// Inf denotes "unbounded on both ends", neither of which prints as a
// standalone suffix) and report NotRenderableError.
func (m Multiplier) Render() (string, error) {
	switch {
	case m.Equal(One):
		return "", nil
	case m.Equal(QM):
		return "?", nil
	case m.Equal(Star):
		return "*", nil
	case m.Equal(Plus):
		return "+", nil
	case m.max == 0:
		return "", &errs.NotRenderableError{Reason: "multiplier with max = 0 has no printable quantifier"}
	case m.min == Unbounded:
		return "", &errs.NotRenderableError{Reason: "multiplier with min = ∞ has no printable quantifier"}
	case m.min == m.max:
		return fmt.Sprintf("{%d}", m.min), nil
	case m.max == Unbounded:
		return fmt.Sprintf("{%d,}", m.min), nil
	default:
		return fmt.Sprintf("{%d,%d}", m.min, m.max), nil
	}
}
