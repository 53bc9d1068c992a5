// Package charclass implements CharClass: a possibly-negated finite set of
// symbols, plus its algebra (union, intersection, difference, complement,
// subset) and its FSM production and textual rendering.
package charclass

import (
	"hash/fnv"

	"github.com/andersk/greenery/symbol"
)

// CharClass is a possibly-negated finite symbol set. When negated is
// false it denotes exactly the set; when true it denotes the complement
// of the set within whatever ambient alphabet it is later evaluated
// against (the complement is never materialized until one is supplied).
type CharClass struct {
	set     map[symbol.Symbol]struct{}
	negated bool
	hash    uint64
}

// IsMultiplicand marks CharClass as a valid Mult multiplicand (see
// term.Multiplicand).
func (CharClass) IsMultiplicand() {}

// New builds a positive CharClass over the given symbols, collapsing
// duplicates (spec §3: S is a set).
func New(syms ...symbol.Symbol) CharClass {
	return build(syms, false)
}

// NewNegated builds a negated CharClass: the complement of the given
// symbols within whatever alphabet it is later evaluated against.
func NewNegated(syms ...symbol.Symbol) CharClass {
	return build(syms, true)
}

func build(syms []symbol.Symbol, negated bool) CharClass {
	set := make(map[symbol.Symbol]struct{}, len(syms))
	for _, s := range syms {
		set[s] = struct{}{}
	}
	return CharClass{set: set, negated: negated, hash: digest(set, negated)}
}

func digest(set map[symbol.Symbol]struct{}, negated bool) uint64 {
	syms := make([]symbol.Symbol, 0, len(set))
	for s := range set {
		syms = append(syms, s)
	}
	syms = symbol.Sort(syms)
	h := fnv.New64a()
	if negated {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	for _, s := range syms {
		var b [4]byte
		v := uint32(int32(s))
		b[0], b[1], b[2], b[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
		h.Write(b[:])
	}
	return h.Sum64()
}

// Empty is the empty CharClass (S = ∅, negated = false): it denotes the
// empty language over symbols.
var Empty = New()

// Dot is the "dot" class (S = ∅, negated = true): it denotes every
// symbol.
var Dot = NewNegated()

// Symbols returns the sorted, deduplicated set of symbols this class was
// built from (not its denotation — for a negated class this is the
// generator set, not the complement).
func (c CharClass) Symbols() []symbol.Symbol {
	syms := make([]symbol.Symbol, 0, len(c.set))
	for s := range c.set {
		syms = append(syms, s)
	}
	return symbol.Sort(syms)
}

// Negated reports whether this class denotes a complement.
func (c CharClass) Negated() bool { return c.negated }

// Len returns the size of the underlying generator set (not the
// denotation).
func (c CharClass) Len() int { return len(c.set) }

// Has reports whether s belongs to the class's denotation given the
// supplied alphabet is irrelevant for membership within the generator set
// itself: for a positive class, s is in S; for a negated class, s is not
// in S (the complement is evaluated lazily against whatever alphabet a
// caller has in mind).
func (c CharClass) Has(s symbol.Symbol) bool {
	_, in := c.set[s]
	if c.negated {
		return !in
	}
	return in
}

// Equal reports structural equality: same negation flag, same generator
// set.
func (c CharClass) Equal(o CharClass) bool {
	if c.negated != o.negated || len(c.set) != len(o.set) {
		return false
	}
	for s := range c.set {
		if _, ok := o.set[s]; !ok {
			return false
		}
	}
	return true
}

// Hash returns a stable hash consistent with Equal.
func (c CharClass) Hash() uint64 { return c.hash }

// IsEmpty reports whether c denotes the empty language.
func (c CharClass) IsEmpty() bool {
	return !c.negated && len(c.set) == 0
}

// IsDot reports whether c denotes every symbol.
func (c CharClass) IsDot() bool {
	return c.negated && len(c.set) == 0
}

// Everythingbut materializes the complement of c against a concrete
// alphabet, returning a positive CharClass rather than a lazily-negated
// one. Ported from lego.py's negate/materialization helpers (spec_full
// §4); used by the FSM bridge when a negated class needs a printable,
// alphabet-bound stand-in.
func Everythingbut(c CharClass, alphabet []symbol.Symbol) CharClass {
	syms := make([]symbol.Symbol, 0, len(alphabet))
	for _, s := range alphabet {
		if !c.Has(s) {
			syms = append(syms, s)
		}
	}
	return New(syms...)
}

// Complement swaps the negation flag (spec §4.1).
func Complement(c CharClass) CharClass {
	return CharClass{set: c.set, negated: !c.negated, hash: digest(c.set, !c.negated)}
}

func setUnion(a, b map[symbol.Symbol]struct{}) map[symbol.Symbol]struct{} {
	out := make(map[symbol.Symbol]struct{}, len(a)+len(b))
	for s := range a {
		out[s] = struct{}{}
	}
	for s := range b {
		out[s] = struct{}{}
	}
	return out
}

func setIntersection(a, b map[symbol.Symbol]struct{}) map[symbol.Symbol]struct{} {
	small, big := a, b
	if len(big) < len(small) {
		small, big = big, small
	}
	out := make(map[symbol.Symbol]struct{})
	for s := range small {
		if _, ok := big[s]; ok {
			out[s] = struct{}{}
		}
	}
	return out
}

func setDifference(a, b map[symbol.Symbol]struct{}) map[symbol.Symbol]struct{} {
	out := make(map[symbol.Symbol]struct{}, len(a))
	for s := range a {
		if _, ok := b[s]; !ok {
			out[s] = struct{}{}
		}
	}
	return out
}

func setSubset(a, b map[symbol.Symbol]struct{}) bool {
	for s := range a {
		if _, ok := b[s]; !ok {
			return false
		}
	}
	return true
}

func fromSet(set map[symbol.Symbol]struct{}, negated bool) CharClass {
	return CharClass{set: set, negated: negated, hash: digest(set, negated)}
}

// Union implements spec §4.1's four-case union truth table.
func Union(a, b CharClass) CharClass {
	switch {
	case !a.negated && !b.negated:
		return fromSet(setUnion(a.set, b.set), false)
	case a.negated && b.negated:
		return fromSet(setIntersection(a.set, b.set), true)
	case a.negated && !b.negated:
		return fromSet(setDifference(a.set, b.set), true)
	default: // !a.negated && b.negated
		return fromSet(setDifference(b.set, a.set), true)
	}
}

// Intersection is the De Morgan dual of Union (spec §4.1).
func Intersection(a, b CharClass) CharClass {
	return Complement(Union(Complement(a), Complement(b)))
}

// Difference implements A - B by cases on negation (spec §4.1):
// A - B = A ∩ ¬B (spec §8 property 4).
func Difference(a, b CharClass) CharClass {
	return Intersection(a, Complement(b))
}

// IsSubset implements spec §4.1's issubset: ¬A ⊆ ¬B ⟺ B ⊆ A in the
// finite-set sense, with positive/negative operand cases handled
// directly rather than via that identity (it would recurse forever on
// two positive operands).
func IsSubset(a, b CharClass) bool {
	switch {
	case !a.negated && !b.negated:
		return setSubset(a.set, b.set)
	case a.negated && b.negated:
		// ¬A ⊆ ¬B ⟺ B ⊆ A.
		return setSubset(b.set, a.set)
	case !a.negated && b.negated:
		// A positive can be a subset of a positive-complement only if A
		// is disjoint from B's generator set.
		return len(setIntersection(a.set, b.set)) == 0
	default: // a.negated && !b.negated
		// ¬A ⊆ B (B positive, finite) is only possible if the ambient
		// alphabet itself is finite and wholly covered by B together
		// with A's generator set; without a concrete alphabet this can
		// never be shown to hold from the generator sets alone.
		return false
	}
}
