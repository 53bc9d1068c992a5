package term

import (
	"hash/fnv"
	"strings"

	"github.com/andersk/greenery/fsm"
	"github.com/andersk/greenery/symbol"
)

// Conc is an ordered tuple of Mults (spec §4.4). The empty Conc
// (Emptystring) denotes {""}.
type Conc struct {
	mults []Mult
	hash  uint64
}

// NewConc builds an ordered Conc from the given Mults.
func NewConc(mults ...Mult) Conc {
	cp := append([]Mult(nil), mults...)
	return Conc{mults: cp, hash: concHash(cp)}
}

// Emptystring is the empty Conc, denoting {""}.
var Emptystring = NewConc()

func concHash(mults []Mult) uint64 {
	h := fnv.New64a()
	for _, m := range mults {
		h.Write([]byte(m.sortKey()))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// Mults returns the ordered child Mults.
func (c Conc) Mults() []Mult { return c.mults }

// Len returns the number of child Mults.
func (c Conc) Len() int { return len(c.mults) }

// IsEmpty reports whether c is the empty Conc.
func (c Conc) IsEmpty() bool { return len(c.mults) == 0 }

// Equal reports structural equality: same Mults, same order (spec §8
// property 6 — Conc is ordered, unlike Pattern).
func (c Conc) Equal(o Conc) bool {
	if len(c.mults) != len(o.mults) {
		return false
	}
	for i := range c.mults {
		if !c.mults[i].Equal(o.mults[i]) {
			return false
		}
	}
	return true
}

// Hash returns a stable hash consistent with Equal.
func (c Conc) Hash() uint64 { return c.hash }

func (c Conc) sortKey() string {
	var b strings.Builder
	for _, m := range c.mults {
		b.WriteString(m.sortKey())
		b.WriteByte(';')
	}
	return b.String()
}

// FSM folds the children's FSMs left to right starting from the epsilon
// acceptor (spec §4.4).
func (c Conc) FSM(alphabet []symbol.Symbol) *fsm.FSM {
	acc := fsm.Epsilon(alphabet)
	for _, m := range c.mults {
		acc = fsm.Concat(acc, m.FSM(alphabet))
	}
	return acc
}

// Render concatenates each child Mult's rendering; the empty Conc renders
// as "" (it has a printable form, unlike the empty Pattern or CharClass).
func (c Conc) Render() (string, error) {
	var b strings.Builder
	for _, m := range c.mults {
		s, err := m.Render()
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// Reduce implements spec §4.6's Conc rules in order: drop a vacuous conc
// (empty CharClass with mandatory repetition), passthrough a singleton,
// recursively reduce children, squish adjacent equal-multiplicand Mults,
// then inline a singleton-Pattern multiplicand under a one-multiplier.
func (c Conc) Reduce() Conc {
	for _, m := range c.mults {
		if isVacuousMult(m) {
			return NewConc(Mult{x: emptyCharClassMultiplicand(), m: one()})
		}
	}
	if len(c.mults) == 1 {
		r := c.mults[0].Reduce()
		if r.Equal(c.mults[0]) {
			return c
		}
		return NewConc(r)
	}

	changed := false
	newMults := make([]Mult, len(c.mults))
	for i, m := range c.mults {
		r := m.Reduce()
		newMults[i] = r
		if !r.Equal(m) {
			changed = true
		}
	}
	if changed {
		return NewConc(newMults...).Reduce()
	}

	for i := 0; i+1 < len(newMults); i++ {
		if multiplicandEqual(newMults[i].x, newMults[i+1].x) {
			merged := mergeMults(newMults[i], newMults[i+1])
			out := append(append([]Mult{}, newMults[:i]...), merged)
			out = append(out, newMults[i+2:]...)
			return NewConc(out...).Reduce()
		}
	}

	for i, m := range newMults {
		if !m.m.Equal(oneMultiplier()) {
			continue
		}
		if pat, ok := m.x.(Pattern); ok && len(pat.concs) == 1 {
			out := append(append([]Mult{}, newMults[:i]...), pat.concs[0].mults...)
			out = append(out, newMults[i+1:]...)
			return NewConc(out...).Reduce()
		}
	}

	return NewConc(newMults...)
}
