package term

import (
	"github.com/andersk/greenery/charclass"
	"github.com/andersk/greenery/multiplier"
)

func oneMultiplier() multiplier.Multiplier { return multiplier.One }
func one() multiplier.Multiplier           { return multiplier.One }

func emptyCharClassMultiplicand() Multiplicand { return charclass.Empty }

// isVacuousMult reports whether m pairs the empty CharClass with a
// mandatory (min >= 1) repetition, making its enclosing Conc
// unsatisfiable (spec §4.6 Conc rule 1 / Pattern rule 1).
func isVacuousMult(m Mult) bool {
	cc, ok := m.x.(charclass.CharClass)
	return ok && cc.IsEmpty() && m.m.Min() >= 1
}

func mergeMults(a, b Mult) Mult {
	return Mult{x: a.x, m: multiplier.Add(a.m, b.m)}
}

func emptyConcIndex(p Pattern) int {
	for i, c := range p.concs {
		if c.IsEmpty() {
			return i
		}
	}
	return -1
}

func withoutConcAt(p Pattern, idx int) Pattern {
	out := make([]Conc, 0, len(p.concs)-1)
	for i, c := range p.concs {
		if i != idx {
			out = append(out, c)
		}
	}
	return NewPattern(out...)
}

// Reduce implements spec §4.6's Mult rules in order: factor optionality
// out of a Pattern multiplicand containing the empty Conc, collapse a
// zero-multiplier to the empty CharClass, collapse an empty-Pattern
// multiplicand to emptystring or the empty CharClass depending on
// minimality, passthrough a one-multiplier, recursively reduce the
// multiplicand, then inline a singleton Pattern-of-singleton-Conc.
func (mu Mult) Reduce() Mult {
	if pat, ok := mu.x.(Pattern); ok {
		if idx := emptyConcIndex(pat); idx >= 0 {
			without := withoutConcAt(pat, idx)
			return Mult{x: without, m: multiplier.Multiply(mu.m, multiplier.QM)}.Reduce()
		}
	}

	if mu.m.IsZero() {
		return Mult{x: charclass.Empty, m: one()}
	}

	if pat, ok := mu.x.(Pattern); ok && pat.IsEmpty() {
		if mu.m.Min() == 0 {
			return Mult{x: NewPattern(NewConc()), m: one()}
		}
		return Mult{x: charclass.Empty, m: one()}
	}

	if mu.m.Equal(oneMultiplier()) {
		if pat, ok := mu.x.(Pattern); ok {
			return Mult{x: pat.Reduce(), m: one()}
		}
		return mu
	}

	if pat, ok := mu.x.(Pattern); ok {
		reduced := pat.Reduce()
		if !reduced.Equal(pat) {
			return Mult{x: reduced, m: mu.m}.Reduce()
		}
		if len(reduced.concs) == 1 && len(reduced.concs[0].mults) == 1 {
			inner := reduced.concs[0].mults[0]
			return Mult{x: inner.x, m: multiplier.Multiply(inner.m, mu.m)}.Reduce()
		}
		return Mult{x: reduced, m: mu.m}
	}

	return mu
}

// concHasVacuousMult reports whether c contains a vacuous Mult (spec
// §4.6 Pattern rule 1).
func concHasVacuousMult(c Conc) bool {
	for _, m := range c.mults {
		if isVacuousMult(m) {
			return true
		}
	}
	return false
}

// mergeCharClassBranches implements spec §4.6 Pattern rule 4: group
// single-Mult-over-CharClass Concs by their shared Multiplier and union
// the CharClasses within each group. Returns ok=false unless at least one
// group actually had two or more members (a strict simplification is
// required to guarantee termination).
func mergeCharClassBranches(concs []Conc) ([]Conc, bool) {
	type group struct {
		m     multiplier.Multiplier
		cc    charclass.CharClass
		count int
	}
	var groups []group
	var others []Conc
	for _, c := range concs {
		cc, m, ok := singleCharClassConc(c)
		if !ok {
			others = append(others, c)
			continue
		}
		idx := -1
		for i, g := range groups {
			if g.m.Equal(m) {
				idx = i
				break
			}
		}
		if idx == -1 {
			groups = append(groups, group{m: m, cc: cc, count: 1})
		} else {
			groups[idx].cc = charclass.Union(groups[idx].cc, cc)
			groups[idx].count++
		}
	}
	merged := false
	out := make([]Conc, 0, len(groups)+len(others))
	for _, g := range groups {
		if g.count > 1 {
			merged = true
		}
		out = append(out, NewConc(Mult{x: g.cc, m: g.m}))
	}
	out = append(out, others...)
	if !merged {
		return nil, false
	}
	return out, true
}

func singleCharClassConc(c Conc) (charclass.CharClass, multiplier.Multiplier, bool) {
	if len(c.mults) != 1 {
		return charclass.CharClass{}, multiplier.Multiplier{}, false
	}
	cc, ok := c.mults[0].x.(charclass.CharClass)
	if !ok {
		return charclass.CharClass{}, multiplier.Multiplier{}, false
	}
	return cc, c.mults[0].m, true
}

// Reduce implements spec §4.6's Pattern rules in order: drop vacuous
// Concs, passthrough a singleton, recursively reduce children, merge
// CharClass branches sharing a Multiplier, then factor a common
// prefix/suffix.
func (p Pattern) Reduce() Pattern {
	kept := make([]Conc, 0, len(p.concs))
	dropped := false
	for _, c := range p.concs {
		if concHasVacuousMult(c) {
			dropped = true
			continue
		}
		kept = append(kept, c)
	}
	if dropped {
		return NewPattern(kept...).Reduce()
	}

	if len(p.concs) == 1 {
		r := p.concs[0].Reduce()
		if r.Equal(p.concs[0]) {
			return p
		}
		return NewPattern(r)
	}

	changed := false
	newConcs := make([]Conc, len(p.concs))
	for i, c := range p.concs {
		r := c.Reduce()
		newConcs[i] = r
		if !r.Equal(c) {
			changed = true
		}
	}
	if changed {
		return NewPattern(newConcs...).Reduce()
	}

	if merged, ok := mergeCharClassBranches(newConcs); ok {
		return NewPattern(merged...).Reduce()
	}

	cur := NewPattern(newConcs...)
	if prefix, leftover := cur.concPrefix(); !prefix.IsEmpty() {
		mults := append(append([]Mult{}, prefix.mults...), Mult{x: leftover, m: one()})
		return NewPattern(NewConc(mults...)).Reduce()
	}
	if suffix, leftover := cur.concSuffix(); !suffix.IsEmpty() {
		mults := append([]Mult{{x: leftover, m: one()}}, suffix.mults...)
		return NewPattern(NewConc(mults...)).Reduce()
	}

	return cur
}

// Reduce runs p.Reduce to a fixpoint, guaranteeing spec §8 property 2
// (reduce(reduce(P)) = reduce(P)) even if some rewrite path did not
// already chase every recursive call down to a fixed point.
func Reduce(p Pattern) Pattern {
	for {
		r := p.Reduce()
		if r.Equal(p) {
			return r
		}
		p = r
	}
}
