package term

import (
	"encoding/binary"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/andersk/greenery/errs"
	"github.com/andersk/greenery/fsm"
	"github.com/andersk/greenery/symbol"
)

// Pattern is an unordered set of Concs (spec §4.5). The empty Pattern
// (Nothing) denotes ∅; Nothing ≠ Emptystring.
type Pattern struct {
	concs []Conc
	hash  uint64
}

// IsMultiplicand marks Pattern as a valid Mult multiplicand.
func (Pattern) IsMultiplicand() {}

// NewPattern builds an unordered Pattern from the given Concs, collapsing
// duplicates and canonicalizing order so that two Patterns built from the
// same Concs in any order compare and hash equal (spec §8 property 6).
func NewPattern(concs ...Conc) Pattern {
	out := make([]Conc, 0, len(concs))
	for _, c := range concs {
		dup := false
		for _, o := range out {
			if o.Hash() == c.Hash() && o.Equal(c) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].sortKey() < out[j].sortKey() })
	return Pattern{concs: out, hash: patternHash(out)}
}

// Nothing is the empty Pattern, denoting ∅.
var Nothing = NewPattern()

func patternHash(concs []Conc) uint64 {
	h := fnv.New64a()
	for _, c := range concs {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], c.Hash())
		h.Write(b[:])
	}
	return h.Sum64()
}

// Concs returns the canonically ordered child Concs.
func (p Pattern) Concs() []Conc { return p.concs }

// Len returns the number of child Concs.
func (p Pattern) Len() int { return len(p.concs) }

// IsEmpty reports whether p is Nothing.
func (p Pattern) IsEmpty() bool { return len(p.concs) == 0 }

// Equal reports structural equality as an unordered multiset comparison;
// both sides are already canonically sorted by NewPattern, so a
// positional comparison suffices.
func (p Pattern) Equal(o Pattern) bool {
	if len(p.concs) != len(o.concs) {
		return false
	}
	for i := range p.concs {
		if !p.concs[i].Equal(o.concs[i]) {
			return false
		}
	}
	return true
}

// Hash returns a stable hash consistent with Equal.
func (p Pattern) Hash() uint64 { return p.hash }

func (p Pattern) sortKey() string {
	var b strings.Builder
	for _, c := range p.concs {
		b.WriteString(c.sortKey())
		b.WriteByte('|')
	}
	return b.String()
}

// FSM folds the children's FSMs by union, starting from the null
// acceptor (spec §4.5).
func (p Pattern) FSM(alphabet []symbol.Symbol) *fsm.FSM {
	acc := fsm.Null(alphabet)
	for _, c := range p.concs {
		acc = fsm.Union(acc, c.FSM(alphabet))
	}
	return acc
}

// Render joins the child Concs' renderings with "|", shortest first and
// equal lengths in string order; the empty Pattern has no textual form
// (spec §4.5, §7).
func (p Pattern) Render() (string, error) {
	if p.IsEmpty() {
		return "", &errs.NotRenderableError{Reason: "empty Pattern (nothing) has no textual form"}
	}
	parts := make([]string, len(p.concs))
	for i, c := range p.concs {
		s, err := c.Render()
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	sort.Slice(parts, func(i, j int) bool {
		if len(parts[i]) != len(parts[j]) {
			return len(parts[i]) < len(parts[j])
		}
		return parts[i] < parts[j]
	})
	return strings.Join(parts, "|"), nil
}

// multPrefix extracts the greatest common first-Mult across all child
// Concs (spec §4.5): requires every Conc be non-empty, takes the
// Multiplier intersection of their first Mults, and subtracts it back out
// of each. Fails with NoMultPrefixError, an internal control-flow signal
// the Reducer catches, never surfaced to callers.
func (p Pattern) multPrefix() (Mult, Pattern, error) {
	if p.IsEmpty() {
		return Mult{}, Pattern{}, &errs.NoMultPrefixError{Reason: "pattern has no concs"}
	}
	for _, c := range p.concs {
		if c.IsEmpty() {
			return Mult{}, Pattern{}, &errs.NoMultPrefixError{Reason: "pattern contains the empty conc"}
		}
	}
	common := p.concs[0].mults[0]
	for _, c := range p.concs[1:] {
		var err error
		common, err = common.Intersect(c.mults[0])
		if err != nil {
			return Mult{}, Pattern{}, &errs.NoMultPrefixError{Reason: "first mults share no common multiplicand"}
		}
	}
	if common.m.IsZero() {
		return Mult{}, Pattern{}, &errs.NoMultPrefixError{Reason: "common first-mult intersection is zero"}
	}
	leftover := make([]Conc, len(p.concs))
	for i, c := range p.concs {
		residue, err := c.mults[0].Subtract(common)
		if err != nil {
			return Mult{}, Pattern{}, &errs.NoMultPrefixError{Reason: "first mult does not subtract cleanly"}
		}
		rest := c.mults[1:]
		if residue.m.IsZero() {
			leftover[i] = NewConc(rest...)
		} else {
			leftover[i] = NewConc(append([]Mult{residue}, rest...)...)
		}
	}
	return common, NewPattern(leftover...), nil
}

// multSuffix is multPrefix's mirror on last Mults.
func (p Pattern) multSuffix() (Mult, Pattern, error) {
	if p.IsEmpty() {
		return Mult{}, Pattern{}, &errs.NoMultSuffixError{Reason: "pattern has no concs"}
	}
	for _, c := range p.concs {
		if c.IsEmpty() {
			return Mult{}, Pattern{}, &errs.NoMultSuffixError{Reason: "pattern contains the empty conc"}
		}
	}
	last := func(c Conc) Mult { return c.mults[len(c.mults)-1] }
	common := last(p.concs[0])
	for _, c := range p.concs[1:] {
		var err error
		common, err = common.Intersect(last(c))
		if err != nil {
			return Mult{}, Pattern{}, &errs.NoMultSuffixError{Reason: "last mults share no common multiplicand"}
		}
	}
	if common.m.IsZero() {
		return Mult{}, Pattern{}, &errs.NoMultSuffixError{Reason: "common last-mult intersection is zero"}
	}
	leftover := make([]Conc, len(p.concs))
	for i, c := range p.concs {
		l := last(c)
		residue, err := l.Subtract(common)
		if err != nil {
			return Mult{}, Pattern{}, &errs.NoMultSuffixError{Reason: "last mult does not subtract cleanly"}
		}
		rest := c.mults[:len(c.mults)-1]
		if residue.m.IsZero() {
			leftover[i] = NewConc(rest...)
		} else {
			leftover[i] = NewConc(append(append([]Mult{}, rest...), residue)...)
		}
	}
	return common, NewPattern(leftover...), nil
}

// concPrefix iterates multPrefix, accumulating Mults into a Conc until no
// further common first-Mult can be factored out (spec §4.5).
func (p Pattern) concPrefix() (Conc, Pattern) {
	var prefix []Mult
	cur := p
	for {
		m, rest, err := cur.multPrefix()
		if err != nil {
			break
		}
		prefix = append(prefix, m)
		cur = rest
	}
	return NewConc(prefix...), cur
}

// concSuffix is concPrefix's mirror on last Mults.
func (p Pattern) concSuffix() (Conc, Pattern) {
	var suffix []Mult
	cur := p
	for {
		m, rest, err := cur.multSuffix()
		if err != nil {
			break
		}
		suffix = append([]Mult{m}, suffix...)
		cur = rest
	}
	return NewConc(suffix...), cur
}
