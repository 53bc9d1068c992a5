package term

import (
	"github.com/andersk/greenery/charclass"
	"github.com/andersk/greenery/errs"
	"github.com/andersk/greenery/fsm"
	"github.com/andersk/greenery/multiplier"
	"github.com/andersk/greenery/symbol"
)

// AsPattern bulks any of the four term kinds up to a Pattern (spec §4.6's
// bulk-up discipline, exposed here for the combinators and the facade):
// CharClass -> Mult(.,one) -> Conc(.) -> Pattern(.).
func AsPattern(x interface{}) Pattern {
	switch v := x.(type) {
	case charclass.CharClass:
		return NewPattern(NewConc(NewMult(v, multiplier.One)))
	case Mult:
		return NewPattern(NewConc(v))
	case Conc:
		return NewPattern(v)
	case Pattern:
		return v
	default:
		panic("term: AsPattern given a value that is not one of the four term kinds")
	}
}

// Concat implements the `+` combinator: concatenation, distributing over
// both operands' alternatives.
func Concat(a, b interface{}) Pattern {
	pa, pb := AsPattern(a), AsPattern(b)
	return concatPattern(pa, pb)
}

// Alternate implements the `|` combinator: the union of both operands'
// Concs.
func Alternate(a, b interface{}) Pattern {
	pa, pb := AsPattern(a), AsPattern(b)
	return unionPattern(pa, pb)
}

// Alphabet collects the union of symbols explicitly referenced anywhere
// in p, always including symbol.AnyOther, per spec §4.8.
func Alphabet(p Pattern) []symbol.Symbol {
	seen := map[symbol.Symbol]struct{}{}
	var collectConc func(Conc)
	var collectMult func(Mult)
	collectMult = func(m Mult) {
		switch v := m.x.(type) {
		case charclass.CharClass:
			for _, s := range v.Symbols() {
				seen[s] = struct{}{}
			}
		case Pattern:
			for _, c := range v.concs {
				collectConc(c)
			}
		}
	}
	collectConc = func(c Conc) {
		for _, m := range c.mults {
			collectMult(m)
		}
	}
	for _, c := range p.concs {
		collectConc(c)
	}
	syms := make([]symbol.Symbol, 0, len(seen))
	for s := range seen {
		syms = append(syms, s)
	}
	return symbol.Alphabet(syms)
}

// Intersect implements the `&` combinator (spec §4.5): build FSMs over a
// shared alphabet, intersect them, and reconstruct a Pattern via the FSM
// collaborator's state-elimination bridge.
func Intersect(a, b interface{}) Pattern {
	pa, pb := AsPattern(a), AsPattern(b)
	alphabet := symbol.Alphabet(append(Alphabet(pa), Alphabet(pb)...))
	fa := pa.FSM(alphabet)
	fb := pb.FSM(alphabet)
	prod := fsm.Intersection(fa, fb)
	return Reduce(ToPattern(prod))
}

// Subtract implements the `-` combinator, which spec §6 defines only over
// CharClass and Mult (not Conc or Pattern): a structural guard against any
// other pairing.
func Subtract(a, b interface{}) (interface{}, error) {
	switch av := a.(type) {
	case charclass.CharClass:
		bv, ok := b.(charclass.CharClass)
		if !ok {
			return nil, &errs.StructuralError{Reason: "subtract requires two CharClass operands"}
		}
		return charclass.Difference(av, bv), nil
	case Mult:
		bv, ok := b.(Mult)
		if !ok {
			return nil, &errs.StructuralError{Reason: "subtract requires two Mult operands"}
		}
		return av.Subtract(bv)
	default:
		return nil, &errs.StructuralError{Reason: "subtract is defined only for CharClass and Mult operands"}
	}
}
