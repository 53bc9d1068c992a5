package term

import (
	"github.com/andersk/greenery/charclass"
	"github.com/andersk/greenery/fsm"
	"github.com/andersk/greenery/multiplier"
	"github.com/andersk/greenery/symbol"
)

func emptystringPattern() Pattern { return NewPattern(NewConc()) }

func unionPattern(a, b Pattern) Pattern {
	return NewPattern(append(append([]Conc{}, a.concs...), b.concs...)...)
}

func concatPattern(a, b Pattern) Pattern {
	if a.IsEmpty() || b.IsEmpty() {
		return Nothing
	}
	out := make([]Conc, 0, len(a.concs)*len(b.concs))
	for _, ca := range a.concs {
		for _, cb := range b.concs {
			mults := append(append([]Mult{}, ca.mults...), cb.mults...)
			out = append(out, NewConc(mults...))
		}
	}
	return NewPattern(out...)
}

// transitionClass builds the CharClass labeling a group of transitions
// that share a target state: a plain listing when few alphabet symbols
// take the edge, or a negated class over the materialized complement
// (charclass.Everythingbut) when most of them do, so reconstructed
// patterns favor the shorter spelling spec §1 wants from rendering.
func transitionClass(syms []symbol.Symbol, alphabet []symbol.Symbol) charclass.CharClass {
	hit := charclass.New(syms...)
	if len(syms)*2 <= len(alphabet) {
		return hit
	}
	missing := charclass.Everythingbut(hit, alphabet)
	return charclass.NewNegated(missing.Symbols()...)
}

func starPattern(p Pattern) Pattern {
	if p.IsEmpty() {
		return emptystringPattern()
	}
	return NewPattern(NewConc(NewMult(p, multiplier.Star)))
}

// ToPattern reconstructs a Pattern term whose language equals f's,
// required by Pattern intersection (spec §4.5, §4.8). It is a
// Brzozowski-style state-elimination bridge: every transition becomes an
// edge labeled by the CharClass of symbols that take it, a virtual start
// and final node bracket the real states, and real states are eliminated
// one at a time via Arden's rule (R[i][j] |= R[i][r] · R[r][r]★ · R[r][j])
// until only the start-to-final edge remains.
func ToPattern(f *fsm.FSM) Pattern {
	if f.IsDead(f.Start()) {
		return Nothing
	}
	alphabet := f.Alphabet()
	reachable := reachableStates(f)
	order := make(map[fsm.StateID]int, len(reachable))
	for i, s := range reachable {
		order[s] = i + 1
	}
	n := len(reachable)
	vStart, vFinal := 0, n+1
	size := n + 2

	R := make([][]Pattern, size)
	for i := range R {
		R[i] = make([]Pattern, size)
		for j := range R[i] {
			R[i][j] = Nothing
		}
	}
	R[vStart][order[f.Start()]] = emptystringPattern()

	for _, s := range reachable {
		i := order[s]
		if f.Accepting(s) {
			R[i][vFinal] = unionPattern(R[i][vFinal], emptystringPattern())
		}
		targets := map[fsm.StateID][]symbol.Symbol{}
		for _, sym := range alphabet {
			t := f.Step(s, sym)
			if f.IsDead(t) {
				continue
			}
			targets[t] = append(targets[t], sym)
		}
		for t, syms := range targets {
			j, ok := order[t]
			if !ok {
				continue
			}
			R[i][j] = unionPattern(R[i][j], NewPattern(NewConc(NewMult(transitionClass(syms, alphabet), multiplier.One))))
		}
	}

	for r := 1; r <= n; r++ {
		loopStar := starPattern(R[r][r])
		for i := 0; i < size; i++ {
			if i == r || R[i][r].IsEmpty() {
				continue
			}
			for j := 0; j < size; j++ {
				if j == r || R[r][j].IsEmpty() {
					continue
				}
				via := concatPattern(concatPattern(R[i][r], loopStar), R[r][j])
				R[i][j] = unionPattern(R[i][j], via)
			}
		}
		for i := 0; i < size; i++ {
			R[i][r] = Nothing
			R[r][i] = Nothing
		}
	}

	return Reduce(R[vStart][vFinal])
}

func reachableStates(f *fsm.FSM) []fsm.StateID {
	seen := map[fsm.StateID]bool{f.Start(): true}
	queue := []fsm.StateID{f.Start()}
	var order []fsm.StateID
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if f.IsDead(s) {
			continue
		}
		order = append(order, s)
		for _, sym := range f.Alphabet() {
			t := f.Step(s, sym)
			if !f.IsDead(t) && !seen[t] {
				seen[t] = true
				queue = append(queue, t)
			}
		}
	}
	return order
}
