package fsm

import "github.com/andersk/greenery/symbol"

// Epsilon returns the acceptor for {""}.
func Epsilon(alphabet []symbol.Symbol) *FSM {
	n := newNFA(alphabet)
	s := n.addState()
	n.states[s].accept = true
	n.start = s
	return n.determinize()
}

// Null returns the acceptor for ∅.
func Null(alphabet []symbol.Symbol) *FSM {
	n := newNFA(alphabet)
	s := n.addState()
	n.start = s
	return n.determinize()
}

// FromAcceptFunc builds the three-state acceptor spec §4.1 describes for
// a CharClass: initial transitions to final iff accept(sym) is true for
// the input symbol, final and dead both self-loop to dead on every
// further input.
func FromAcceptFunc(alphabet []symbol.Symbol, accept func(symbol.Symbol) bool) *FSM {
	index := newIndex(alphabet)
	trans := make([][]StateID, 3)
	acc := make([]bool, 3)
	const (
		initial StateID = 1
		final   StateID = 2
	)
	acc[final] = true

	deadRow := make([]StateID, len(alphabet))
	for i := range deadRow {
		deadRow[i] = Dead
	}
	trans[Dead] = deadRow
	trans[final] = append([]StateID(nil), deadRow...)

	initRow := make([]StateID, len(alphabet))
	for i, s := range alphabet {
		if accept(s) {
			initRow[i] = final
		} else {
			initRow[i] = Dead
		}
	}
	trans[initial] = initRow

	return &FSM{alphabet: alphabet, index: index, trans: trans, accept: acc, start: initial}
}

func requireSameAlphabet(a, b *FSM) {
	if len(a.alphabet) != len(b.alphabet) {
		panic("fsm: operands built over different alphabets")
	}
	for i := range a.alphabet {
		if a.alphabet[i] != b.alphabet[i] {
			panic("fsm: operands built over different alphabets")
		}
	}
}

// Concat returns the acceptor for the concatenation of a's and b's
// languages.
func Concat(a, b *FSM) *FSM {
	requireSameAlphabet(a, b)
	n := newNFA(a.alphabet)
	aOff, aStart := n.spliceDFA(a)
	_, bStart := n.spliceDFA(b)
	n.start = aStart
	for i, st := range n.states[aOff : aOff+a.NumStates()] {
		if st.accept {
			idx := aOff + i
			n.states[idx].accept = false
			n.states[idx].eps = append(n.states[idx].eps, bStart)
		}
	}
	return n.determinize()
}

// Union returns the acceptor for the union of a's and b's languages.
func Union(a, b *FSM) *FSM {
	requireSameAlphabet(a, b)
	n := newNFA(a.alphabet)
	_, aStart := n.spliceDFA(a)
	_, bStart := n.spliceDFA(b)
	s := n.addState()
	n.states[s].eps = []int{aStart, bStart}
	n.start = s
	return n.determinize()
}

// Intersection returns the acceptor for the intersection of a's and b's
// languages, built directly as a product DFA (both operands are already
// deterministic, so no subset construction is needed).
func Intersection(a, b *FSM) *FSM {
	requireSameAlphabet(a, b)
	alphabet := a.alphabet
	type pair struct{ x, y StateID }
	ids := map[pair]StateID{}
	var trans [][]StateID
	var accept []bool
	var queue []pair

	get := func(p pair) StateID {
		if id, ok := ids[p]; ok {
			return id
		}
		id := StateID(len(trans))
		ids[p] = id
		trans = append(trans, nil)
		accept = append(accept, a.accept[p.x] && b.accept[p.y])
		queue = append(queue, p)
		return id
	}

	// Reserve StateID 0 for the dead pair first, matching the package-wide
	// Dead == 0 invariant every other constructor gets for free from
	// determinize. Both operands self-loop on Dead, so this pair is its
	// own successor under every symbol once the BFS below reaches it.
	get(pair{Dead, Dead})
	start := get(pair{a.start, b.start})

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		id := ids[p]
		row := make([]StateID, len(alphabet))
		for i := range alphabet {
			next := pair{a.trans[p.x][i], b.trans[p.y][i]}
			row[i] = get(next)
		}
		trans[id] = row
	}

	return &FSM{alphabet: alphabet, index: newIndex(alphabet), trans: trans, accept: accept, start: start}
}

// Repeat returns the acceptor for a repeated between min and max times
// inclusive (max may be Unbounded, spelled -1 here to avoid an import
// cycle with package multiplier; callers in package term translate
// multiplier.Unbounded to -1).
const Unbounded = -1

func Repeat(a *FSM, min, max int) *FSM {
	result := Epsilon(a.alphabet)
	for i := 0; i < min; i++ {
		result = Concat(result, a)
	}
	switch {
	case max == Unbounded:
		result = Concat(result, star(a))
	case max > min:
		result = Concat(result, optionalChain(a, max-min))
	}
	return result
}

// star builds the Kleene closure of a (zero or more repetitions).
func star(a *FSM) *FSM {
	n := newNFA(a.alphabet)
	off, aStart := n.spliceDFA(a)
	s := n.addState()
	n.states[s].accept = true
	n.states[s].eps = append(n.states[s].eps, aStart)
	n.start = s
	for i, st := range n.states[off : off+a.NumStates()] {
		if st.accept {
			idx := off + i
			n.states[idx].eps = append(n.states[idx].eps, s)
		}
	}
	return n.determinize()
}

// optionalChain builds the acceptor for "up to k more repetitions of a",
// i.e. (a?){k} collapsed: ε | a | aa | ... | a^k.
func optionalChain(a *FSM, k int) *FSM {
	result := Epsilon(a.alphabet)
	for i := 0; i < k; i++ {
		result = Union(result, Concat(result, a))
	}
	return result
}
