package fsm

import "github.com/andersk/greenery/symbol"

// nfa is a private, epsilon-transition-bearing automaton used only as
// scratch space for building a DFA via Thompson-style combinators
// followed by subset construction (determinize). Nothing outside this
// package ever sees an nfa value.
type nfaState struct {
	accept   bool
	bySymbol map[int][]int // alphabet index -> target nfa states
	eps      []int         // epsilon transitions
}

type nfa struct {
	alphabet []symbol.Symbol
	index    map[symbol.Symbol]int
	states   []nfaState
	start    int
}

func newNFA(alphabet []symbol.Symbol) *nfa {
	return &nfa{alphabet: alphabet, index: newIndex(alphabet)}
}

func (n *nfa) addState() int {
	n.states = append(n.states, nfaState{bySymbol: make(map[int][]int)})
	return len(n.states) - 1
}

// spliceDFA re-expresses an existing (complete, deterministic) FSM as an
// nfa with no epsilon transitions, at a given state-index offset, so it
// can be spliced into a larger Thompson construction.
func (n *nfa) spliceDFA(f *FSM) (offset, start int) {
	offset = len(n.states)
	for i, row := range f.trans {
		idx := n.addState()
		n.states[idx].accept = f.accept[i]
		for symIdx, target := range row {
			n.states[idx].bySymbol[symIdx] = []int{offset + int(target)}
		}
	}
	return offset, offset + int(f.start)
}

// epsilonClosure returns the set of nfa states reachable from the given
// seed set via zero or more epsilon transitions.
func (n *nfa) epsilonClosure(seed []int) map[int]bool {
	closure := make(map[int]bool, len(seed))
	stack := append([]int(nil), seed...)
	for _, s := range seed {
		closure[s] = true
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.states[s].eps {
			if !closure[t] {
				closure[t] = true
				stack = append(stack, t)
			}
		}
	}
	return closure
}

func setKey(set map[int]bool) string {
	ids := make([]int, 0, len(set))
	for s := range set {
		ids = append(ids, s)
	}
	// Insertion-sort is fine: these sets are small in practice and this
	// avoids pulling in sort for a handful of ints per determinize step.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	key := make([]byte, 0, len(ids)*5)
	for _, id := range ids {
		key = append(key, byte(id), byte(id>>8), byte(id>>16), byte(id>>24), ',')
	}
	return string(key)
}

// determinize runs subset construction over n, producing a complete DFA
// whose state 0 is always the dead/trap state, per this package's
// invariant.
func (n *nfa) determinize() *FSM {
	alphabet := n.alphabet
	index := n.index

	type pending struct {
		set map[int]bool
		key string
	}

	deadKey := setKey(map[int]bool{})
	setIDs := map[string]StateID{deadKey: Dead}
	var trans [][]StateID
	var accept []bool
	trans = append(trans, nil) // placeholder for dead state, filled below
	accept = append(accept, false)

	queue := []pending{}
	startSet := n.epsilonClosure([]int{n.start})
	startKey := setKey(startSet)
	startID := StateID(len(trans))
	setIDs[startKey] = startID
	trans = append(trans, nil)
	accept = append(accept, false)
	queue = append(queue, pending{set: startSet, key: startKey})

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := setIDs[cur.key]

		isAccept := false
		for s := range cur.set {
			if n.states[s].accept {
				isAccept = true
				break
			}
		}
		accept[curID] = isAccept

		row := make([]StateID, len(alphabet))
		for symIdx := range alphabet {
			var targets []int
			for s := range cur.set {
				targets = append(targets, n.states[s].bySymbol[symIdx]...)
			}
			closure := n.epsilonClosure(targets)
			key := setKey(closure)
			id, ok := setIDs[key]
			if !ok {
				id = StateID(len(trans))
				setIDs[key] = id
				trans = append(trans, nil)
				accept = append(accept, false)
				queue = append(queue, pending{set: closure, key: key})
			}
			row[symIdx] = id
		}
		trans[curID] = row
	}

	// The dead state's row (all self-loops) and any state enqueued but
	// never reached by the loop above (impossible here, but keep the
	// invariant explicit) get a self-loop row.
	deadRow := make([]StateID, len(alphabet))
	for i := range deadRow {
		deadRow[i] = Dead
	}
	trans[Dead] = deadRow

	for i, row := range trans {
		if row == nil {
			self := make([]StateID, len(alphabet))
			for j := range self {
				self[j] = StateID(i)
			}
			trans[i] = self
		}
	}

	return &FSM{
		alphabet: alphabet,
		index:    index,
		trans:    trans,
		accept:   accept,
		start:    setIDs[startKey],
	}
}
