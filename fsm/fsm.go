// Package fsm is the external collaborator spec §4.8 describes: it turns
// term-level combinators (concat, union, intersection, repetition) into
// operations on finite-state acceptors, and supports simulating a string
// against one and reconstructing a term.Pattern from one (via
// state-elimination in ToPattern-adjacent helpers exposed to package term).
//
// FSM is always a complete DFA: every state has exactly one outgoing
// transition per alphabet symbol, including a dedicated dead state, so
// that Accepts, Intersection, and the state-elimination bridge in package
// term never need to special-case a missing transition.
package fsm

import (
	"github.com/andersk/greenery/symbol"
)

// StateID identifies a state within an FSM's dense transition table.
type StateID int

// Dead is always state 0 in any FSM this package builds: a non-accepting
// trap every symbol transitions into itself.
const Dead StateID = 0

// FSM is a complete deterministic acceptor over a fixed alphabet.
type FSM struct {
	alphabet []symbol.Symbol
	index    map[symbol.Symbol]int
	trans    [][]StateID // trans[state][symbolIndex]
	accept   []bool
	start    StateID
}

// Alphabet returns the symbols this FSM was built over (always includes
// symbol.AnyOther per spec §4.8).
func (f *FSM) Alphabet() []symbol.Symbol { return f.alphabet }

// NumStates returns the number of states, including the dead state.
func (f *FSM) NumStates() int { return len(f.trans) }

// Start returns the start state.
func (f *FSM) Start() StateID { return f.start }

// Accepting reports whether s is an accepting state.
func (f *FSM) Accepting(s StateID) bool { return f.accept[s] }

// IsDead reports whether s is the trap state (no accepting state is
// reachable from it).
func (f *FSM) IsDead(s StateID) bool { return s == Dead }

// symbolIndex maps a symbol to its column in the transition table,
// folding anything outside the alphabet to symbol.AnyOther's column.
func (f *FSM) symbolIndex(s symbol.Symbol) int {
	if i, ok := f.index[s]; ok {
		return i
	}
	return f.index[symbol.AnyOther]
}

// Step returns the state reached from s on input sym.
func (f *FSM) Step(s StateID, sym symbol.Symbol) StateID {
	return f.trans[s][f.symbolIndex(sym)]
}

// Accepts runs the acceptor over text and reports whether it lands on an
// accepting state.
func (f *FSM) Accepts(text string) bool {
	state := f.start
	for _, r := range text {
		state = f.Step(state, symbol.Symbol(r))
		if state == Dead {
			return false
		}
	}
	return f.accept[state]
}

func newIndex(alphabet []symbol.Symbol) map[symbol.Symbol]int {
	idx := make(map[symbol.Symbol]int, len(alphabet))
	for i, s := range alphabet {
		idx[s] = i
	}
	return idx
}
