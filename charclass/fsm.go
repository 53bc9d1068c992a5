package charclass

import (
	"github.com/andersk/greenery/fsm"
	"github.com/andersk/greenery/symbol"
)

// FSM builds the three-state acceptor spec §4.1 describes: initial
// transitions to final iff the input symbol is denoted by c (respecting
// negation against the supplied alphabet), final and dead both self-loop
// to dead thereafter. alphabet must include symbol.AnyOther.
func (c CharClass) FSM(alphabet []symbol.Symbol) *fsm.FSM {
	return fsm.FromAcceptFunc(alphabet, c.Has)
}
