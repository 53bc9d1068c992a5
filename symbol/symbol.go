// Package symbol defines the alphabet scalar the rest of the algebra is
// built over.
package symbol

import "sort"

// Symbol is an opaque, hashable token. In typical use it is a single
// character, but the algebra treats it abstractly so the alphabet can
// carry a sentinel member that doesn't correspond to any real character.
type Symbol rune

// AnyOther is the sentinel "any other symbol" placeholder. No valid UTF-8
// decodes to it, so it never collides with a real Symbol drawn from
// parsed text. It stands in for every symbol not explicitly mentioned by
// a pattern when that pattern is handed to the FSM collaborator, which is
// what makes a negated class soundly representable over a finite
// alphabet.
const AnyOther Symbol = -1

// String renders a Symbol the way it would appear unescaped in source
// text; AnyOther has no textual form and renders as a placeholder.
func (s Symbol) String() string {
	if s == AnyOther {
		return "�"
	}
	return string(rune(s))
}

// Sort returns a copy of syms sorted in ascending order, with AnyOther
// (if present) sorted last.
func Sort(syms []Symbol) []Symbol {
	out := make([]Symbol, len(syms))
	copy(out, syms)
	sort.Slice(out, func(i, j int) bool {
		if out[i] == AnyOther {
			return false
		}
		if out[j] == AnyOther {
			return true
		}
		return out[i] < out[j]
	})
	return out
}

// Alphabet builds the deduplicated, sorted union of one or more symbol
// sets, always including AnyOther — every alphabet passed to the FSM
// collaborator must carry it (spec §4.8).
func Alphabet(sets ...[]Symbol) []Symbol {
	seen := make(map[Symbol]bool)
	seen[AnyOther] = true
	for _, set := range sets {
		for _, s := range set {
			seen[s] = true
		}
	}
	out := make([]Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	return Sort(out)
}
