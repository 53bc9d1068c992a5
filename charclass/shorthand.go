package charclass

import "github.com/andersk/greenery/symbol"

func runes(s string) []symbol.Symbol {
	syms := make([]symbol.Symbol, 0, len(s))
	for _, r := range s {
		syms = append(syms, symbol.Symbol(r))
	}
	return syms
}

// Module-level shorthand classes, deep-frozen at init per spec §3/§9.
var (
	W = New(runes("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz")...)
	D = New(runes("0123456789")...)
	S = New(runes(" \t\n\r\f\v")...)

	notW = Complement(W)
	notD = Complement(D)
	notS = Complement(S)
)

// shorthandTable lists the canonical (class, textual form) pairs, in the
// order rendering should prefer them. Checked top to bottom so that more
// specific coincidental matches (e.g. an empty class never matches any of
// these) never shadow one another.
var shorthandTable = []struct {
	class CharClass
	text  string
}{
	{W, `\w`},
	{notW, `\W`},
	{D, `\d`},
	{notD, `\D`},
	{S, `\s`},
	{notS, `\S`},
	{Dot, `.`},
}

// shorthandFor returns the shorthand spelling for c if it exactly matches
// one of the well-known classes, and ok=false otherwise.
func shorthandFor(c CharClass) (string, bool) {
	for _, sh := range shorthandTable {
		if c.Equal(sh.class) {
			return sh.text, true
		}
	}
	return "", false
}

// shorthandClass parses one of \w \W \d \D \s \S . ; it is also consulted
// by the parser.
func shorthandClass(text string) (CharClass, bool) {
	for _, sh := range shorthandTable {
		if sh.text == text {
			return sh.class, true
		}
	}
	return CharClass{}, false
}

// ShorthandClass is shorthandClass's exported form, for the parser
// package to recognize \w \W \d \D \s \S outside this package.
func ShorthandClass(text string) (CharClass, bool) { return shorthandClass(text) }

// SameAllowableRange is sameAllowableRange's exported form, for the
// parser package's bracket range-parsing (spec §4.7).
func SameAllowableRange(lo, hi symbol.Symbol) bool { return sameAllowableRange(lo, hi) }

// namedEscapes maps the single-character escapes spec §6 lists (tab,
// newline, vertical tab, form feed, carriage return) to their source
// spelling, in both directions.
var namedEscapes = map[symbol.Symbol]string{
	'\t': `\t`,
	'\n': `\n`,
	'\v': `\v`,
	'\f': `\f`,
	'\r': `\r`,
}

var namedEscapesBySpelling = func() map[string]symbol.Symbol {
	out := make(map[string]symbol.Symbol, len(namedEscapes))
	for s, spelling := range namedEscapes {
		out[spelling] = s
	}
	return out
}()

// outsideMetachar is the authoritative metacharacter set outside brackets
// (spec §6): \ [ ] | ( ) . ? * + { }.
var outsideMetachar = map[symbol.Symbol]bool{
	'\\': true, '[': true, ']': true, '|': true, '(': true, ')': true,
	'.': true, '?': true, '*': true, '+': true, '{': true, '}': true,
}

// insideMetachar is the authoritative metacharacter set inside brackets
// (spec §6): \ [ ] ^ -.
var insideMetachar = map[symbol.Symbol]bool{
	'\\': true, '[': true, ']': true, '^': true, '-': true,
}

// allowableRanges are the only ranges a bracketed class may collapse a
// run of symbols into (spec §4.1, §4.7): A-Z, a-z, 0-9.
var allowableRanges = []struct{ lo, hi symbol.Symbol }{
	{'A', 'Z'},
	{'a', 'z'},
	{'0', '9'},
}

// sameAllowableRange reports whether lo and hi belong to the same
// allowable range with lo < hi.
func sameAllowableRange(lo, hi symbol.Symbol) bool {
	if lo >= hi {
		return false
	}
	for _, r := range allowableRanges {
		if lo >= r.lo && lo <= r.hi && hi >= r.lo && hi <= r.hi {
			return true
		}
	}
	return false
}
