// Package keycode resolves symbolic key names, as sent in PRESS commands, to
// keyboard usage codes.
//
// Resolution first consults the alias table (short spellings such as CTRL or
// UPARROW), then the canonical identifier table (LEFT_CONTROL, UP_ARROW,
// KEYPAD_ONE, ...). Both tables are static.
package keycode

import (
	"maps"
	"slices"
	"strings"
)

// Lookup resolves a single name. Matching is case-insensitive.
func Lookup(name string) (uint8, bool) {
	n := strings.ToUpper(name)
	if code, ok := aliases[n]; ok {
		return code, true
	}
	code, ok := canonical[n]
	return code, ok
}

// Resolve maps names to usage codes in order. Names that do not resolve are
// skipped and returned in unresolved; resolution never fails as a whole.
func Resolve(names []string) (codes []uint8, unresolved []string) {
	codes = make([]uint8, 0, len(names))
	for _, n := range names {
		code, ok := Lookup(n)
		if !ok {
			unresolved = append(unresolved, n)
			continue
		}
		codes = append(codes, code)
	}
	return codes, unresolved
}

// Entry is one resolvable name.
type Entry struct {
	Name  string
	Code  uint8
	Alias bool
}

// Entries lists every resolvable name sorted by name. A name present in both
// tables is reported once, as an alias.
func Entries() []Entry {
	out := make([]Entry, 0, len(aliases)+len(canonical))
	for _, n := range slices.Sorted(maps.Keys(aliases)) {
		out = append(out, Entry{Name: n, Code: aliases[n], Alias: true})
	}
	for _, n := range slices.Sorted(maps.Keys(canonical)) {
		if _, dup := aliases[n]; dup {
			continue
		}
		out = append(out, Entry{Name: n, Code: canonical[n]})
	}
	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })
	return out
}
