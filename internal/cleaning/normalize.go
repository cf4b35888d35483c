// Package cleaning implements the referential-integrity-preserving
// normalization and deduplication pass that runs once at startup, before any
// request is served.
package cleaning

import "strings"

// corrections maps known misspellings, keyed by canonical form, to their
// corrected display names. Unmatched input passes through Correct unchanged.
var corrections = map[string]string{
	// pokemon
	"pikuchu":     "Pikachu",
	"pikachuu":    "Pikachu",
	"charzard":    "Charizard",
	"bulbasaurrr": "Bulbasaur",
	"bulbasuar":   "Bulbasaur",
	"squirtel":    "Squirtle",
	"charmanderr": "Charmander",
	// types
	"gras":    "Grass",
	"eletric": "Electric",
	"psycic":  "Psychic",
	"poisen":  "Poison",
	"poision": "Poison",
	// abilities
	"overgroww": "Overgrow",
	"torrentt":  "Torrent",
	"run away":  "Run-away",
	"keen eye":  "Keen-eye",
	"rock head": "Rock-head",
	// trainers
	"ashh":  "Ash",
	"misty": "Misty",
}

// Correct applies the fixed misspelling table case-insensitively. Input that
// is not a known misspelling is returned unchanged.
func Correct(name string) string {
	if fixed, ok := corrections[CanonicalForm(name)]; ok {
		return fixed
	}
	return name
}

// CanonicalForm trims and lowercases a name. It is used only for equality
// and grouping, never stored.
func CanonicalForm(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DisplayForm trims a name and title-cases each space-separated word. This
// is the form that gets persisted.
func DisplayForm(name string) string {
	parts := strings.Fields(name)
	for i, p := range parts {
		parts[i] = capitalize(p)
	}
	return strings.Join(parts, " ")
}

// capitalize uppercases the first byte of a word and lowercases the rest,
// leaving inner punctuation such as hyphens intact ("rUn-AWAY" → "Run-away").
func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
