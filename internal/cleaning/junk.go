package cleaning

// junkTokens is the fixed set of placeholder names, keyed by canonical form.
var junkTokens = map[string]bool{
	"???":                 true,
	"---":                 true,
	"n/a":                 true,
	"unknown":             true,
	"remove this ability": true,
}

// IsJunk reports whether a raw name is a placeholder: empty after trimming
// or one of the fixed junk tokens, matched case-insensitively.
func IsJunk(name string) bool {
	canonical := CanonicalForm(name)
	return canonical == "" || junkTokens[canonical]
}
