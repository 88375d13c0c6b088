package search

import "strings"

// MatchMode selects how a requested token is compared against a recipe token
type MatchMode int

const (
	// AnySubstring passes when some recipe token contains some requested token
	AnySubstring MatchMode = iota
	// AnyExact passes when some recipe token equals some requested token
	AnyExact
)

func (m MatchMode) String() string {
	switch m {
	case AnySubstring:
		return "any-substring"
	case AnyExact:
		return "any-exact"
	default:
		return "unknown"
	}
}

// Matches reports whether candidates satisfy requested under mode. Comparisons are
// case-insensitive. Empty requested tokens never match anything, so a requested set made
// only of empty tokens matches nothing.
func Matches(candidates, requested []string, mode MatchMode) bool {
	for _, want := range requested {
		if want == "" {
			continue
		}
		want = strings.ToLower(want)
		for _, have := range candidates {
			have = strings.ToLower(have)
			switch mode {
			case AnyExact:
				if have == want {
					return true
				}
			default:
				if strings.Contains(have, want) {
					return true
				}
			}
		}
	}
	return false
}

// ParseTokens splits comma-separated input into trimmed tokens, dropping empty segments.
// It returns nil when no usable token remains.
func ParseTokens(raw string) []string {
	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
