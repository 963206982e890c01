// Package tokenizer normalises company names into canonical token sets.
// Names are stripped of punctuation, upper-cased, and split on whitespace;
// a separate filtering step prepares the reduced token list used for
// candidate retrieval.
package tokenizer

import (
	"strings"
	"unicode"
)

// Set is a company name reduced to its unique normalised tokens.
type Set map[string]struct{}

// Clean replaces punctuation with spaces and collapses runs of whitespace.
func Clean(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	lastSpace := true
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// Tokenize cleans, upper-cases, and splits a name into its token set.
// Empty or unusable input yields an empty set.
func Tokenize(name string) Set {
	cleaned := Clean(name)
	if cleaned == "" {
		return Set{}
	}
	tokens := Set{}
	for _, word := range strings.Fields(strings.ToUpper(cleaned)) {
		tokens[word] = struct{}{}
	}
	return tokens
}

// PrepareForSearch filters a token set down to the retrieval query: tokens
// shorter than minLength and stopwords are dropped. The filtered list feeds
// the candidate query only; similarity scoring always uses the full set.
func PrepareForSearch(tokens Set, minLength int, stopwords map[string]struct{}) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, 0, len(tokens))
	for token := range tokens {
		if len([]rune(token)) < minLength {
			continue
		}
		if _, stop := stopwords[token]; stop {
			continue
		}
		out = append(out, token)
	}
	return out
}

// StopwordSet converts a configured stopword list into the lookup form
// PrepareForSearch expects.
func StopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToUpper(w)] = struct{}{}
	}
	return set
}

// Contains reports whether the set has the given token.
func (s Set) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Slice returns the tokens in unspecified order.
func (s Set) Slice() []string {
	out := make([]string, 0, len(s))
	for token := range s {
		out = append(out, token)
	}
	return out
}

// FromSlice builds a Set from already-normalised tokens.
func FromSlice(tokens []string) Set {
	set := make(Set, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
