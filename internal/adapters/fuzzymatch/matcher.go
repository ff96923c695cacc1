package fuzzymatch

import (
	"github.com/AntonioJCosta/dwimsh/internal/core/domain/match"
	"github.com/AntonioJCosta/dwimsh/internal/core/ports"
)

// Matcher proposes corrections for mistyped command names.
type Matcher struct {
	index ports.CommandIndex
}

// NewMatcher creates a new Matcher over index.
func NewMatcher(index ports.CommandIndex) ports.CommandMatcher {
	return &Matcher{index: index}
}

// FindMatches walks the index in enumeration order and collects every name one
// edit away from token, up to match.MaxCandidates.
func (m *Matcher) FindMatches(token string) match.Set {
	// Exact hit: the token needs no correction. Checked up front so a full
	// candidate list can never hide it.
	if m.index.Contains(token) {
		return match.Set{Exact: true}
	}

	set := match.Set{}
	for _, name := range m.index.Names() {

		// Equal lengths: a single substituted character.
		if d, ok := Hamming(name, token); ok && d == 1 {
			set.Candidates = append(set.Candidates, name)
			if set.Full() {
				break
			}
			continue
		}

		// Anything else: one insertion, deletion, substitution or swap.
		if Damerau(name, token) == 1 {
			set.Candidates = append(set.Candidates, name)
			if set.Full() {
				break
			}
		}
	}
	return set
}
