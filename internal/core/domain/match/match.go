/*
Package match defines the result of a fuzzy command lookup.
*/
package match

// Capacity is the number of slots in a Set, slot 0 being the exact-match sentinel.
const Capacity = 10

// MaxCandidates is the number of correction slots left once the sentinel is reserved.
const MaxCandidates = Capacity - 1

/*
Set holds the outcome of matching one mistyped token against the command index.

Exact is the sentinel slot: the token itself is a known command and needs no
correction. Candidates holds commands one edit away, in index order.
*/
type Set struct {
	Exact      bool
	Candidates []string
}

// Empty reports whether the set carries neither the sentinel nor any candidate.
func (s Set) Empty() bool {
	return !s.Exact && len(s.Candidates) == 0
}

// Full reports whether no further candidate fits.
func (s Set) Full() bool {
	return len(s.Candidates) >= MaxCandidates
}
