package fuzzymatch

import "github.com/hbollon/go-edlib"

/*
Hamming counts the positions at which a and b differ.

It is only defined for strings of equal length, measured in runes; ok is false
otherwise.
*/
func Hamming(a, b string) (distance int, ok bool) {
	distance, err := edlib.HammingDistance(a, b)
	if err != nil {
		return 0, false
	}
	return distance, true
}

/*
Damerau returns the optimal string alignment distance between a and b:
insertions, deletions, substitutions and swaps of two adjacent runes all cost 1.

Example:

	Damerau("sl", "ls")      // 1, one swap
	Damerau("gti", "git")    // 1
	Damerau("grpe", "grep")  // 1
	Damerau("ca", "abc")     // 3, a swap cannot be edited again
*/
func Damerau(a, b string) int {
	return edlib.OSADamerauLevenshteinDistance(a, b)
}
