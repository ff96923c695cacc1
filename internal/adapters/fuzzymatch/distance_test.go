package fuzzymatch

import (
	"testing"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

func TestHamming(t *testing.T) {
	tests := []struct {
		a, b   string
		want   int
		wantOK bool
	}{
		{a: "ls", b: "ls", want: 0, wantOK: true},
		{a: "ls", b: "lz", want: 1, wantOK: true},
		{a: "cat", b: "cut", want: 1, wantOK: true},
		{a: "sl", b: "ls", want: 2, wantOK: true},
		{a: "", b: "", want: 0, wantOK: true},
		{a: "ls", b: "lsx", wantOK: false},
		{a: "grep", b: "", wantOK: false},
		{a: "héllo", b: "hello", want: 1, wantOK: true},
	}
	for _, tt := range tests {
		got, ok := Hamming(tt.a, tt.b)
		if ok != tt.wantOK {
			t.Errorf("Hamming(%q, %q) ok = %v, want %v", tt.a, tt.b, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("Hamming(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDamerau(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{a: "", b: "", want: 0},
		{a: "ls", b: "ls", want: 0},
		{a: "aa", b: "aa", want: 0},
		{a: "sl", b: "ls", want: 1},
		{a: "gti", b: "git", want: 1},
		{a: "grpe", b: "grep", want: 1},
		{a: "mkdr", b: "mkdir", want: 1},
		{a: "catt", b: "cat", want: 1},
		{a: "xls", b: "ls", want: 1},
		{a: "", b: "ls", want: 2},
		{a: "ca", b: "abc", want: 3},
		{a: "kitten", b: "sitting", want: 3},
		{a: "çd", b: "dç", want: 1},
		{a: "héllo", b: "hlélo", want: 1},
		{a: "ünzip", b: "unzip", want: 1},
	}
	for _, tt := range tests {
		if got := Damerau(tt.a, tt.b); got != tt.want {
			t.Errorf("Damerau(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

var propertyWords = []string{
	"", "a", "ls", "sl", "cat", "act", "tac", "git", "gti", "grep", "grpe",
	"make", "mkae", "mkdir", "rmdir", "python3", "pyhton3", "ssh", "shh", "aa", "aaa",
}

func TestHamming_Properties(t *testing.T) {
	for _, a := range propertyWords {
		for _, b := range propertyWords {
			dab, okab := Hamming(a, b)
			dba, okba := Hamming(b, a)
			if okab != okba || dab != dba {
				t.Errorf("Hamming not symmetric for %q, %q: (%d,%v) vs (%d,%v)", a, b, dab, okab, dba, okba)
			}
			if okab && (dab == 0) != (a == b) {
				t.Errorf("Hamming(%q, %q) = %d, zero must mean identical", a, b, dab)
			}
		}
	}
}

func TestDamerau_Properties(t *testing.T) {
	for _, a := range propertyWords {
		for _, b := range propertyWords {
			d := Damerau(a, b)
			if d != Damerau(b, a) {
				t.Errorf("Damerau not symmetric for %q, %q", a, b)
			}
			if (d == 0) != (a == b) {
				t.Errorf("Damerau(%q, %q) = %d, zero must mean identical", a, b, d)
			}
			if lev := fuzzy.LevenshteinDistance(a, b); d > lev {
				t.Errorf("Damerau(%q, %q) = %d exceeds Levenshtein %d", a, b, d, lev)
			}
		}
	}
}
