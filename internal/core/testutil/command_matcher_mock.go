package testutil

import "github.com/AntonioJCosta/dwimsh/internal/core/domain/match"

// MockCommandMatcher is a mock implementation of ports.CommandMatcher.
type MockCommandMatcher struct {
	FindMatchesFunc func(token string) match.Set
	Calls           []string
}

// FindMatches records the token and calls the mock FindMatchesFunc.
func (m *MockCommandMatcher) FindMatches(token string) match.Set {
	m.Calls = append(m.Calls, token)
	if m.FindMatchesFunc != nil {
		return m.FindMatchesFunc(token)
	}
	return match.Set{}
}
