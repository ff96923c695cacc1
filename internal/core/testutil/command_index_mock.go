package testutil

import (
	"slices"

	"github.com/AntonioJCosta/dwimsh/internal/core/ports"
)

// MockCommandIndex is an in-memory ports.CommandIndex backed by a fixed name list.
type MockCommandIndex struct {
	NamesList []string
}

func (m *MockCommandIndex) Contains(name string) bool {
	return slices.Contains(m.NamesList, name)
}

func (m *MockCommandIndex) Names() []string {
	return m.NamesList
}

func (m *MockCommandIndex) Len() int {
	return len(m.NamesList)
}

var _ ports.CommandIndex = (*MockCommandIndex)(nil)
