package testutil

import "io"

// MockConfirmer answers confirmation prompts from a scripted list.
// Once Answers runs out it reports io.EOF, like a closed terminal.
type MockConfirmer struct {
	Answers   []bool
	Questions []string
}

// Confirm records the suggestion and pops the next scripted answer.
func (m *MockConfirmer) Confirm(suggestion string) (bool, error) {
	m.Questions = append(m.Questions, suggestion)
	if len(m.Answers) == 0 {
		return false, io.EOF
	}
	answer := m.Answers[0]
	m.Answers = m.Answers[1:]
	return answer, nil
}
