package correction

// askCandidates offers each candidate in order with the rest of the line appended,
// and returns the first one the user accepts.
// A declined candidate moves on to the next; a failed read stops asking.
func (s *service) askCandidates(candidates []string, remainder string) (string, bool) {
	for _, candidate := range candidates {
		accepted, err := s.confirmer.Confirm(candidate + remainder)
		if err != nil {
			return "", false
		}
		if accepted {
			return candidate, true
		}
	}
	return "", false
}
