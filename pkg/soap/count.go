package soap

// CountOffensive returns the number of tokens in text that are masked as offensive.
func (s *Soap) CountOffensive(text string) int {
	offensive, _, _ := s.count(text)
	return offensive
}

// CountRotbrain returns the number of slang tokens in text.
func (s *Soap) CountRotbrain(text string) int {
	_, rotbrain, _ := s.count(text)
	return rotbrain
}

// CountPositive returns the number of tokens in text that match no table entry.
func (s *Soap) CountPositive(text string) int {
	_, _, positive := s.count(text)
	return positive
}

// IsOffensive reports whether word is masked as offensive.
func (s *Soap) IsOffensive(word string) bool {
	e, ok := s.Lookup(word)
	return ok && e.Kind == KindOffensive
}

// IsRotbrain reports whether word is built-in slang.
func (s *Soap) IsRotbrain(word string) bool {
	e, ok := s.Lookup(word)
	return ok && e.Kind == KindRotbrain
}

func (s *Soap) count(text string) (offensive, rotbrain, positive int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range splitRuns(text) {
		if r.space {
			continue
		}
		_, core, _, e, ok := s.matchTokenLocked(r.text)
		if core == "" {
			continue
		}
		switch {
		case !ok:
			positive++
		case e.Kind == KindOffensive:
			offensive++
		case e.Kind == KindRotbrain:
			rotbrain++
		}
	}
	return offensive, rotbrain, positive
}
