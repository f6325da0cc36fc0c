package validator

// IdentifierSet records the national identifiers accepted so far in a session.
type IdentifierSet struct {
	seen map[int64]struct{}
}

// NewIdentifierSet returns an empty set.
func NewIdentifierSet() *IdentifierSet {
	return &IdentifierSet{seen: make(map[int64]struct{})}
}

// Contains reports whether id was accepted before.
func (s *IdentifierSet) Contains(id int64) bool {
	_, ok := s.seen[id]
	return ok
}

// Add marks id as taken. It returns false if id was already taken.
func (s *IdentifierSet) Add(id int64) bool {
	if s.Contains(id) {
		return false
	}
	s.seen[id] = struct{}{}
	return true
}

// Release frees id so it can be entered again.
func (s *IdentifierSet) Release(id int64) {
	delete(s.seen, id)
}

// Len returns the number of taken identifiers.
func (s *IdentifierSet) Len() int {
	return len(s.seen)
}
