package domain

// Ref is a single reference advertised by a remote
type Ref struct {
	Name   string // Canonical name (e.g., refs/heads/main, refs/pull/42/head)
	Target string // Commit identifier the reference points at
}

// RefSnapshot is a point-in-time, read-only mapping from canonical reference
// name to commit identifier for one remote. The zero value is an empty snapshot.
type RefSnapshot struct {
	refs map[string]string
}

// NewRefSnapshot builds a snapshot from a reference list.
// When a name appears more than once the last value wins.
func NewRefSnapshot(refs []Ref) RefSnapshot {
	m := make(map[string]string, len(refs))
	for _, ref := range refs {
		m[ref.Name] = ref.Target
	}
	return RefSnapshot{refs: m}
}

// Get returns the commit a reference points at
func (s RefSnapshot) Get(name string) (string, bool) {
	target, ok := s.refs[name]
	return target, ok
}

// Has reports whether the snapshot contains the reference
func (s RefSnapshot) Has(name string) bool {
	_, ok := s.refs[name]
	return ok
}

// Len returns the number of references in the snapshot
func (s RefSnapshot) Len() int {
	return len(s.refs)
}

// Each calls fn for every reference. Iteration order is unspecified.
func (s RefSnapshot) Each(fn func(name, target string)) {
	for name, target := range s.refs {
		fn(name, target)
	}
}
