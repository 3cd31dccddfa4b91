package favorite

import "sort"

// Set is the device-scoped set of favorite destination ids.
type Set map[string]struct{}

func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggled returns a new set with id's membership flipped, leaving s as is.
func (s Set) Toggled(id string) Set {
	next := s.Clone()
	if next.Has(id) {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return next
}

func (s Set) Clone() Set {
	next := make(Set, len(s))
	for id := range s {
		next[id] = struct{}{}
	}
	return next
}

// IDs is sorted so the persisted array is stable across writes.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s Set) Len() int { return len(s) }
