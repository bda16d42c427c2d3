package domain

import "slices"

// Student is one roster entry. PreferredDays are day-of-month values in
// priority order; NGWith lists ids this student must never share a slot with.
type Student struct {
	ID            string
	Name          string
	PreferredDays []int
	NGWith        []string
}

// HasNGWith reports whether s declares id as incompatible.
func (s *Student) HasNGWith(id string) bool {
	return slices.Contains(s.NGWith, id)
}

// Conflicts reports whether s and other may not share a slot. The relation
// is symmetric: either side declaring the other is enough.
func (s *Student) Conflicts(other *Student) bool {
	if other == nil {
		return false
	}
	return s.HasNGWith(other.ID) || other.HasNGWith(s.ID)
}

// Clone returns a deep copy so callers can hand out students without
// sharing the underlying slices.
func (s Student) Clone() Student {
	return Student{
		ID:            s.ID,
		Name:          s.Name,
		PreferredDays: slices.Clone(s.PreferredDays),
		NGWith:        slices.Clone(s.NGWith),
	}
}

// IndexByID builds an id lookup over a roster. When an id repeats, the first
// student with it wins.
func IndexByID(students []Student) map[string]*Student {
	idx := make(map[string]*Student, len(students))
	for i := range students {
		if _, ok := idx[students[i].ID]; !ok {
			idx[students[i].ID] = &students[i]
		}
	}
	return idx
}
