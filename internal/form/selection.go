package form

import "sort"

// Selection is the toggle-set of selected item ids. Membership only; order
// is irrelevant.
type Selection map[uint]struct{}

func NewSelection() Selection {
	return make(Selection)
}

func (s Selection) Add(id uint) {
	s[id] = struct{}{}
}

func (s Selection) Remove(id uint) {
	delete(s, id)
}

func (s Selection) Contains(id uint) bool {
	_, ok := s[id]
	return ok
}

// Toggle removes an already-selected id and adds an unselected one.
func (s Selection) Toggle(id uint) {
	if s.Contains(id) {
		s.Remove(id)
		return
	}

	s.Add(id)
}

func (s Selection) Len() int {
	return len(s)
}

// IDs returns the members in ascending order, so assembled payloads are
// stable.
func (s Selection) IDs() []uint {
	ids := make([]uint, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
