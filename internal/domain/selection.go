package domain

// Selection tracks which service ids the user has chosen. Insertion order is
// preserved for display; membership is what matters semantically. Selection
// is owned by a single form session and is not safe for concurrent use.
type Selection struct {
	ids []string
}

// Toggle removes the id when present, otherwise appends it.
// Duplicate entries can never result.
func (s *Selection) Toggle(serviceID string) {
	for i, id := range s.ids {
		if id == serviceID {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
	s.ids = append(s.ids, serviceID)
}

// IsSelected reports membership
func (s *Selection) IsSelected(serviceID string) bool {
	for _, id := range s.ids {
		if id == serviceID {
			return true
		}
	}
	return false
}

// IDs returns the selected ids in insertion order
func (s *Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Count returns the number of selected services
func (s *Selection) Count() int {
	return len(s.ids)
}

// IsEmpty reports whether nothing is selected
func (s *Selection) IsEmpty() bool {
	return len(s.ids) == 0
}

// Titles resolves the selection to display titles via the catalog,
// preserving insertion order.
func (s *Selection) Titles(catalog *Catalog) []string {
	titles := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		titles = append(titles, catalog.TitleOf(id))
	}
	return titles
}

// Reset clears the selection
func (s *Selection) Reset() {
	s.ids = nil
}
