package ui

// Sections answers whether a section identifier exists on the page.
type Sections interface {
	HasSection(id string) bool
}

// Navigate closes the overlay and, when id names an existing section,
// returns it as the fragment to scroll to. A missing section yields an empty
// fragment and otherwise leaves the state untouched.
func Navigate(s State, id string, sections Sections) (State, string) {
	s.Overlay = s.Overlay.Closed()
	if id == "" || sections == nil || !sections.HasSection(id) {
		return s, ""
	}
	return s, id
}

// NavigateTo is Navigate as an Action, for callers that only need the state.
func NavigateTo(id string, sections Sections) Action {
	return func(s State) State {
		next, _ := Navigate(s, id, sections)
		return next
	}
}
