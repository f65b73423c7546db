// Package ui holds the landing page's view state and its transitions.
// Every transition is a pure function from State to State so the rules can be
// exercised without rendering anything.
package ui

import (
	"net/url"
	"strconv"

	"lbe/internal/theme"
)

const (
	queryMenu  = "menu"
	queryFAQ   = "faq"
	queryTheme = "theme"
)

// State is everything the page needs to know to render its controls.
type State struct {
	Theme   theme.Theme
	Overlay Overlay
	FAQ     Accordion
	// PinnedTheme carries Theme in links. It is set after a toggle so the
	// choice survives for the session when the browser keeps no cookie.
	PinnedTheme bool
}

// Initial is the state of a fresh page load before the theme is resolved.
func Initial() State {
	return State{Theme: theme.Default, FAQ: Collapsed()}
}

// Action transitions a State.
type Action func(State) State

func ToggleTheme() Action {
	return func(s State) State {
		s.Theme = s.Theme.Toggle()
		return s
	}
}

func OpenMenu() Action {
	return func(s State) State {
		s.Overlay = s.Overlay.Opened()
		return s
	}
}

func CloseMenu() Action {
	return func(s State) State {
		s.Overlay = s.Overlay.Closed()
		return s
	}
}

// ToggleFAQ selects entry i of n.
func ToggleFAQ(i, n int) Action {
	return func(s State) State {
		s.FAQ = s.FAQ.Select(i, n)
		return s
	}
}

// Apply runs actions in order.
func (s State) Apply(actions ...Action) State {
	for _, a := range actions {
		s = a(s)
	}
	return s
}

// Query encodes the view state carried in links. The theme is only included
// when pinned; otherwise it lives in the persisted preference.
func (s State) Query() url.Values {
	q := url.Values{}
	if s.PinnedTheme {
		q.Set(queryTheme, s.Theme.String())
	}
	if s.Overlay.Open {
		q.Set(queryMenu, "1")
	}
	if s.FAQ.Expanded() {
		q.Set(queryFAQ, strconv.Itoa(s.FAQ.Open))
	}
	return q
}

// ParseState decodes the view state from a query for a page with n FAQ
// entries. Unknown or malformed values fall back to their initial state.
func ParseState(q url.Values, n int) State {
	s := Initial()
	if q.Get(queryMenu) == "1" {
		s.Overlay = s.Overlay.Opened()
	}
	s.FAQ = ParseAccordion(q.Get(queryFAQ), n)
	if t, ok := theme.Parse(q.Get(queryTheme)); ok {
		s.Theme = t
		s.PinnedTheme = true
	}
	return s
}

// Href builds the link that moves the page to s, scrolled to fragment if set.
func Href(path string, s State, fragment string) string {
	u := url.URL{Path: path, RawQuery: s.Query().Encode(), Fragment: fragment}
	return u.String()
}
