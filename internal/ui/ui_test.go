package ui

import (
	"net/url"
	"testing"

	"lbe/internal/theme"
)

type sectionSet map[string]bool

func (s sectionSet) HasSection(id string) bool { return s[id] }

var page = sectionSet{"hero": true, "wins": true, "system": true, "results": true, "faq": true, "contact": true}

func TestAccordionSingleOpen(t *testing.T) {
	const n = 4
	a := Collapsed()
	if a.Expanded() {
		t.Fatal("initial accordion should be collapsed")
	}

	a = a.Select(1, n)
	a = a.Select(3, n)
	for i := 0; i < n; i++ {
		if got, want := a.IsOpen(i), i == 3; got != want {
			t.Errorf("entry %d open = %v, want %v", i, got, want)
		}
	}

	a = a.Select(3, n)
	if a.Expanded() {
		t.Errorf("selecting the open entry twice should collapse, got %+v", a)
	}
}

func TestAccordionOutOfRange(t *testing.T) {
	a := Collapsed().Select(2, 4)
	for _, i := range []int{-1, 4, 99} {
		if got := a.Select(i, 4); got != a {
			t.Errorf("Select(%d) changed state to %+v", i, got)
		}
	}
}

func TestParseAccordion(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", None},
		{"0", 0},
		{"3", 3},
		{"4", None},
		{"-1", None},
		{"x", None},
	}
	for _, tt := range tests {
		if got := ParseAccordion(tt.raw, 4).Open; got != tt.want {
			t.Errorf("ParseAccordion(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestOverlayScrollLock(t *testing.T) {
	s := Initial().Apply(OpenMenu())
	if !s.Overlay.ScrollLocked() {
		t.Fatal("open overlay should lock scrolling")
	}
	if s.Apply(CloseMenu()).Overlay.ScrollLocked() {
		t.Error("explicit close must release scroll lock")
	}
	next, _ := Navigate(s, "faq", page)
	if next.Overlay.Open || next.Overlay.ScrollLocked() {
		t.Error("navigation must close overlay and release scroll lock")
	}
}

func TestNavigateAlwaysClosesOverlay(t *testing.T) {
	for _, open := range []bool{true, false} {
		for _, id := range []string{"wins", "missing", ""} {
			s := Initial()
			s.Overlay.Open = open
			next, _ := Navigate(s, id, page)
			if next.Overlay.Open {
				t.Errorf("Navigate(%q) from open=%v left overlay open", id, open)
			}
		}
	}
}

func TestNavigateMissingSectionIsNoop(t *testing.T) {
	s := State{Theme: theme.Dark, Overlay: Overlay{Open: true}, FAQ: Accordion{Open: 2}}

	next, fragment := Navigate(s, "pricing", page)
	if fragment != "" {
		t.Errorf("fragment = %q, want empty", fragment)
	}
	want := s
	want.Overlay = Overlay{}
	if next != want {
		t.Errorf("state = %+v, want %+v", next, want)
	}
}

func TestNavigateExistingSection(t *testing.T) {
	next, fragment := Navigate(Initial(), "results", page)
	if fragment != "results" {
		t.Errorf("fragment = %q, want results", fragment)
	}
	if next != Initial() {
		t.Errorf("state changed: %+v", next)
	}
}

func TestNavigateToAction(t *testing.T) {
	s := Initial().Apply(OpenMenu(), ToggleFAQ(1, 4), NavigateTo("faq", page))
	if s.Overlay.Open || s.FAQ.Open != 1 {
		t.Errorf("unexpected state %+v", s)
	}
}

func TestToggleThemeAction(t *testing.T) {
	s := Initial()
	for i := 0; i < 5; i++ {
		s = s.Apply(ToggleTheme())
	}
	if s.Theme != theme.Dark {
		t.Errorf("after 5 toggles theme = %q, want dark", s.Theme)
	}
}

func TestStateQuery(t *testing.T) {
	s := Initial().Apply(OpenMenu(), ToggleFAQ(2, 4))
	q := s.Query()
	if q.Get("menu") != "1" || q.Get("faq") != "2" {
		t.Fatalf("Query = %v", q)
	}
	if got := ParseState(q, 4); got != s {
		t.Errorf("ParseState(Query) = %+v, want %+v", got, s)
	}
	if len(Initial().Query()) != 0 {
		t.Error("initial state should encode to an empty query")
	}
}

func TestParseStateIgnoresJunk(t *testing.T) {
	q := url.Values{"menu": {"yes"}, "faq": {"12"}, "theme": {"purple"}}
	if got := ParseState(q, 4); got != Initial() {
		t.Errorf("ParseState = %+v, want initial", got)
	}
}

func TestPinnedThemeTravelsInLinks(t *testing.T) {
	s := Initial()
	s.Theme = theme.Dark
	if Href("/", s, "faq") != "/#faq" {
		t.Error("an unpinned theme must stay out of links")
	}

	s.PinnedTheme = true
	q := s.Query()
	if q.Get("theme") != "dark" {
		t.Fatalf("Query = %v, want theme=dark", q)
	}
	if got := ParseState(q, 4); got != s {
		t.Errorf("ParseState(Query) = %+v, want %+v", got, s)
	}
	next, fragment := Navigate(s.Apply(OpenMenu()), "faq", page)
	if got := Href("/", next, fragment); got != "/?theme=dark#faq" {
		t.Errorf("navigation link = %q, pinned theme should survive", got)
	}
}

func TestHref(t *testing.T) {
	tests := []struct {
		state    State
		fragment string
		want     string
	}{
		{Initial(), "", "/"},
		{Initial(), "faq", "/#faq"},
		{Initial().Apply(ToggleFAQ(0, 4)), "faq", "/?faq=0#faq"},
		{Initial().Apply(OpenMenu(), ToggleFAQ(1, 4)), "", "/?faq=1&menu=1"},
	}
	for _, tt := range tests {
		if got := Href("/", tt.state, tt.fragment); got != tt.want {
			t.Errorf("Href = %q, want %q", got, tt.want)
		}
	}
}
