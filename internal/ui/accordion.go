package ui

import "strconv"

// None is the accordion index meaning no entry is expanded.
const None = -1

// Accordion tracks which FAQ entry is expanded. At most one entry is open.
type Accordion struct {
	Open int
}

// Collapsed is the initial accordion state.
func Collapsed() Accordion { return Accordion{Open: None} }

// Select expands entry i, or collapses it if it is already the open one.
// Indices outside [0, n) leave the state unchanged.
func (a Accordion) Select(i, n int) Accordion {
	if i < 0 || i >= n {
		return a
	}
	if a.Open == i {
		return Accordion{Open: None}
	}
	return Accordion{Open: i}
}

func (a Accordion) IsOpen(i int) bool { return a.Open != None && a.Open == i }

// Expanded reports whether any entry is open.
func (a Accordion) Expanded() bool { return a.Open != None }

// ParseAccordion reads the open index from its query representation.
func ParseAccordion(raw string, n int) Accordion {
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= n {
		return Collapsed()
	}
	return Accordion{Open: i}
}
