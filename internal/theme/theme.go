// Package theme resolves and persists the light/dark presentation mode of the
// landing page.
package theme

import (
	"net/http"
	"strings"
)

// Theme is the visual presentation mode of the page.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	// Default applies when neither a stored choice nor an OS preference exists.
	Default = Light
)

// HintHeader is the client hint carrying the browser's colour-scheme preference.
const HintHeader = "Sec-CH-Prefers-Color-Scheme"

// Parse accepts exactly "light" or "dark".
func Parse(s string) (Theme, bool) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), true
	}
	return "", false
}

// Toggle flips between the two themes. Anything unknown toggles to dark,
// since it would have rendered as the light default.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string { return string(t) }

// Resolve applies the precedence stored choice, then OS preference, then light.
// Both inputs are raw strings; unrecognised values count as absent.
func Resolve(persisted, osPref string) Theme {
	if t, ok := Parse(persisted); ok {
		return t
	}
	if t, ok := Parse(osPref); ok {
		return t
	}
	return Default
}

// OSPreference extracts the colour-scheme hint from a request. Structured
// header strings arrive quoted, e.g. `"dark"`.
func OSPreference(r *http.Request) string {
	v := strings.TrimSpace(r.Header.Get(HintHeader))
	return strings.ToLower(strings.Trim(v, `"`))
}
