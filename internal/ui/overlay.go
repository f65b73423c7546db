package ui

// Overlay is the full-screen mobile navigation panel.
type Overlay struct {
	Open bool
}

func (Overlay) Opened() Overlay { return Overlay{Open: true} }
func (Overlay) Closed() Overlay { return Overlay{} }

// ScrollLocked reports whether background scrolling must be suppressed.
// It derives only from Open, so every path that closes the overlay releases
// the lock.
func (o Overlay) ScrollLocked() bool { return o.Open }
