package landing

import (
	"bytes"
	"fmt"

	"github.com/natefinch/atomic"
)

// WriteFile renders p and atomically replaces path with the result, so a
// half-written page is never served.
func WriteFile(path string, p Page) error {
	var buf bytes.Buffer
	if err := Document(p).Render(&buf); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
