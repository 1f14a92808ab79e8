package controlbar

import (
	"fmt"
	"math"
)

// FormatSeconds renders a timestamp as whole seconds with zero-padded minute
// and second fields. The hour field is present only when the governing
// duration is at least one hour. A non-finite or negative timestamp renders
// as the zero placeholder, never as "NaN" or infinite text.
func FormatSeconds(t, duration float64) string {
	if !isFinite(t) || t < 0 {
		t = 0
	}

	withHours := isFinite(duration) && duration >= 3600

	total := int(t)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	if withHours {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
