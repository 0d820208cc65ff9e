package styles

import (
	"strings"
)

const sliderWidth = 20

// Slider renders value within [lo, hi] as a horizontal gauge.
func (t *Theme) Slider(value, lo, hi int) string {
	if hi <= lo {
		return ""
	}
	clamped := min(max(value, lo), hi)
	filled := (clamped - lo) * sliderWidth / (hi - lo)

	return t.SliderFilled.Render(strings.Repeat("━", filled)) +
		t.SliderEmpty.Render(strings.Repeat("─", sliderWidth-filled))
}
