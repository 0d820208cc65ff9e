// Package style computes the CSS override for each style dimension.
package style

import (
	"fmt"
	"math"
	"strconv"

	"github.com/bnema/readably/internal/domain/entity"
	"github.com/lucasb-eyer/go-colorful"
)

// grayRange is the span between the darkest and lightest gray used by contrast.
const grayRange = 240

// Selector scoping every override to page content.
const contentSelector = "body, body *"

// fontFamilies indexed by the font setting. Index 0 is unused (no override).
var fontFamilies = []string{
	"",
	`Arial, Helvetica, sans-serif`,
	`"Raleway", sans-serif`,
	`Verdana, Geneva, sans-serif`,
	`"Times New Roman", Times, serif`,
	`"Comic Sans MS", "Comic Neue", cursive`,
}

const fallbackFamily = "monospace"

// ReadableFamily is the handwriting-style family applied by the readable font toggle.
const ReadableFamily = `"Comic Sans MS", "Comic Neue", "Segoe Print", cursive`

// Rule returns the CSS block for d given s. present is false when the value is
// neutral and the element must be removed instead.
func Rule(d entity.Dimension, s entity.Settings) (css string, present bool) {
	switch d {
	case entity.DimensionContrast:
		return ContrastCSS(s.Contrast)
	case entity.DimensionFont:
		return FontCSS(s.Font)
	case entity.DimensionZoom:
		return ZoomCSS(s.Zoom), true
	case entity.DimensionSpacing:
		return SpacingCSS(s.Spacing), true
	case entity.DimensionAlign:
		return AlignCSS(s.Align)
	case entity.DimensionReadableFont:
		return ReadableFontCSS(s.ReadableFont)
	}
	return "", false
}

// ContrastGrays returns the text and background gray levels for a contrast value.
// Level 1 is dark text on a light background, level 4 the inverse.
func ContrastGrays(value int) (text, background int) {
	r := float64(value-1) / 3
	text = int(math.Round(grayRange * r))
	background = int(math.Round(grayRange * (1 - r)))
	return text, background
}

// ContrastCSS builds the contrast override. Zero removes it.
func ContrastCSS(value int) (string, bool) {
	if value == 0 {
		return "", false
	}
	text, bg := ContrastGrays(value)
	return fmt.Sprintf("html, %s { color: %s !important; background-color: %s !important; }",
		contentSelector, grayHex(text), grayHex(bg)), true
}

func grayHex(level int) string {
	v := float64(level) / 255
	return colorful.Color{R: v, G: v, B: v}.Clamped().Hex()
}

// FontFamily resolves the font setting to a CSS family list.
func FontFamily(value int) string {
	if value > 0 && value < len(fontFamilies) {
		return fontFamilies[value]
	}
	return fallbackFamily
}

// FontCSS builds the font family override. Zero removes it.
func FontCSS(value int) (string, bool) {
	if value == entity.FontNone {
		return "", false
	}
	return fmt.Sprintf("%s { font-family: %s !important; }", contentSelector, FontFamily(value)), true
}

// ZoomFactor converts a percent offset into a zoom factor (0 => 1.0).
func ZoomFactor(offset int) float64 {
	return float64(100+offset) / 100
}

// ZoomCSS builds the zoom rule. It is always present.
func ZoomCSS(offset int) string {
	return fmt.Sprintf("html { zoom: %s; }", strconv.FormatFloat(ZoomFactor(offset), 'f', -1, 64))
}

// WordSpacing returns the word spacing in pixels.
func WordSpacing(value int) int {
	return 2 * value
}

// SpacingCSS builds the word spacing rule. It is always present.
func SpacingCSS(value int) string {
	return fmt.Sprintf("%s { word-spacing: %dpx !important; }", contentSelector, WordSpacing(value))
}

// LineHeight returns the line height percentage for an align offset.
func LineHeight(value int) int {
	return 150 + 5*value
}

// AlignCSS builds the line height override. Zero removes it.
func AlignCSS(value int) (string, bool) {
	if value == 0 {
		return "", false
	}
	return fmt.Sprintf("%s { line-height: %d%% !important; }", contentSelector, LineHeight(value)), true
}

// ReadableFontCSS builds the readable font override. false removes it.
func ReadableFontCSS(enabled bool) (string, bool) {
	if !enabled {
		return "", false
	}
	return fmt.Sprintf("%s { font-family: %s !important; }", contentSelector, ReadableFamily), true
}
