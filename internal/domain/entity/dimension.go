package entity

import "fmt"

// Dimension identifies one independently adjustable style override.
type Dimension string

const (
	DimensionContrast     Dimension = "contrast"
	DimensionFont         Dimension = "font"
	DimensionZoom         Dimension = "zoom"
	DimensionSpacing      Dimension = "spacing"
	DimensionAlign        Dimension = "align"
	DimensionReadableFont Dimension = "readableFont"
)

// RestoreOrder is the order in which stored settings are re-applied on page load.
var RestoreOrder = []Dimension{
	DimensionContrast,
	DimensionFont,
	DimensionZoom,
	DimensionSpacing,
	DimensionAlign,
	DimensionReadableFont,
}

var elementIDs = map[Dimension]string{
	DimensionContrast:     "__contrast",
	DimensionFont:         "__font",
	DimensionZoom:         "__zoom",
	DimensionSpacing:      "__space",
	DimensionAlign:        "__align",
	DimensionReadableFont: "__readableFont",
}

// ElementID returns the style element id owned by the dimension.
func (d Dimension) ElementID() string {
	return elementIDs[d]
}

// Key returns the persistent store key for the dimension.
func (d Dimension) Key() string {
	return string(d)
}

// Valid reports whether d is a known dimension.
func (d Dimension) Valid() bool {
	_, ok := elementIDs[d]
	return ok
}

// ParseDimension resolves a store key to a dimension.
func ParseDimension(key string) (Dimension, error) {
	d := Dimension(key)
	if !d.Valid() {
		return "", fmt.Errorf("unknown dimension %q", key)
	}
	return d, nil
}
