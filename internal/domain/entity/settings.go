package entity

// Settings is the full set of style preferences for a page.
// Values are replaced, never mutated: every update returns a new record.
type Settings struct {
	Contrast     int  `json:"contrast"`
	Font         int  `json:"font"`
	Zoom         int  `json:"zoom"`
	Spacing      int  `json:"spacing"`
	Align        int  `json:"align"`
	ReadableFont bool `json:"readableFont"`
}

// Contrast levels accepted by the popup slider.
const (
	ContrastMin = 0
	ContrastMax = 4
)

// Font choices. Zero removes the override.
const (
	FontNone = 0
	FontMax  = 5
)

// DefaultSettings returns the neutral record: 0,0,0,0,0,false.
func DefaultSettings() Settings {
	return Settings{}
}

// Value returns the integer value stored for d. ReadableFont maps to 0/1.
func (s Settings) Value(d Dimension) int {
	switch d {
	case DimensionContrast:
		return s.Contrast
	case DimensionFont:
		return s.Font
	case DimensionZoom:
		return s.Zoom
	case DimensionSpacing:
		return s.Spacing
	case DimensionAlign:
		return s.Align
	case DimensionReadableFont:
		if s.ReadableFont {
			return 1
		}
	}
	return 0
}

// With returns a copy of s with d set to v. Any non-zero v enables ReadableFont.
func (s Settings) With(d Dimension, v int) Settings {
	switch d {
	case DimensionContrast:
		s.Contrast = v
	case DimensionFont:
		s.Font = v
	case DimensionZoom:
		s.Zoom = v
	case DimensionSpacing:
		s.Spacing = v
	case DimensionAlign:
		s.Align = v
	case DimensionReadableFont:
		s.ReadableFont = v != 0
	}
	return s
}

// Patch extracts the given dimensions as a store patch.
func (s Settings) Patch(dims ...Dimension) Patch {
	p := make(Patch, len(dims))
	for _, d := range dims {
		p[d] = s.Value(d)
	}
	return p
}

// Merge returns s with every key of p applied.
func (s Settings) Merge(p Patch) Settings {
	for d, v := range p {
		s = s.With(d, v)
	}
	return s
}

// Patch is a partial settings update keyed by dimension.
type Patch map[Dimension]int

// Keys returns the patch dimensions in restore order.
func (p Patch) Keys() []Dimension {
	keys := make([]Dimension, 0, len(p))
	for _, d := range RestoreOrder {
		if _, ok := p[d]; ok {
			keys = append(keys, d)
		}
	}
	return keys
}
