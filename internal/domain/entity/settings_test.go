package entity_test

import (
	"testing"

	"github.com/bnema/readably/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestSettings_WithReturnsCopy(t *testing.T) {
	base := entity.DefaultSettings()
	next := base.With(entity.DimensionZoom, 15)

	assert.Equal(t, 0, base.Zoom)
	assert.Equal(t, 15, next.Zoom)
}

func TestSettings_ReadableFontMapsToInt(t *testing.T) {
	s := entity.DefaultSettings().With(entity.DimensionReadableFont, 7)
	assert.True(t, s.ReadableFont)
	assert.Equal(t, 1, s.Value(entity.DimensionReadableFont))

	s = s.With(entity.DimensionReadableFont, 0)
	assert.False(t, s.ReadableFont)
}

func TestSettings_PatchAndMerge(t *testing.T) {
	s := entity.Settings{Contrast: 2, Font: 3, Zoom: 5, Spacing: 1, Align: 2, ReadableFont: true}

	p := s.Patch(entity.DimensionAlign, entity.DimensionContrast)
	assert.Equal(t, entity.Patch{entity.DimensionContrast: 2, entity.DimensionAlign: 2}, p)
	assert.Equal(t, []entity.Dimension{entity.DimensionContrast, entity.DimensionAlign}, p.Keys())

	merged := entity.DefaultSettings().Merge(s.Patch(entity.RestoreOrder...))
	assert.Equal(t, s, merged)
}

func TestDimension_ElementIDs(t *testing.T) {
	want := map[entity.Dimension]string{
		entity.DimensionContrast:     "__contrast",
		entity.DimensionFont:         "__font",
		entity.DimensionZoom:         "__zoom",
		entity.DimensionSpacing:      "__space",
		entity.DimensionAlign:        "__align",
		entity.DimensionReadableFont: "__readableFont",
	}
	for d, id := range want {
		assert.Equal(t, id, d.ElementID())
		parsed, err := entity.ParseDimension(d.Key())
		assert.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
	_, err := entity.ParseDimension("sparkle")
	assert.Error(t, err)
}
