package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_In(t *testing.T) {
	tests := []struct {
		name     string
		point    Point
		expected bool
	}{
		{"origin", Point{0, 0}, true},
		{"last pixel", Point{639, 479}, true},
		{"x at width", Point{640, 0}, false},
		{"y at height", Point{0, 480}, false},
		{"negative x", Point{-1, 10}, false},
		{"negative y", Point{10, -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.point.In(640, 480))
		})
	}
}

func TestRectangle_Contains(t *testing.T) {
	r := Rect(10, 20, 30, 40)

	tests := []struct {
		name     string
		point    Point
		expected bool
	}{
		{"top-left corner is inclusive", Point{10, 20}, true},
		{"bottom-right corner is inclusive", Point{30, 40}, true},
		{"inside", Point{15, 25}, true},
		{"left of", Point{9, 25}, false},
		{"right of", Point{31, 25}, false},
		{"above", Point{15, 19}, false},
		{"below", Point{15, 41}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Contains(tt.point))
		})
	}
}

func TestRectangle_Dimensions(t *testing.T) {
	r := Rect(2, 3, 4, 3)

	assert.True(t, r.IsValid())
	assert.Equal(t, 3, r.Width())
	assert.Equal(t, 1, r.Height())
	assert.Equal(t, 3, r.Area())
}

func TestRectangle_SinglePixel(t *testing.T) {
	r := Rect(5, 5, 5, 5)

	assert.Equal(t, 1, r.Area())
	assert.Equal(t, []Point{{5, 5}}, r.Points())
}

func TestRectangle_IsValid_Inverted(t *testing.T) {
	r := Rect(5, 5, 4, 5)

	assert.False(t, r.IsValid())
	assert.Nil(t, r.Points())
}

func TestRectangle_Points_RowMajor(t *testing.T) {
	r := Rect(0, 0, 1, 1)

	assert.Equal(t, []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, r.Points())
}

func TestRectangle_Overlaps(t *testing.T) {
	a := Rect(0, 0, 9, 9)

	assert.True(t, a.Overlaps(Rect(9, 9, 12, 12)))
	assert.True(t, a.Overlaps(Rect(2, 2, 3, 3)))
	assert.False(t, a.Overlaps(Rect(10, 0, 12, 9)))
	assert.False(t, a.Overlaps(Rect(0, 10, 9, 12)))
}

func TestRectangle_JSONShape(t *testing.T) {
	data, err := json.Marshal(Rect(1, 2, 3, 4))
	require.NoError(t, err)

	assert.JSONEq(t, `{"point1":{"x":1,"y":2},"point2":{"x":3,"y":4}}`, string(data))
}

func TestRectangle_String(t *testing.T) {
	assert.Equal(t, "[(1, 2) -> (3, 4)]", Rect(1, 2, 3, 4).String())
}
