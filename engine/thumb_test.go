package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLowCloser(t *testing.T) {
	tests := []struct {
		name             string
		downX, low, high float64
		want             bool
	}{
		{"nearer to low", 12, 10, 50, true},
		{"nearer to high", 40, 10, 50, false},
		{"equal distance goes to low", 30, 10, 50, true},
		{"left of both", -5, 10, 50, true},
		{"right of both", 90, 10, 50, false},
		{"coincident, touch left", 29, 30, 30, true},
		{"coincident, touch at", 30, 30, 30, false},
		{"coincident, touch right", 31, 30, 30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLowCloser(tt.downX, tt.low, tt.high))
		})
	}
}

func TestIsLowCloserCoincidentDependsOnlyOnSide(t *testing.T) {
	for _, p := range []float64{0, 17, 250} {
		for _, d := range []float64{-40, -1, -0.01} {
			assert.True(t, IsLowCloser(p+d, p, p))
			assert.False(t, IsLowCloser(p-d, p, p))
		}
		assert.False(t, IsLowCloser(p, p, p))
	}
}

func TestShouldCaptureFocus(t *testing.T) {
	// Thumbs are 10px wide with leading edges at 0 and 100.
	tests := []struct {
		name         string
		touchX       float64
		disableRange bool
		want         bool
	}{
		{"on low thumb", 5, false, true},
		{"edge of low radius", 25, false, true},
		{"just outside low radius", 26, false, false},
		{"left of low within radius", -14, false, true},
		{"left of low outside radius", -15, false, false},
		{"between thumbs", 50, false, false},
		{"high lower edge excluded", 85, false, false},
		{"inside high radius", 86, false, true},
		{"on high thumb", 105, false, true},
		{"high upper edge excluded", 125, false, false},
		{"high ignored without range", 105, true, false},
		{"low still tested without range", 5, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldCaptureFocus(tt.touchX, 10, 0, 100, tt.disableRange))
		})
	}
}

func TestThumbString(t *testing.T) {
	assert.Equal(t, "low", ThumbLow.String())
	assert.Equal(t, "high", ThumbHigh.String())
	assert.Equal(t, ThumbHigh, ThumbLow.Other())
	assert.Equal(t, ThumbLow, ThumbHigh.Other())
}
