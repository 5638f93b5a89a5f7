package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformAtOrigin(t *testing.T) {
	// every harmonic term vanishes at (0, 0)
	assert.Equal(t, -100.0, transformLat(0, 0))
	assert.Equal(t, 300.0, transformLng(0, 0))
}

func TestTransform(t *testing.T) {
	assert.InDelta(t, -215.34907275045833, transformLat(16.4737, -3.7696), 1e-9)
	assert.InDelta(t, 430.93660169194663, transformLng(16.4737, -3.7696), 1e-9)
}

func TestDelta(t *testing.T) {
	dLng, dLat := delta(121.4737, 31.2304)
	assert.InDelta(t, 0.004523059276931546, dLng, 1e-12)
	assert.InDelta(t, -0.0019422624227289711, dLat, 1e-12)
}

func TestInChina(t *testing.T) {
	tests := []struct {
		c    Coordinate
		want bool
	}{
		{Coordinate{Lng: 121.4737, Lat: 31.2304}, true},
		{Coordinate{Lng: 73.67, Lat: 3.87}, true},
		{Coordinate{Lng: 135.04, Lat: 53.54}, true},
		{Coordinate{Lng: 73.66, Lat: 30}, false},
		{Coordinate{Lng: 135.05, Lat: 30}, false},
		{Coordinate{Lng: 100, Lat: 3.86}, false},
		{Coordinate{Lng: 100, Lat: 53.55}, false},
		{Coordinate{Lng: -121.4737, Lat: 31.2304}, false},
		{Coordinate{Lng: 121.4737, Lat: -31.2304}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InChina(tt.c), "InChina(%v)", tt.c)
	}
}
