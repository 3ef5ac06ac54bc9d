package ir

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTicksBounds(t *testing.T) {
	m := DefaultMatcher()
	tests := []struct {
		name      string
		desired   uint32
		tolerance uint8
		delta     uint16
		low, high uint32
	}{
		{name: "default tolerance", desired: 598, tolerance: UseDefaultTolerance, low: 448, high: 748},
		{name: "explicit ten", desired: 1196, tolerance: 10, low: 1076, high: 1316},
		{name: "delta widens", desired: 1000, tolerance: 25, delta: 50, low: 700, high: 1301},
		{name: "low clamps at zero", desired: 10, tolerance: 25, delta: 100, low: 0, high: 113},
		{name: "zero tolerance", desired: 500, tolerance: 0, low: 500, high: 501},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.low, m.TicksLow(tt.desired, tt.tolerance, tt.delta))
			assert.Equal(t, tt.high, m.TicksHigh(tt.desired, tt.tolerance, tt.delta))
		})
	}
}

func TestToleranceOverride(t *testing.T) {
	m := Matcher{Tolerance: 10}
	assert.True(t, m.Match(1100, 1000, UseDefaultTolerance))
	assert.False(t, m.Match(1200, 1000, UseDefaultTolerance))
	assert.True(t, m.Match(1200, 1000, 20))
	assert.False(t, m.Match(1200, 1000, 150), "values above 100 select the matcher tolerance")

	broken := Matcher{Tolerance: 200}
	assert.True(t, broken.Match(1250, 1000, UseDefaultTolerance), "invalid matcher tolerance falls back to the default")
}

func TestMatchMarkAndSpaceApplyExcess(t *testing.T) {
	m := DefaultMatcher()
	// Mark reference becomes 1064: [798, 1331].
	assert.True(t, m.MatchMark(1331, 1014))
	assert.False(t, m.MatchMark(1332, 1014))
	assert.True(t, m.MatchMark(798, 1014))
	assert.False(t, m.MatchMark(797, 1014))
	// Space reference becomes 548: [411, 686].
	assert.True(t, m.MatchSpace(411, 598))
	assert.False(t, m.MatchSpace(410, 598))
	assert.True(t, m.MatchSpace(686, 598))
	assert.False(t, m.MatchSpace(687, 598))
	// Spaces shorter than the excess match against zero.
	assert.True(t, m.MatchSpace(1, 20))
}

func TestMatchAtLeast(t *testing.T) {
	m := DefaultMatcher()
	assert.True(t, m.MatchAtLeast(0, 10400), "zero is receiver overflow")
	assert.True(t, m.MatchAtLeast(7800, 10400))
	assert.False(t, m.MatchAtLeast(7799, 10400))
	assert.True(t, m.MatchAtLeast(100000, 10400))
	// The reference is capped at the timeout: 15000 * 0.75.
	assert.True(t, m.MatchAtLeast(11250, 40000))
	assert.False(t, m.MatchAtLeast(11249, 40000))

	m.Timeout = 0
	assert.False(t, m.MatchAtLeast(11250, 40000), "no timeout means no cap")

	m.Timeout = 2 * time.Millisecond
	assert.True(t, m.MatchAtLeast(1500, 10400))
}
