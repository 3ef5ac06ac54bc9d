package xmi

import (
	"testing"

	"github.com/danmuck/irctl/internal/ir"
	"github.com/stretchr/testify/assert"
)

func TestTimingTableIsTickAligned(t *testing.T) {
	pairs := []struct {
		name  string
		ticks uint32
		usec  uint32
	}{
		{"hdr mark", HdrMarkTicks, HdrMark},
		{"hdr space", HdrSpaceTicks, HdrSpace},
		{"bit mark", BitMarkTicks, BitMark},
		{"space 0", BitSpace0Ticks, BitSpace0},
		{"space 1", BitSpace1Ticks, BitSpace1},
		{"space 2", BitSpace2Ticks, BitSpace2},
		{"space 3", BitSpace3Ticks, BitSpace3},
		{"rpt length", RptLengthTicks, RptLength},
		{"min gap", MinGapTicks, MinGap},
	}
	for _, p := range pairs {
		// Within half a tick of ticks*Tick.
		diff := int64(p.ticks*Tick) - int64(p.usec)
		assert.LessOrEqual(t, diff*diff, int64(Tick*Tick/4), p.name)
	}
}

func TestSymbolsStrictlyIncrease(t *testing.T) {
	for i := 1; i < len(symbols); i++ {
		assert.Greater(t, symbols[i].usec, symbols[i-1].usec)
		assert.Greater(t, symbols[i].ticks, symbols[i-1].ticks)
	}
}

func TestNominalSymbolsAreUnambiguous(t *testing.T) {
	m := ir.DefaultMatcher()
	for want, s := range symbols {
		got, ok := classify(m, s.usec, Tick)
		assert.True(t, ok, "symbol %d", want)
		assert.Equal(t, uint64(want), got)

		// No longer symbol's band reaches back to this duration's neighbour.
		if want+1 < len(symbols) {
			next := symbols[want+1]
			assert.False(t, m.Match(next.usec, s.ticks*Tick, s.tolerance),
				"symbol %d band covers symbol %d", want, want+1)
		}
	}
}

func TestSymbolSpace(t *testing.T) {
	assert.Equal(t, uint32(BitSpace0), SymbolSpace(0))
	assert.Equal(t, uint32(BitSpace1), SymbolSpace(1))
	assert.Equal(t, uint32(BitSpace2), SymbolSpace(2))
	assert.Equal(t, uint32(BitSpace3), SymbolSpace(3))
	assert.Equal(t, uint32(BitSpace1), SymbolSpace(0b101))
}
