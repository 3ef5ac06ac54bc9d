package xmi

import "github.com/danmuck/irctl/internal/ir"

// Timing table. Every duration is a whole number of Tick-length units; the
// microsecond values are what a nominal transmitter emits.
const (
	Tick = 26

	HdrMarkTicks  = 39
	HdrMark       = 1014
	HdrSpaceTicks = 23
	HdrSpace      = 598
	BitMarkTicks  = 23
	BitMark       = 598

	BitSpace0Ticks = 23
	BitSpace0      = 598
	BitSpace1Ticks = 35
	BitSpace1      = 910
	BitSpace2Ticks = 46
	BitSpace2      = 1196
	BitSpace3Ticks = 57
	BitSpace3      = 1482

	RptLengthTicks = 1068
	RptLength      = 27778
	MinGapTicks    = 400
	MinGap         = 10400

	// Tolerance is the percentage used for the two longest data spaces.
	Tolerance = 10

	CarrierHz   = 38000
	DutyPercent = 33
)

const (
	// Bits is the usual message width.
	Bits = 20
	// MinBits is the shortest payload a strict decode accepts.
	MinBits = 20
	// MaxBits is the widest value the codec can carry.
	MaxBits = 64
	// MinRepeat is the default number of extra frames sent.
	MinRepeat = 0

	bitsPerSymbol = 2
	symbolMask    = 0b11
)

// symbol is one 2-bit payload value and the space that carries it.
type symbol struct {
	ticks     uint32
	usec      uint32
	tolerance uint8
}

// symbols is indexed by symbol value. Durations strictly increase with the
// index and the decoder tries them in this order.
var symbols = [4]symbol{
	{ticks: BitSpace0Ticks, usec: BitSpace0, tolerance: ir.UseDefaultTolerance},
	{ticks: BitSpace1Ticks, usec: BitSpace1, tolerance: ir.UseDefaultTolerance},
	{ticks: BitSpace2Ticks, usec: BitSpace2, tolerance: Tolerance},
	{ticks: BitSpace3Ticks, usec: BitSpace3, tolerance: Tolerance},
}

// SymbolSpace returns the space duration in microseconds that carries sym.
// Only the low two bits of sym are used.
func SymbolSpace(sym uint64) uint32 {
	return symbols[sym&symbolMask].usec
}
