package xmi

import (
	"fmt"

	"github.com/danmuck/irctl/internal/ir"
)

const (
	// minEntries is header mark, header space, one data entry and the
	// footer mark.
	minEntries = 4
	// frameOverhead is the number of entries in a frame that carry no
	// payload: the header pair, the footer mark and the trailing gap.
	frameOverhead = 4
)

// Decode recovers an nbits XMI value from raw, starting at offset, using the
// default matcher. raw holds alternating mark/space durations in
// microseconds, mark first at offset.
//
// In strict mode the capture must be long enough for MinBits and for nbits,
// and exactly nbits must be decoded.
func Decode(raw []uint32, offset int, nbits uint16, strict bool) (ir.Result, error) {
	return DecodeWith(ir.DefaultMatcher(), raw, offset, nbits, strict)
}

// DecodeWith is Decode with an explicit matcher.
//
// The tick length is recovered from the header mark and header space
// independently, and every later comparison is scaled by it. This absorbs
// a transmitter clock that runs uniformly fast or slow.
func DecodeWith(m ir.Matcher, raw []uint32, offset int, nbits uint16, strict bool) (ir.Result, error) {
	if offset < 0 || offset > len(raw) {
		return ir.Result{}, fmt.Errorf("%w: offset %d outside capture of %d", ErrInsufficientData, offset, len(raw))
	}
	cur := ir.NewCursor(raw, offset)
	if cur.Remaining() < minEntries {
		return ir.Result{}, fmt.Errorf("%w: %d entries after offset %d", ErrInsufficientData, cur.Remaining(), offset)
	}

	maxBitSize := min(cur.Remaining()-frameOverhead, MaxBits)
	if strict {
		if maxBitSize < MinBits {
			return ir.Result{}, fmt.Errorf("%w: room for %d bits, need %d", ErrNonCompliantLength, maxBitSize, MinBits)
		}
		if maxBitSize < int(nbits) {
			return ir.Result{}, fmt.Errorf("%w: room for %d bits, want %d", ErrNonCompliantLength, maxBitSize, nbits)
		}
	}

	// Header
	hdrMark, cur, _ := cur.Next()
	if !m.MatchMark(hdrMark, HdrMark) {
		return ir.Result{}, fmt.Errorf("%w: mark %d at %d", ErrHeaderMismatch, hdrMark, offset)
	}
	markTick := hdrMark / HdrMarkTicks
	hdrSpace, cur, _ := cur.Next()
	if !m.MatchSpace(hdrSpace, HdrSpace) {
		return ir.Result{}, fmt.Errorf("%w: space %d at %d", ErrHeaderMismatch, hdrSpace, offset+1)
	}
	spaceTick := hdrSpace / HdrSpaceTicks

	// Data
	var data uint64
	var actualBits uint16
	for actualBits = 0; actualBits < nbits; actualBits += bitsPerSymbol {
		mark, next, ok := cur.Next()
		if !ok || !m.Match(mark, BitMarkTicks*markTick, ir.UseDefaultTolerance) {
			return ir.Result{}, fmt.Errorf("%w: mark at %d after %d bits", ErrBitMismatch, cur.Pos(), actualBits)
		}
		space, next, ok := next.Next()
		if !ok {
			return ir.Result{}, fmt.Errorf("%w: capture ends inside symbol after %d bits", ErrBitMismatch, actualBits)
		}
		sym, ok := classify(m, space, spaceTick)
		if !ok {
			return ir.Result{}, fmt.Errorf("%w: space %d at %d after %d bits", ErrBitMismatch, space, next.Pos()-1, actualBits)
		}
		data = data<<bitsPerSymbol | sym
		cur = next
	}

	// Footer
	footer, cur, ok := cur.Next()
	if !ok || !m.Match(footer, BitMarkTicks*markTick, ir.UseDefaultTolerance) {
		return ir.Result{}, fmt.Errorf("%w: closing mark at %d", ErrFooterMismatch, cur.Pos())
	}
	if gap, ok := cur.Peek(); ok && !m.MatchAtLeast(gap, MinGapTicks*spaceTick) {
		return ir.Result{}, fmt.Errorf("%w: gap %d at %d too short", ErrFooterMismatch, gap, cur.Pos())
	}

	// Compliance
	if strict && actualBits != nbits {
		return ir.Result{}, fmt.Errorf("%w: decoded %d, want %d", ErrBitCountMismatch, actualBits, nbits)
	}

	return ir.Result{
		Protocol: ir.XMI,
		Value:    data,
		Bits:     actualBits,
		Address:  0,
		Command:  0,
	}, nil
}

// classify maps a space to the first symbol whose scaled duration it
// matches.
func classify(m ir.Matcher, space, spaceTick uint32) (uint64, bool) {
	for sym, s := range symbols {
		if m.Match(space, s.ticks*spaceTick, s.tolerance) {
			return uint64(sym), true
		}
	}
	return 0, false
}
