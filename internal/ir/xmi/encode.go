package xmi

import (
	"fmt"

	"github.com/danmuck/irctl/internal/ir"
)

// Send emits data as nbits of XMI payload, MSB first, followed by repeat
// additional copies of the frame. nbits must be even and within 2..64;
// bits of data above nbits are ignored.
//
// timer is reset at the start of every frame so the closing space pads the
// frame out to RptLength, never going below MinGap.
func Send(sink ir.Sink, timer ir.Timer, data uint64, nbits, repeat uint16) error {
	if err := checkBits(nbits); err != nil {
		return err
	}
	if m, ok := sink.(ir.Modulator); ok {
		m.SetCarrier(CarrierHz, DutyPercent)
	}

	for r := uint32(0); r <= uint32(repeat); r++ {
		timer.Reset()
		// Header
		sink.Mark(HdrMark)
		sink.Space(HdrSpace)
		// Data
		for shift := int(nbits) - bitsPerSymbol; shift >= 0; shift -= bitsPerSymbol {
			sink.Mark(BitMark)
			sink.Space(SymbolSpace(data >> uint(shift)))
		}
		// Footer
		sink.Mark(BitMark)
		sink.Space(trailingGap(timer.Elapsed()))
	}
	return nil
}

// Encode renders the frames Send would emit as a mark-first duration list.
func Encode(data uint64, nbits, repeat uint16) ([]uint32, error) {
	rec := ir.NewRecorder()
	if err := Send(rec, rec, data, nbits, repeat); err != nil {
		return nil, err
	}
	return rec.Durations(), nil
}

func checkBits(nbits uint16) error {
	if nbits%bitsPerSymbol != 0 {
		return fmt.Errorf("%w: %d", ErrOddBitCount, nbits)
	}
	if nbits < bitsPerSymbol || nbits > MaxBits {
		return fmt.Errorf("%w: %d not in %d..%d", ErrBitCountRange, nbits, bitsPerSymbol, MaxBits)
	}
	return nil
}

func trailingGap(elapsed uint32) uint32 {
	gap := int64(RptLength) - int64(elapsed)
	if gap < MinGap {
		return MinGap
	}
	return uint32(gap)
}
