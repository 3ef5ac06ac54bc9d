// Package capture loads and renders raw infrared timing traces.
//
// A trace is a mark-first list of microsecond durations. Supported inputs:
// - plain number lists, comma or whitespace separated
// - receiver dumps of the form `uint16_t rawData[N] = {...};`
// - LIRC mode2 output (`pulse N` / `space N` lines)
// - YAML, JSON and TOML capture documents
package capture

import "errors"

var (
	ErrEmpty             = errors.New("capture: no durations")
	ErrBadToken          = errors.New("capture: invalid duration")
	ErrLengthMismatch    = errors.New("capture: declared length does not match data")
	ErrUnsupportedFormat = errors.New("capture: unsupported format")
)

// Capture is one trace plus the decode parameters stored alongside it.
// Zero Bits and nil Strict mean "use the caller's default".
type Capture struct {
	Durations []uint32 `json:"durations" yaml:"durations" toml:"durations"`
	Offset    int      `json:"offset,omitempty" yaml:"offset,omitempty" toml:"offset"`
	Bits      uint16   `json:"bits,omitempty" yaml:"bits,omitempty" toml:"bits"`
	Strict    *bool    `json:"strict,omitempty" yaml:"strict,omitempty" toml:"strict"`
	Source    string   `json:"-" yaml:"-" toml:"-"`
}

// StrictOr reports the stored strict flag, or def when none was stored.
func (c Capture) StrictOr(def bool) bool {
	if c.Strict == nil {
		return def
	}
	return *c.Strict
}

// BitsOr reports the stored bit width, or def when none was stored.
func (c Capture) BitsOr(def uint16) uint16 {
	if c.Bits == 0 {
		return def
	}
	return c.Bits
}

func (c Capture) validate() error {
	if len(c.Durations) == 0 {
		return ErrEmpty
	}
	return nil
}
