package ir

import "time"

const (
	// DefaultTolerance is the +/- percentage applied when a caller does not
	// override it.
	DefaultTolerance uint8 = 25
	// UseDefaultTolerance selects the matcher's own tolerance. Any value
	// above 100 behaves the same way.
	UseDefaultTolerance uint8 = 255
	// DefaultMarkExcess compensates for receivers reporting marks long and
	// spaces short.
	DefaultMarkExcess uint16 = 50
	// DefaultTimeout caps the reference used by MatchAtLeast.
	DefaultTimeout = 15 * time.Millisecond
)

// Matcher holds the tolerance settings used when comparing observed
// durations against reference durations. All values are microseconds.
type Matcher struct {
	Tolerance  uint8
	MarkExcess uint16
	Timeout    time.Duration
}

func DefaultMatcher() Matcher {
	return Matcher{
		Tolerance:  DefaultTolerance,
		MarkExcess: DefaultMarkExcess,
		Timeout:    DefaultTimeout,
	}
}

func (m Matcher) tolerance(override uint8) uint8 {
	if override > 100 {
		if m.Tolerance > 100 {
			return DefaultTolerance
		}
		return m.Tolerance
	}
	return override
}

// TicksLow is the smallest duration accepted for desired.
func (m Matcher) TicksLow(desired uint32, tolerance uint8, delta uint16) uint32 {
	low := int64(float64(desired)*(1.0-float64(m.tolerance(tolerance))/100.0)) - int64(delta)
	if low < 0 {
		return 0
	}
	return uint32(low)
}

// TicksHigh is the largest duration accepted for desired.
func (m Matcher) TicksHigh(desired uint32, tolerance uint8, delta uint16) uint32 {
	return uint32(float64(desired)*(1.0+float64(m.tolerance(tolerance))/100.0)) + 1 + uint32(delta)
}

// Match reports whether measured lies within tolerance percent of desired.
// Pass UseDefaultTolerance to apply the matcher's tolerance.
func (m Matcher) Match(measured, desired uint32, tolerance uint8) bool {
	return measured >= m.TicksLow(desired, tolerance, 0) &&
		measured <= m.TicksHigh(desired, tolerance, 0)
}

// MatchMark matches a mark, allowing for the receiver's mark excess.
func (m Matcher) MatchMark(measured, desired uint32) bool {
	return m.Match(measured, desired+uint32(m.MarkExcess), UseDefaultTolerance)
}

// MatchSpace matches a space, allowing for the receiver's mark excess.
func (m Matcher) MatchSpace(measured, desired uint32) bool {
	ref := desired
	if ref > uint32(m.MarkExcess) {
		ref -= uint32(m.MarkExcess)
	} else {
		ref = 0
	}
	return m.Match(measured, ref, UseDefaultTolerance)
}

// MatchAtLeast reports whether measured is no shorter than desired, less the
// tolerance. References longer than the timeout are clamped to it, and a
// zero measurement (receiver overflow) always matches.
func (m Matcher) MatchAtLeast(measured, desired uint32) bool {
	if measured == 0 {
		return true
	}
	if m.Timeout > 0 {
		if limit := uint32(m.Timeout / time.Microsecond); desired > limit {
			desired = limit
		}
	}
	return measured >= m.TicksLow(desired, UseDefaultTolerance, 0)
}
