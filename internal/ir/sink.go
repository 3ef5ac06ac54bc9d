package ir

import "time"

// Sink drives an emitter. Mark and Space block for roughly the requested
// number of microseconds with the carrier on or off.
type Sink interface {
	Mark(usec uint32)
	Space(usec uint32)
}

// Timer measures microseconds since the last Reset.
type Timer interface {
	Reset()
	Elapsed() uint32
}

// Modulator is implemented by sinks that generate their own carrier.
type Modulator interface {
	SetCarrier(hz uint32, dutyPercent uint8)
}

// Recorder is a Sink that stores the pulse train instead of emitting it. It
// is also a Timer whose clock only advances by the durations it records, so
// encoders driven by it are deterministic.
type Recorder struct {
	durations []uint32
	elapsed   uint32
	carrierHz uint32
	duty      uint8
}

var (
	_ Sink      = (*Recorder)(nil)
	_ Timer     = (*Recorder)(nil)
	_ Modulator = (*Recorder)(nil)
)

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Mark records a mark. Consecutive marks are merged.
func (r *Recorder) Mark(usec uint32) {
	r.elapsed += usec
	if len(r.durations)%2 == 1 {
		r.durations[len(r.durations)-1] += usec
		return
	}
	r.durations = append(r.durations, usec)
}

// Space records a space. Consecutive spaces are merged and a space before
// the first mark is dropped, so recordings always start with a mark.
func (r *Recorder) Space(usec uint32) {
	r.elapsed += usec
	if len(r.durations) == 0 {
		return
	}
	if len(r.durations)%2 == 0 {
		r.durations[len(r.durations)-1] += usec
		return
	}
	r.durations = append(r.durations, usec)
}

func (r *Recorder) Reset() {
	r.elapsed = 0
}

func (r *Recorder) Elapsed() uint32 {
	return r.elapsed
}

func (r *Recorder) SetCarrier(hz uint32, dutyPercent uint8) {
	r.carrierHz = hz
	r.duty = dutyPercent
}

// Carrier returns the last carrier configured by an encoder.
func (r *Recorder) Carrier() (hz uint32, dutyPercent uint8) {
	return r.carrierHz, r.duty
}

// Durations returns a copy of the recorded pulse train, mark first.
func (r *Recorder) Durations() []uint32 {
	out := make([]uint32, len(r.durations))
	copy(out, r.durations)
	return out
}

// Clear drops everything recorded so far.
func (r *Recorder) Clear() {
	r.durations = r.durations[:0]
	r.elapsed = 0
}

// WallTimer is a Timer backed by the monotonic clock, for real emitters.
type WallTimer struct {
	start time.Time
}

func NewWallTimer() *WallTimer {
	return &WallTimer{start: time.Now()}
}

func (t *WallTimer) Reset() {
	t.start = time.Now()
}

func (t *WallTimer) Elapsed() uint32 {
	return uint32(time.Since(t.start) / time.Microsecond)
}
