package ir

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecorderMergesAndTracksElapsed(t *testing.T) {
	r := NewRecorder()
	r.Space(100) // leading space is dropped
	r.Mark(500)
	r.Mark(100)
	r.Space(300)
	r.Space(200)
	r.Mark(50)

	assert.Equal(t, []uint32{600, 500, 50}, r.Durations())
	assert.Equal(t, uint32(1250), r.Elapsed())

	r.Reset()
	assert.Equal(t, uint32(0), r.Elapsed())
	assert.Len(t, r.Durations(), 3, "reset only restarts the clock")

	r.Clear()
	assert.Empty(t, r.Durations())
}

func TestRecorderDurationsIsACopy(t *testing.T) {
	r := NewRecorder()
	r.Mark(10)
	d := r.Durations()
	d[0] = 99
	assert.Equal(t, []uint32{10}, r.Durations())
}

func TestWallTimer(t *testing.T) {
	w := NewWallTimer()
	time.Sleep(2 * time.Millisecond)
	assert.GreaterOrEqual(t, w.Elapsed(), uint32(2000))
	w.Reset()
	assert.Less(t, w.Elapsed(), uint32(2000))
}
