package scene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeTime is a manually advanced clock source.
type fakeTime struct{ t time.Time }

func newFakeTime() *fakeTime {
	return &fakeTime{t: time.Unix(1700000000, 0)}
}

func (f *fakeTime) now() time.Time          { return f.t }
func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestKeySet(t *testing.T) {
	ks := KeySet{Forward: true, TurnLeft: false}
	assert.True(t, ks.IsKeyDown(Forward))
	assert.False(t, ks.IsKeyDown(TurnLeft))
	assert.False(t, ks.IsKeyDown(Back))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "turn-right", TurnRight.String())
	assert.Equal(t, "unknown", Key(99).String())
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys(DefaultHoldTimeout)
	ft := newFakeTime()
	h.now = ft.now

	h.Press(Forward)
	h.Press(TurnLeft)
	assert.True(t, h.IsKeyDown(Forward))
	assert.True(t, h.IsKeyDown(TurnLeft))

	h.Release(Forward)
	assert.False(t, h.IsKeyDown(Forward))
	assert.True(t, h.IsKeyDown(TurnLeft))

	h.Clear()
	assert.False(t, h.IsKeyDown(TurnLeft))
}

func TestHeldKeysTimeout(t *testing.T) {
	h := NewHeldKeys(DefaultHoldTimeout)
	ft := newFakeTime()
	h.now = ft.now

	h.Press(Back)
	ft.advance(100 * time.Millisecond)
	assert.True(t, h.IsKeyDown(Back))

	// A repeat refreshes the hold
	h.Press(Back)
	ft.advance(140 * time.Millisecond)
	assert.True(t, h.IsKeyDown(Back))

	ft.advance(20 * time.Millisecond)
	assert.False(t, h.IsKeyDown(Back))

	// Stays released until pressed again
	assert.False(t, h.IsKeyDown(Back))
}

func TestClockTick(t *testing.T) {
	ft := newFakeTime()
	c := newClock(ft.now)

	ft.advance(16 * time.Millisecond)
	assert.InDelta(t, 0.016, c.Tick(), 1e-9)

	ft.advance(2 * time.Second)
	assert.Equal(t, MaxFrameStep, c.Tick())

	assert.Zero(t, c.Tick())
}
