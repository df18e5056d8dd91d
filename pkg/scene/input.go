package scene

import "time"

// Key is a logical control key. Front-ends map their physical keys onto these.
type Key int

const (
	Forward   Key = iota // W or Up
	Back                 // S or Down
	TurnLeft             // A
	TurnRight            // D
)

func (k Key) String() string {
	switch k {
	case Forward:
		return "forward"
	case Back:
		return "back"
	case TurnLeft:
		return "turn-left"
	case TurnRight:
		return "turn-right"
	}
	return "unknown"
}

// Input reports which control keys are held at the time of the call.
type Input interface {
	IsKeyDown(k Key) bool
}

// KeySet is a fixed set of held keys.
type KeySet map[Key]bool

// IsKeyDown implements Input.
func (ks KeySet) IsKeyDown(k Key) bool {
	return ks[k]
}

// DefaultHoldTimeout is how long a key counts as held after its last press
// or repeat when no release event arrives.
const DefaultHoldTimeout = 150 * time.Millisecond

// HeldKeys turns a stream of press, repeat and release events into held-key
// state. Terminals without key release reporting only send presses and
// auto-repeats, so a key also drops out once Timeout passes without one.
//
// HeldKeys is not safe for concurrent use.
type HeldKeys struct {
	Timeout time.Duration

	now     func() time.Time
	pressed map[Key]time.Time
}

// NewHeldKeys creates an empty held-key set.
func NewHeldKeys(timeout time.Duration) *HeldKeys {
	return &HeldKeys{
		Timeout: timeout,
		now:     time.Now,
		pressed: make(map[Key]time.Time),
	}
}

// Press records a press or repeat of k.
func (h *HeldKeys) Press(k Key) {
	h.pressed[k] = h.now()
}

// Release records that k was let go.
func (h *HeldKeys) Release(k Key) {
	delete(h.pressed, k)
}

// Clear releases every key.
func (h *HeldKeys) Clear() {
	clear(h.pressed)
}

// IsKeyDown implements Input.
func (h *HeldKeys) IsKeyDown(k Key) bool {
	t, ok := h.pressed[k]
	if !ok {
		return false
	}
	if h.now().Sub(t) > h.Timeout {
		delete(h.pressed, k)
		return false
	}
	return true
}
