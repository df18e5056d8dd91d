package scene

import "github.com/charmbracelet/harmonica"

// Motion eases the camera's forward speed toward the speed the keys ask for
// using a critically damped spring.
type Motion struct {
	Speed float64 // Current speed, units per second

	accel     float64 // spring velocity of Speed
	frequency float64
	damping   float64
}

// NewMotion creates a motion smoother that settles in roughly a quarter second.
func NewMotion() *Motion {
	return &Motion{
		// Frequency 8 = quick response, damping 1.0 = no overshoot
		frequency: 8.0,
		damping:   1.0,
	}
}

// Step moves Speed toward target over dt seconds and returns it.
func (m *Motion) Step(dt, target float64) float64 {
	if dt <= 0 {
		return m.Speed
	}
	spring := harmonica.NewSpring(dt, m.frequency, m.damping)
	m.Speed, m.accel = spring.Update(m.Speed, m.accel, target)
	return m.Speed
}

// Reset stops the motion immediately.
func (m *Motion) Reset() {
	m.Speed, m.accel = 0, 0
}
