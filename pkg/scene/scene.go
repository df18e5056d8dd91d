// Package scene holds the mutable viewer state that the render pipeline reads
// once per frame, and the per-frame update that drives it from keyboard input.
package scene

import (
	"math"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/render"
)

// Movement rates.
const (
	MoveSpeed = 8.0 // Camera units per second along the look direction
	TurnSpeed = 1.0 // Yaw radians per second
)

// Control ranges applied by Clamp.
const (
	CameraLimit = 10.0
	LookLimit   = 3.14

	MinRotSpeed, MaxRotSpeed = 0.1, 5.0
	MinDistance, MaxDistance = 2.0, 20.0
	LightLimit               = 1.0

	MinFOV, MaxFOV   = 30.0, 120.0
	MinNear, MaxNear = 0.01, 1.0
	MinFar, MaxFar   = 100.0, 2000.0
)

// Scene is the viewer state: camera, object, light, display and projection
// parameters. Front-ends mutate it between frames and hand Frame() to the
// pipeline.
type Scene struct {
	// Camera
	Camera     math3d.Vec3H
	Pitch, Yaw float64

	// Object
	RotX, RotZ float64
	AutoRotate bool
	RotSpeed   float64
	Distance   float64

	// Light direction; normalized by the pipeline, so any non-zero length works
	Light math3d.Vec3H

	// Display
	Filled    bool
	Wireframe bool
	FillColor render.Color
	WireColor render.Color

	// Projection
	FOV, Near, Far float64

	// SmoothMotion eases camera movement in and out instead of starting and
	// stopping instantly.
	SmoothMotion bool

	motion *Motion
}

// New returns a scene with the startup defaults.
func New() *Scene {
	in := render.DefaultFrameInput()
	return &Scene{
		Camera:     in.Camera,
		Pitch:      in.Pitch,
		Yaw:        in.Yaw,
		AutoRotate: true,
		RotSpeed:   1,
		Distance:   in.Distance,
		Light:      in.Light,
		Filled:     in.Filled,
		Wireframe:  in.Wireframe,
		FillColor:  in.FillColor,
		WireColor:  in.WireColor,
		FOV:        in.FOV,
		Near:       in.Near,
		Far:        in.Far,
	}
}

// Frame returns the snapshot the pipeline renders from.
func (s *Scene) Frame() render.FrameInput {
	return render.FrameInput{
		Camera:    s.Camera,
		Pitch:     s.Pitch,
		Yaw:       s.Yaw,
		RotX:      s.RotX,
		RotZ:      s.RotZ,
		Distance:  s.Distance,
		Light:     s.Light,
		FillColor: s.FillColor,
		WireColor: s.WireColor,
		FOV:       s.FOV,
		Near:      s.Near,
		Far:       s.Far,
		Filled:    s.Filled,
		Wireframe: s.Wireframe,
	}
}

// LookDirection returns the camera's current forward vector.
func (s *Scene) LookDirection() math3d.Vec3H {
	return render.LookDirection(s.Pitch, s.Yaw)
}

// ResetCamera puts the camera back at the origin looking down +z.
func (s *Scene) ResetCamera() {
	s.Camera = math3d.Zero()
	s.Pitch, s.Yaw = 0, 0
	s.mover().Reset()
}

func (s *Scene) mover() *Motion {
	if s.motion == nil {
		s.motion = NewMotion()
	}
	return s.motion
}

// Clamp pulls every parameter back into its control range. Object rotation
// is wrapped into (-π, π] instead, which leaves the picture unchanged.
func (s *Scene) Clamp() {
	s.Camera = clampVec(s.Camera, CameraLimit)
	s.Pitch = clamp(s.Pitch, -LookLimit, LookLimit)
	s.Yaw = clamp(s.Yaw, -LookLimit, LookLimit)

	s.RotX = wrapAngle(s.RotX)
	s.RotZ = wrapAngle(s.RotZ)
	s.RotSpeed = clamp(s.RotSpeed, MinRotSpeed, MaxRotSpeed)
	s.Distance = clamp(s.Distance, MinDistance, MaxDistance)

	s.Light = clampVec(s.Light, LightLimit)

	s.FOV = clamp(s.FOV, MinFOV, MaxFOV)
	s.Near = clamp(s.Near, MinNear, MaxNear)
	s.Far = clamp(s.Far, MinFar, MaxFar)
}

// Update advances the scene by dt seconds.
//
// Auto-rotation spins the object about X at RotSpeed and about Z at half
// that. Forward and Back move the camera along the look direction it had
// at the start of the step; TurnLeft and TurnRight change yaw afterwards.
// Camera position is not clamped here, so flying keeps going past the
// control range until the next Clamp.
func (s *Scene) Update(dt float64, in Input) {
	if dt <= 0 {
		return
	}

	if s.AutoRotate {
		s.RotX = wrapAngle(s.RotX + s.RotSpeed*dt)
		s.RotZ = wrapAngle(s.RotZ + s.RotSpeed*0.5*dt)
	}

	var target float64
	var left, right bool
	if in != nil {
		if in.IsKeyDown(Forward) {
			target += MoveSpeed
		}
		if in.IsKeyDown(Back) {
			target -= MoveSpeed
		}
		left, right = in.IsKeyDown(TurnLeft), in.IsKeyDown(TurnRight)
	}

	speed := target
	if s.SmoothMotion {
		speed = s.mover().Step(dt, target)
	}
	if speed != 0 {
		s.Camera = s.Camera.Add(s.LookDirection().Scale(speed * dt))
	}

	if left {
		s.Yaw += TurnSpeed * dt
	}
	if right {
		s.Yaw -= TurnSpeed * dt
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampVec(v math3d.Vec3H, limit float64) math3d.Vec3H {
	return math3d.Point(
		clamp(v.X, -limit, limit),
		clamp(v.Y, -limit, limit),
		clamp(v.Z, -limit, limit),
	)
}

// wrapAngle maps a into (-π, π].
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
