package renderer

import (
	"math"

	"github.com/jmorales/go-diorama-raytracer/pkg/core"
)

const (
	// pitchLimit keeps the orbit away from the poles so the forward and up
	// vectors never become parallel
	pitchLimit = math.Pi/2 - 0.1

	// minOrbitDistance stops Zoom from pushing the eye through the target,
	// which would make the forward basis vector undefined
	minOrbitDistance = 0.1
)

// Camera holds the eye, target and up vectors used to turn screen
// coordinates into world-space ray directions. Eye must never coincide with
// Center; Orbit and Zoom maintain that invariant.
type Camera struct {
	Eye     core.Vec3
	Center  core.Vec3
	Up      core.Vec3
	changed bool
}

// NewCamera creates a camera at eye looking at center
func NewCamera(eye, center, up core.Vec3) *Camera {
	return &Camera{
		Eye:     eye,
		Center:  center,
		Up:      up,
		changed: true,
	}
}

// BasisChange rotates a camera-space direction into world space using the
// orthonormal basis built from (Center - Eye) and Up. The camera looks down
// its local negative z axis.
func (c *Camera) BasisChange(v core.Vec3) core.Vec3 {
	forward := c.Center.Subtract(c.Eye).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward) // already unit length

	return right.Multiply(v.X).
		Add(up.Multiply(v.Y)).
		Subtract(forward.Multiply(v.Z))
}

// RayDirection maps a pixel to a world-space ray direction. Screen
// coordinates are converted to normalized device coordinates scaled by the
// aspect ratio and the field-of-view half-angle tangent, then rotated into
// world space.
func (c *Camera) RayDirection(x, y, width, height int, fov float64) core.Vec3 {
	w := float64(width)
	h := float64(height)
	aspectRatio := w / h
	scale := math.Tan(fov / 2)

	screenX := (2.0*float64(x)/w - 1.0) * aspectRatio * scale
	screenY := (-2.0*float64(y)/h + 1.0) * scale

	local := core.NewVec3(screenX, screenY, -1).Normalize()
	return c.BasisChange(local)
}

// Orbit moves the eye on a sphere of constant radius around Center. Yaw
// wraps modulo 2π; pitch is clamped short of the poles.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	radiusVector := c.Eye.Subtract(c.Center)
	radius := radiusVector.Length()
	radiusXZ := math.Sqrt(radiusVector.X*radiusVector.X + radiusVector.Z*radiusVector.Z)

	yaw := math.Atan2(radiusVector.Z, radiusVector.X)
	pitch := math.Atan2(-radiusVector.Y, radiusXZ)

	newYaw := math.Mod(yaw+deltaYaw, 2*math.Pi)
	newPitch := clampPitch(pitch + deltaPitch)

	cosPitch := math.Cos(newPitch)
	c.Eye = c.Center.Add(core.NewVec3(
		radius*math.Cos(newYaw)*cosPitch,
		-radius*math.Sin(newPitch),
		radius*math.Sin(newYaw)*cosPitch,
	))
	c.changed = true
}

// Zoom moves the eye along the view direction; positive delta moves toward
// the target. The eye is kept at least minOrbitDistance away from Center.
func (c *Camera) Zoom(delta float64) {
	toCenter := c.Center.Subtract(c.Eye)
	distance := toCenter.Length()

	move := delta
	if distance-move < minOrbitDistance {
		move = distance - minOrbitDistance
	}

	c.Eye = c.Eye.Add(toCenter.Normalize().Multiply(move))
	c.changed = true
}

// Changed reports and consumes the dirty flag set by Orbit and Zoom. The
// flag is advisory: drivers use it to skip recomputing unchanged frames.
func (c *Camera) Changed() bool {
	if c.changed {
		c.changed = false
		return true
	}
	return false
}

func clampPitch(pitch float64) float64 {
	if pitch < -pitchLimit {
		return -pitchLimit
	}
	if pitch > pitchLimit {
		return pitchLimit
	}
	return pitch
}
