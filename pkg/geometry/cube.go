package geometry

import (
	"math"

	"github.com/jmorales/go-diorama-raytracer/pkg/core"
	"github.com/jmorales/go-diorama-raytracer/pkg/material"
)

// Cube is an axis-aligned box defined by its min and max corners.
// Min must be component-wise strictly less than Max.
type Cube struct {
	Min      core.Vec3
	Max      core.Vec3
	Material *material.Material
}

// NewCube creates a new axis-aligned cube
func NewCube(min, max core.Vec3, mat *material.Material) *Cube {
	return &Cube{Min: min, Max: max, Material: mat}
}

// Center returns the center point of the cube
func (c *Cube) Center() core.Vec3 {
	return c.Min.Add(c.Max).Multiply(0.5)
}

// SurfaceMaterial returns the cube's material
func (c *Cube) SurfaceMaterial() *material.Material {
	return c.Material
}

// Intersect tests the ray against the cube using the slab method. The
// reported distance is max(tmin, 0): for origins inside the box the entry
// distance would be negative, and the clamp is applied uniformly so callers
// never see a hit behind the ray origin. The normal is the outward normal of
// the face struck at the entry parameter, and U/V locate the hit within that
// face, normalized to [0, 1] along its two tangent axes.
func (c *Cube) Intersect(origin, direction core.Vec3) Intersect {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)
	entryAxis := -1

	for axis := 0; axis < 3; axis++ {
		o := origin.Component(axis)
		d := direction.Component(axis)
		lo := c.Min.Component(axis)
		hi := c.Max.Component(axis)

		if math.Abs(d) < 1e-12 {
			// Ray parallel to this slab: either inside it for all t or a miss
			if o < lo || o > hi {
				return NoIntersect()
			}
			continue
		}

		invD := 1.0 / d
		t1 := (lo - o) * invD
		t2 := (hi - o) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if t1 > tMin {
			tMin = t1
			entryAxis = axis
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return NoIntersect()
		}
	}

	if tMax < 0 || entryAxis < 0 {
		return NoIntersect()
	}

	distance := math.Max(tMin, 0)
	point := origin.Add(direction.Multiply(distance))
	normal := c.faceNormal(entryAxis, direction)
	u, v := c.faceUV(entryAxis, point)

	return Intersect{
		Point:    point,
		Normal:   normal,
		Distance: distance,
		U:        u,
		V:        v,
		Material: c.Material,
		Hit:      true,
	}
}

// faceNormal returns the outward normal of the entry face: the ray enters
// through the face whose normal opposes the ray direction on the entry axis.
func (c *Cube) faceNormal(axis int, direction core.Vec3) core.Vec3 {
	sign := -1.0
	if direction.Component(axis) < 0 {
		sign = 1.0
	}
	switch axis {
	case 0:
		return core.NewVec3(sign, 0, 0)
	case 1:
		return core.NewVec3(0, sign, 0)
	default:
		return core.NewVec3(0, 0, sign)
	}
}

// faceUV maps the hit point onto the struck face's two tangent axes,
// normalized by the cube's extent along each.
func (c *Cube) faceUV(axis int, point core.Vec3) (float64, float64) {
	size := c.Max.Subtract(c.Min)

	var u, v float64
	switch axis {
	case 0: // X face: u along Z, v along Y
		u = (point.Z - c.Min.Z) / size.Z
		v = (point.Y - c.Min.Y) / size.Y
	case 1: // Y face: u along X, v along Z
		u = (point.X - c.Min.X) / size.X
		v = (point.Z - c.Min.Z) / size.Z
	default: // Z face: u along X, v along Y
		u = (point.X - c.Min.X) / size.X
		v = (point.Y - c.Min.Y) / size.Y
	}

	return clamp01(u), clamp01(v)
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
