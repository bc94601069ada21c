package geometry

import (
	"math"

	"github.com/jmorales/go-diorama-raytracer/pkg/core"
	"github.com/jmorales/go-diorama-raytracer/pkg/material"
)

// Intersect is the result of one ray/object test. It lives only for the
// duration of a single cast and the lighting computation derived from it.
type Intersect struct {
	Point    core.Vec3          // World-space hit point
	Normal   core.Vec3          // Outward surface normal at the hit
	Distance float64            // Ray parameter at the hit
	U, V     float64            // Surface coordinates within the struck face
	Material *material.Material // Material of the struck object
	Hit      bool
}

// NoIntersect returns the identity element for the closest-hit reduction:
// no hit, at infinite distance.
func NoIntersect() Intersect {
	return Intersect{Distance: math.Inf(1)}
}

// Intersectable is the capability the shader traces against. The caller must
// pass a unit-length direction.
type Intersectable interface {
	Intersect(origin, direction core.Vec3) Intersect
}

// Emitter is implemented by objects whose material can act as a light
// emitter for indirect lighting
type Emitter interface {
	Intersectable
	Center() core.Vec3
	SurfaceMaterial() *material.Material
}
