package renderer

import (
	"math"
	"math/rand"

	"github.com/jmorales/go-diorama-raytracer/pkg/core"
	"github.com/jmorales/go-diorama-raytracer/pkg/geometry"
	"github.com/jmorales/go-diorama-raytracer/pkg/material"
)

// bias offsets secondary ray origins along the surface normal to avoid
// self-intersection ("shadow acne")
const bias = 0.001

var (
	skyColor         = core.NewColor(135, 206, 235) // light sky blue
	ambientColor     = core.NewColor(50, 50, 50)
	ambientIntensity = 0.3
)

// Light is a point light source. Lights are immutable scene data; the
// driver may swap the light list between frames but never during a render.
type Light struct {
	Position  core.Vec3
	Color     core.Color
	Intensity float64
}

// NewLight creates a point light
func NewLight(position core.Vec3, color core.Color, intensity float64) Light {
	return Light{Position: position, Color: color, Intensity: intensity}
}

// Scene provides the read-only data a render needs. Defined here to avoid a
// circular import with the scene package.
type Scene interface {
	GetObjects() []geometry.Intersectable
	GetLights() []Light
	GetSkybox() *material.Texture
}

// Config contains shading configuration
type Config struct {
	MaxDepth        int // Recursion budget for reflection/refraction
	EmissiveSamples int // Sphere samples per hit for emissive gathering
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:        3,
		EmissiveSamples: 16,
	}
}

// Raytracer shades rays against a scene
type Raytracer struct {
	scene   Scene
	config  Config
	sampler core.Sampler
}

// NewRaytracer creates a raytracer with a deterministic sampler seed
func NewRaytracer(scene Scene) *Raytracer {
	return &Raytracer{
		scene:   scene,
		config:  DefaultConfig(),
		sampler: core.NewRandomSampler(rand.New(rand.NewSource(42))),
	}
}

// SetConfig updates the shading configuration
func (rt *Raytracer) SetConfig(config Config) {
	rt.config = config
}

// SetSampler replaces the sampler used for emissive gathering
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// Reflect mirrors an incident direction off a surface with the given normal
func Reflect(incident, normal core.Vec3) core.Vec3 {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal)))
}

// refract bends an incident direction through a surface with the given
// refractive index using Snell's law. Returns false on total internal
// reflection.
func refract(incident, normal core.Vec3, refractiveIndex float64) (core.Vec3, bool) {
	n := normal
	ratio := 1.0 / refractiveIndex
	cosTheta := -incident.Dot(normal)
	if cosTheta < 0 {
		// Ray is leaving the object: flip the normal and invert the ratio
		cosTheta = -cosTheta
		n = normal.Negate()
		ratio = refractiveIndex
	}

	sin2Refracted := ratio * ratio * (1.0 - cosTheta*cosTheta)
	if sin2Refracted > 1.0 {
		return core.Vec3{}, false
	}

	cosRefracted := math.Sqrt(1.0 - sin2Refracted)
	refracted := incident.Multiply(ratio).
		Add(n.Multiply(ratio*cosTheta - cosRefracted))
	return refracted.Normalize(), true
}

// offsetPoint nudges a secondary ray origin off the surface along its normal
func offsetPoint(isect geometry.Intersect) core.Vec3 {
	return isect.Point.Add(isect.Normal.Multiply(bias))
}

// closestHit runs the linear scan over all objects. Ties are broken by list
// order, which keeps the result deterministic.
func (rt *Raytracer) closestHit(origin, direction core.Vec3) geometry.Intersect {
	closest := geometry.NoIntersect()
	for _, object := range rt.scene.GetObjects() {
		isect := object.Intersect(origin, direction)
		if isect.Hit && isect.Distance < closest.Distance {
			closest = isect
		}
	}
	return closest
}

// skyboxColor samples the environment for a ray that escaped the scene,
// using equirectangular mapping into the sky texture when one is set.
func (rt *Raytracer) skyboxColor(direction core.Vec3) core.Color {
	skybox := rt.scene.GetSkybox()
	if skybox == nil {
		return skyColor
	}

	dir := direction.Normalize()
	u := 0.5 + math.Atan2(dir.X, dir.Z)/(2*math.Pi)
	v := 0.5 - math.Asin(dir.Y)/math.Pi
	return skybox.AtUV(u, v)
}

// castShadow returns the shadow factor in [0, 1] for a light as seen from a
// hit point: 0 when the light is unobstructed, 1 when fully occluded. An
// emissive occluder attenuates with inverse-square falloff from its surface
// instead of blocking the light completely.
func (rt *Raytracer) castShadow(isect geometry.Intersect, light Light) float64 {
	lightDir := light.Position.Subtract(isect.Point).Normalize()
	lightDistance := light.Position.Subtract(isect.Point).Length()
	shadowOrigin := offsetPoint(isect)

	for _, object := range rt.scene.GetObjects() {
		shadow := object.Intersect(shadowOrigin, lightDir)
		if !shadow.Hit || shadow.Distance >= lightDistance {
			continue
		}
		if shadow.Material.Emissive() {
			d := shadow.Distance
			return clampUnit(1.0 - shadow.Material.EmissionIntensity/(1.0+d*d))
		}
		return 1.0
	}
	return 0.0
}

// gatherEmission approximates indirect lighting from emissive objects by
// sampling random directions on the unit sphere and weighting each sample by
// the cosine term and inverse-square falloff from the emitter's center. This
// is a biased, noisy estimate rather than a full Monte Carlo integrator.
func (rt *Raytracer) gatherEmission(isect geometry.Intersect) core.Color {
	total := core.Black()
	samples := rt.config.EmissiveSamples
	if samples <= 0 {
		return total
	}

	for _, object := range rt.scene.GetObjects() {
		emitter, ok := object.(geometry.Emitter)
		if !ok {
			continue
		}
		mat := emitter.SurfaceMaterial()
		if !mat.Emissive() {
			continue
		}

		distance := emitter.Center().Subtract(isect.Point).Length()
		falloff := 1.0 / (1.0 + distance*distance)

		for i := 0; i < samples; i++ {
			dir := core.SampleUnitSphere(rt.sampler.Get2D())
			cosine := isect.Normal.Dot(dir)
			if cosine <= 0 {
				continue
			}
			weight := mat.EmissionIntensity * cosine * falloff / float64(samples)
			total = total.Add(mat.Emission.Scale(weight))
		}
	}
	return total
}

// CastRay traces a ray into the scene and returns the shaded color. The
// recursion budget covers reflective and transmissive bounces; when it runs
// out the flat sky color is returned.
func (rt *Raytracer) CastRay(origin, direction core.Vec3, depth int) core.Color {
	if depth >= rt.config.MaxDepth {
		return skyColor
	}

	isect := rt.closestHit(origin, direction)
	if !isect.Hit {
		return rt.skyboxColor(direction)
	}

	total := ambientColor.Scale(ambientIntensity)

	for _, light := range rt.scene.GetLights() {
		lightDir := light.Position.Subtract(isect.Point).Normalize()
		viewDir := origin.Subtract(isect.Point).Normalize()
		reflectDir := Reflect(lightDir.Negate(), isect.Normal).Normalize()

		shadow := rt.castShadow(isect, light)
		intensity := light.Intensity * (1.0 - shadow)

		diffuseFactor := clampUnit(isect.Normal.Dot(lightDir))
		diffuse := isect.Material.DiffuseColor(isect.U, isect.V).
			Scale(isect.Material.Albedo[0] * diffuseFactor * intensity)

		specularFactor := math.Pow(math.Max(viewDir.Dot(reflectDir), 0), isect.Material.Specular)
		specular := light.Color.Scale(isect.Material.Albedo[1] * specularFactor * intensity)

		total = total.Add(diffuse).Add(specular)
	}

	total = total.Add(rt.gatherEmission(isect))

	if reflectWeight := isect.Material.Albedo[2]; reflectWeight > 0 {
		reflected := Reflect(direction, isect.Normal).Normalize()
		bounce := rt.CastRay(offsetPoint(isect), reflected, depth+1)
		total = total.Add(bounce.Scale(reflectWeight))
	}

	if transmitWeight := isect.Material.Albedo[3]; transmitWeight > 0 {
		var bounce core.Color
		if refracted, ok := refract(direction, isect.Normal, isect.Material.RefractiveIndex); ok {
			// The refracted ray starts just inside the surface
			transmitOrigin := isect.Point.Subtract(isect.Normal.Multiply(bias))
			bounce = rt.CastRay(transmitOrigin, refracted, depth+1)
		} else {
			// Total internal reflection
			reflected := Reflect(direction, isect.Normal).Normalize()
			bounce = rt.CastRay(offsetPoint(isect), reflected, depth+1)
		}
		total = total.Add(bounce.Scale(transmitWeight))
	}

	// Color arithmetic saturates, so the accumulated result is already
	// clamped channel-wise into [0, 255]
	return total
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
