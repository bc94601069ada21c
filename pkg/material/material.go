package material

import "github.com/jmorales/go-diorama-raytracer/pkg/core"

// Material bundles the shading parameters for a surface. Materials are
// value-like and cheap to share; multiple objects typically point at the
// same instance.
//
// Albedo holds the four light-response weights: {diffuse, specular,
// reflective, transmissive}. The weights are not required to sum to 1.
type Material struct {
	Diffuse           core.Color // Flat base color used when no texture is set
	Specular          float64    // Phong exponent
	Albedo            [4]float64
	RefractiveIndex   float64
	Texture           *Texture   // Shared, read-only; may be nil
	Emission          core.Color // Emitted light color
	EmissionIntensity float64    // Emitter iff > 0
}

// NewMaterial creates a material with a flat diffuse color
func NewMaterial(diffuse core.Color, specular float64, albedo [4]float64, refractiveIndex float64) Material {
	return Material{
		Diffuse:         diffuse,
		Specular:        specular,
		Albedo:          albedo,
		RefractiveIndex: refractiveIndex,
	}
}

// NewTexturedMaterial creates a material whose diffuse color is sampled from
// a shared texture
func NewTexturedMaterial(specular float64, albedo [4]float64, refractiveIndex float64, texture *Texture) Material {
	return Material{
		Diffuse:         core.NewColor(255, 255, 255),
		Specular:        specular,
		Albedo:          albedo,
		RefractiveIndex: refractiveIndex,
		Texture:         texture,
	}
}

// WithEmission returns a copy of the material that also emits light
func (m Material) WithEmission(color core.Color, intensity float64) Material {
	m.Emission = color
	m.EmissionIntensity = intensity
	return m
}

// Emissive reports whether the material acts as a light emitter
func (m *Material) Emissive() bool {
	return m.EmissionIntensity > 0
}

// DiffuseColor returns the diffuse color at the given surface coordinates.
// Texture row 0 is the visual top, so v is flipped before sampling.
func (m *Material) DiffuseColor(u, v float64) core.Color {
	if m.Texture != nil {
		return m.Texture.AtUV(u, 1.0-v)
	}
	return m.Diffuse
}
