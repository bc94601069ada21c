package scene

import (
	"github.com/jmorales/go-diorama-raytracer/pkg/geometry"
	"github.com/jmorales/go-diorama-raytracer/pkg/material"
	"github.com/jmorales/go-diorama-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. Objects, materials
// and textures are immutable once the scene is built; the driver may swap
// Lights between frames (day/night) but never during a render.
type Scene struct {
	Camera  *renderer.Camera
	Objects []geometry.Intersectable
	Lights  []renderer.Light
	Skybox  *material.Texture
}

// GetObjects implements renderer.Scene
func (s *Scene) GetObjects() []geometry.Intersectable {
	return s.Objects
}

// GetLights implements renderer.Scene
func (s *Scene) GetLights() []renderer.Light {
	return s.Lights
}

// GetSkybox implements renderer.Scene
func (s *Scene) GetSkybox() *material.Texture {
	return s.Skybox
}
