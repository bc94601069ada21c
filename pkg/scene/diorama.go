package scene

import (
	"path/filepath"

	"github.com/jmorales/go-diorama-raytracer/pkg/core"
	"github.com/jmorales/go-diorama-raytracer/pkg/geometry"
	"github.com/jmorales/go-diorama-raytracer/pkg/material"
	"github.com/jmorales/go-diorama-raytracer/pkg/renderer"
)

// NewDioramaScene builds the daytime house diorama: a dirt platform, a
// small stone house with a wooden roof, a mirror-finish pond and a glass
// block. Missing texture assets degrade to black materials instead of
// failing scene construction.
func NewDioramaScene(assetsDir string, logger core.Logger) *Scene {
	stoneTexture := material.LoadTexture(filepath.Join(assetsDir, "stone_texture.png"), logger)
	woodTexture := material.LoadTexture(filepath.Join(assetsDir, "wood_texture.png"), logger)
	skyTexture := material.LoadTexture(filepath.Join(assetsDir, "sky.jpeg"), logger)

	stone := material.NewTexturedMaterial(0.2, [4]float64{0.8, 0.1, 0, 0}, 1.3, stoneTexture)
	wood := material.NewTexturedMaterial(0.1, [4]float64{0.9, 0.05, 0, 0}, 1.0, woodTexture)
	dirt := material.NewMaterial(core.NewColor(110, 80, 50), 0.1, [4]float64{0.9, 0.02, 0, 0}, 1.0)
	water := material.NewMaterial(core.NewColor(40, 80, 120), 60, [4]float64{0.2, 0.4, 0.5, 0}, 1.33)
	glass := material.NewMaterial(core.NewColor(220, 230, 240), 90, [4]float64{0.05, 0.3, 0.1, 0.7}, 1.5)

	objects := buildHouse(&stone, &wood, &dirt)

	// Pond next to the house, flush with the ground
	objects = append(objects, geometry.NewCube(
		core.NewVec3(-3, -0.1, 0), core.NewVec3(-1, 0, 2), &water))

	// Glass block on the platform corner
	objects = append(objects, geometry.NewCube(
		core.NewVec3(3, 0, -1), core.NewVec3(4, 1, 0), &glass))

	return &Scene{
		Camera:  NewDioramaCamera(),
		Objects: objects,
		Lights:  DayLights(),
		Skybox:  skyTexture,
	}
}

// NewNightScene builds the same diorama under a dim moon with an emissive
// lantern lighting the yard.
func NewNightScene(assetsDir string, logger core.Logger) *Scene {
	s := NewDioramaScene(assetsDir, logger)
	s.Lights = NightLights()

	lantern := material.NewMaterial(core.NewColor(255, 220, 150), 1, [4]float64{0.5, 0, 0, 0}, 1.0).
		WithEmission(core.NewColor(255, 200, 120), 2.5)
	s.Objects = append(s.Objects, geometry.NewCube(
		core.NewVec3(2.2, 0, 1.2), core.NewVec3(2.7, 0.5, 1.7), &lantern))

	return s
}

// NewDioramaCamera returns the initial viewpoint for the diorama scenes
func NewDioramaCamera() *renderer.Camera {
	return renderer.NewCamera(
		core.NewVec3(5, 5, 10),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
	)
}

// DayLights returns the single white sun light
func DayLights() []renderer.Light {
	return []renderer.Light{
		renderer.NewLight(core.NewVec3(-10, 10, 10), core.NewColor(255, 255, 255), 1.0),
	}
}

// NightLights returns a dim bluish moon light
func NightLights() []renderer.Light {
	return []renderer.Light{
		renderer.NewLight(core.NewVec3(10, 15, -5), core.NewColor(180, 200, 255), 0.25),
	}
}

// buildHouse lays out the hard-coded cube grid: a dirt platform, stone
// walls with a doorway, and wooden roof slabs. Materials are shared by
// pointer across every cube that uses them.
func buildHouse(stone, wood, dirt *material.Material) []geometry.Intersectable {
	var objects []geometry.Intersectable

	cube := func(min, max core.Vec3, mat *material.Material) {
		objects = append(objects, geometry.NewCube(min, max, mat))
	}

	// Dirt platform under everything
	for i := -3; i < 4; i++ {
		for j := -3; j < 4; j++ {
			cube(
				core.NewVec3(float64(i), -1, float64(j)),
				core.NewVec3(float64(i)+1, 0, float64(j)+1),
				dirt,
			)
		}
	}

	// Stone walls: a 2x2 footprint, two cubes tall, with a doorway gap on
	// the front face
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if i == 0 && j == 1 {
				continue // doorway
			}
			cube(
				core.NewVec3(float64(i), 0, float64(j)),
				core.NewVec3(float64(i)+1, 1, float64(j)+1),
				stone,
			)
		}
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			cube(
				core.NewVec3(float64(i), 1, float64(j)),
				core.NewVec3(float64(i)+1, 2, float64(j)+1),
				stone,
			)
		}
	}

	// Wooden roof slab overhanging the walls
	cube(core.NewVec3(-0.25, 2, -0.25), core.NewVec3(2.25, 2.4, 2.25), wood)

	return objects
}
