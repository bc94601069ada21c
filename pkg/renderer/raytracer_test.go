package renderer

import (
	"math"
	"testing"

	"github.com/jmorales/go-diorama-raytracer/pkg/core"
	"github.com/jmorales/go-diorama-raytracer/pkg/geometry"
	"github.com/jmorales/go-diorama-raytracer/pkg/material"
)

// testScene implements the Scene interface for renderer tests
type testScene struct {
	objects []geometry.Intersectable
	lights  []Light
	skybox  *material.Texture
}

func (s *testScene) GetObjects() []geometry.Intersectable { return s.objects }
func (s *testScene) GetLights() []Light                   { return s.lights }
func (s *testScene) GetSkybox() *material.Texture         { return s.skybox }

func diffuseMaterial(diffuse core.Color) *material.Material {
	mat := material.NewMaterial(diffuse, 10, [4]float64{0.9, 0.1, 0, 0}, 1.0)
	return &mat
}

func TestReflect(t *testing.T) {
	const tolerance = 1e-9

	tests := []struct {
		name     string
		incident core.Vec3
		normal   core.Vec3
		expected core.Vec3
	}{
		{
			name:     "straight down bounces straight up",
			incident: core.NewVec3(0, -1, 0),
			normal:   core.NewVec3(0, 1, 0),
			expected: core.NewVec3(0, 1, 0),
		},
		{
			name:     "grazing direction with no normal component is unchanged",
			incident: core.NewVec3(1, 0, -1).Normalize(),
			normal:   core.NewVec3(0, 1, 0),
			expected: core.NewVec3(1, 0, -1).Normalize(),
		},
		{
			name:     "45 degree bounce",
			incident: core.NewVec3(1, -1, 0).Normalize(),
			normal:   core.NewVec3(0, 1, 0),
			expected: core.NewVec3(1, 1, 0).Normalize(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflect(tt.incident, tt.normal)
			if got.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestReflect_Involution(t *testing.T) {
	incidents := []core.Vec3{
		core.NewVec3(0.5, -0.7, 0.3).Normalize(),
		core.NewVec3(-0.2, -0.9, -0.4).Normalize(),
		core.NewVec3(1, -1, 1).Normalize(),
	}
	normal := core.NewVec3(0, 1, 0)

	for _, i := range incidents {
		twice := Reflect(Reflect(i, normal), normal)
		if twice.Subtract(i).Length() > 1e-9 {
			t.Errorf("reflect(reflect(i,n),n) != i for %v: got %v", i, twice)
		}
	}
}

func TestCastRay_MissReturnsSkyColor(t *testing.T) {
	rt := NewRaytracer(&testScene{})

	got := rt.CastRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 1, 0), 0)
	if got != core.NewColor(135, 206, 235) {
		t.Errorf("Expected flat sky color, got %v", got)
	}
}

func TestCastRay_DepthBudgetExhausted(t *testing.T) {
	cube := geometry.NewCube(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), diffuseMaterial(core.NewColor(255, 0, 0)))
	rt := NewRaytracer(&testScene{objects: []geometry.Intersectable{cube}})

	got := rt.CastRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 3)
	if got != core.NewColor(135, 206, 235) {
		t.Errorf("Exhausted depth must return the sky color, got %v", got)
	}
}

func TestCastRay_SkyboxEquirectangularMapping(t *testing.T) {
	// 3x3 skybox: green center pixel, red everywhere else. The +z axis maps
	// to u=0.5, v=0.5, which is the texture center.
	pixels := make([]core.Color, 9)
	for i := range pixels {
		pixels[i] = core.NewColor(255, 0, 0)
	}
	pixels[4] = core.NewColor(0, 255, 0)
	sky := material.NewTexture(3, 3, pixels)

	rt := NewRaytracer(&testScene{skybox: sky})

	got := rt.CastRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 0)
	if got != core.NewColor(0, 255, 0) {
		t.Errorf("+z ray must sample the texture center, got %v", got)
	}

	// Any other axis lands off-center
	if got := rt.CastRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0); got == core.NewColor(0, 255, 0) {
		t.Error("+y ray must not sample the texture center")
	}
}

func TestCastRay_DiffuseLitCubeBrighterThanAmbient(t *testing.T) {
	cube := geometry.NewCube(
		core.NewVec3(-0.5, -0.5, -0.5),
		core.NewVec3(0.5, 0.5, 0.5),
		diffuseMaterial(core.NewColor(200, 0, 0)),
	)
	s := &testScene{
		objects: []geometry.Intersectable{cube},
		lights:  []Light{NewLight(core.NewVec3(0, 5, 5), core.NewColor(255, 255, 255), 1.0)},
	}
	rt := NewRaytracer(s)

	camera := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	direction := camera.RayDirection(400, 300, 800, 600, math.Pi/3)

	lit := rt.CastRay(camera.Eye, direction, 0)
	ambientOnly := ambientColor.Scale(ambientIntensity)

	if lit.R <= ambientOnly.R {
		t.Errorf("Lit pixel %v must be strictly brighter than ambient %v", lit, ambientOnly)
	}
	if lit == core.NewColor(135, 206, 235) {
		t.Error("Center pixel must hit the cube, not the sky")
	}
}

func TestCastRay_OccluderCastsFullShadow(t *testing.T) {
	floorMat := diffuseMaterial(core.NewColor(180, 180, 180))
	floor := geometry.NewCube(core.NewVec3(-2, -1, -2), core.NewVec3(2, 0, 2), floorMat)
	light := NewLight(core.NewVec3(0, 5, 0), core.NewColor(255, 255, 255), 1.0)

	origin := core.NewVec3(0, 2, 0)
	direction := core.NewVec3(0, -1, 0)

	open := NewRaytracer(&testScene{
		objects: []geometry.Intersectable{floor},
		lights:  []Light{light},
	})
	unshadowed := open.CastRay(origin, direction, 0)

	occluder := geometry.NewCube(core.NewVec3(-0.25, 3, -0.25), core.NewVec3(0.25, 3.5, 0.25), floorMat)
	blocked := NewRaytracer(&testScene{
		objects: []geometry.Intersectable{floor, occluder},
		lights:  []Light{light},
	})
	shadowed := blocked.CastRay(origin, direction, 0)

	ambientOnly := ambientColor.Scale(ambientIntensity)
	if shadowed != ambientOnly {
		t.Errorf("Fully shadowed point must be ambient-only %v, got %v", ambientOnly, shadowed)
	}
	if unshadowed.R <= shadowed.R {
		t.Errorf("Unshadowed %v must be brighter than shadowed %v", unshadowed, shadowed)
	}
}

func TestCastRay_EmissiveObjectBrightensNearbyGeometry(t *testing.T) {
	floorMat := diffuseMaterial(core.NewColor(180, 180, 180))
	floor := geometry.NewCube(core.NewVec3(-2, -1, -2), core.NewVec3(2, 0, 2), floorMat)

	lanternMat := material.NewMaterial(core.NewColor(255, 220, 150), 1, [4]float64{0.5, 0, 0, 0}, 1.0).
		WithEmission(core.NewColor(255, 200, 120), 2.0)
	lantern := geometry.NewCube(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(1, 1, 1), &lanternMat)

	origin := core.NewVec3(-0.5, 2, -0.5)
	direction := core.NewVec3(0, -1, 0)

	dark := NewRaytracer(&testScene{objects: []geometry.Intersectable{floor}})
	withoutEmitter := dark.CastRay(origin, direction, 0)

	glowing := NewRaytracer(&testScene{objects: []geometry.Intersectable{floor, lantern}})
	withEmitter := glowing.CastRay(origin, direction, 0)

	if withEmitter.R <= withoutEmitter.R {
		t.Errorf("Emissive neighbor must brighten the floor: without=%v with=%v", withoutEmitter, withEmitter)
	}
}

func TestCastRay_ReflectiveMaterialRecurses(t *testing.T) {
	// A mirror floor under an unlit sky: the reflected sky contribution must
	// show up in the floor's color
	mirrorMat := material.NewMaterial(core.NewColor(20, 20, 20), 50, [4]float64{0.1, 0.1, 0.8, 0}, 1.0)
	mirror := geometry.NewCube(core.NewVec3(-2, -1, -2), core.NewVec3(2, 0, 2), &mirrorMat)

	rt := NewRaytracer(&testScene{objects: []geometry.Intersectable{mirror}})

	got := rt.CastRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0), 0)

	// Reflected sky (135,206,235) scaled by 0.8 dominates ambient
	if got.B <= ambientColor.Scale(ambientIntensity).B {
		t.Errorf("Mirror must pick up the reflected sky, got %v", got)
	}
}

func TestRefract(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)

	t.Run("straight through at normal incidence", func(t *testing.T) {
		refracted, ok := refract(core.NewVec3(0, -1, 0), normal, 1.5)
		if !ok {
			t.Fatal("Normal incidence must refract")
		}
		if refracted.Subtract(core.NewVec3(0, -1, 0)).Length() > 1e-9 {
			t.Errorf("Normal incidence must pass straight through, got %v", refracted)
		}
	})

	t.Run("bends toward the normal entering dense medium", func(t *testing.T) {
		incident := core.NewVec3(1, -1, 0).Normalize()
		refracted, ok := refract(incident, normal, 1.5)
		if !ok {
			t.Fatal("Expected refraction")
		}
		// sin(theta_t) = sin(45°)/1.5
		expectedSin := math.Sin(math.Pi/4) / 1.5
		if math.Abs(refracted.X-expectedSin) > 1e-9 {
			t.Errorf("Expected sin component %f, got %f", expectedSin, refracted.X)
		}
	})

	t.Run("total internal reflection", func(t *testing.T) {
		// Leaving a dense medium at a grazing angle
		incident := core.NewVec3(1, 0.1, 0).Normalize()
		if _, ok := refract(incident, normal, 1.5); ok {
			t.Error("Expected total internal reflection")
		}
	})
}
