package planet

import (
	"fmt"
	"strconv"

	"github.com/solarlune/orbital"
	"github.com/solarlune/orbital/colors"
)

// World is everything BuildScene creates: the Scene, with handles to the nodes the app animates.
type World struct {
	Scene  *orbital.Scene
	Camera *orbital.Camera
	Light  *orbital.PointLight

	Sphere    *orbital.Model
	Rings     []*orbital.Model // The tilted copies first, then the untilted template
	Particles []*orbital.Model // The static copies first, then the lead
	Lead      *orbital.Model
}

// BuildScene creates the sphere, rings, particles, light, and camera described by the Config, for a viewport of the given size.
func BuildScene(cfg Config, width, height int) (*World, error) {

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("build scene: invalid viewport %dx%d", width, height)
	}

	world := &World{
		Scene: orbital.NewScene("Planet"),
	}

	// Light

	white := colors.White()
	world.Light = orbital.NewPointLight("Light", white.R, white.G, white.B, cfg.LightEnergy)
	world.Light.Distance = cfg.LightDistance
	world.Light.SetPosition(cfg.LightX, cfg.LightY, cfg.LightZ)
	world.Scene.AddLights(world.Light)

	// Sphere

	sphereColor, err := orbital.NewColorFromHex(cfg.SphereColor)
	if err != nil {
		return nil, fmt.Errorf("build scene: sphere: %w", err)
	}

	sphereMesh, err := orbital.NewSphere(cfg.SphereRadius, cfg.SphereSegments, cfg.SphereRings)
	if err != nil {
		return nil, fmt.Errorf("build scene: sphere: %w", err)
	}

	sphereMat := orbital.NewMaterial("Sphere", sphereColor)
	sphereMat.Roughness = cfg.SphereRoughness

	world.Sphere = orbital.NewModel("Sphere", sphereMesh, sphereMat)
	world.Scene.Add(world.Sphere)

	// Rings

	orbitColor, err := orbital.NewColorFromHex(cfg.OrbitColor)
	if err != nil {
		return nil, fmt.Errorf("build scene: orbit: %w", err)
	}

	orbitMesh, err := orbital.NewTorus(cfg.OrbitRadius, cfg.OrbitTube, cfg.OrbitRadialSegments, cfg.OrbitTubularSegments, cfg.OrbitArc)
	if err != nil {
		return nil, fmt.Errorf("build scene: orbit: %w", err)
	}
	orbitMesh.BackfaceCulling = false

	orbitMat := orbital.NewMaterial("Orbit", orbitColor)
	orbitMat.Roughness = cfg.OrbitRoughness
	orbitMat.DoubleSided = true

	orbitTemplate := orbital.NewModel("Orbit", orbitMesh, orbitMat)

	// Particle template; its copies are taken before it starts moving, so they stay at the origin.

	particleColor, err := orbital.NewColorFromHex(cfg.ParticleColor)
	if err != nil {
		return nil, fmt.Errorf("build scene: particle: %w", err)
	}

	particleMesh, err := orbital.NewSphere(cfg.ParticleRadius, cfg.ParticleSegments, cfg.ParticleRings)
	if err != nil {
		return nil, fmt.Errorf("build scene: particle: %w", err)
	}

	particle := orbital.NewModel("Particle", particleMesh, orbital.NewBasicMaterial("Particle", particleColor))

	for i := 0; i < cfg.ParticleCopies; i++ {
		clone := particle.Clone()
		clone.Name = copyName(particle.Name, i+1)
		world.Particles = append(world.Particles, clone)
		world.Scene.Add(clone)
	}

	for i, tilt := range cfg.OrbitTilts {
		ring := orbitTemplate.Clone()
		ring.Name = copyName(orbitTemplate.Name, i+1)
		ring.RotateX(tilt)
		world.Rings = append(world.Rings, ring)
		world.Scene.Add(ring)
	}

	world.Rings = append(world.Rings, orbitTemplate)
	world.Scene.Add(orbitTemplate)

	world.Lead = particle
	world.Particles = append(world.Particles, particle)
	world.Scene.Add(particle)

	// Camera

	world.Camera = orbital.NewCamera(cfg.CameraFOV, float64(width)/float64(height), cfg.CameraNear, cfg.CameraFar)
	world.Camera.SetPosition(0, 0, cfg.CameraZ)
	world.Camera.LookAt(orbital.UnitVector(0))

	return world, nil

}

func copyName(name string, index int) string {
	s := strconv.Itoa(index)
	for len(s) < 3 {
		s = "0" + s
	}
	return name + "." + s
}
