// Package planet assembles the scene (a sphere with orbiting rings and particles) and runs it: the per-frame tick, the
// pointer and window handlers, and the intro animation. It doesn't draw anything itself; a host (see examples/planet)
// feeds it input and draws the World it builds.
package planet

import (
	"math"

	"github.com/solarlune/orbital/colors"
)

// Config holds every tunable value of the scene. DefaultConfig returns the values the scene is designed around.
type Config struct {
	SphereRadius    float64
	SphereSegments  int // Segments around the sphere's equator
	SphereRings     int // Segments from pole to pole
	SphereColor     string
	SphereRoughness float64

	OrbitRadius          float64
	OrbitTube            float64
	OrbitRadialSegments  int
	OrbitTubularSegments int
	OrbitArc             float64
	OrbitColor           string
	OrbitRoughness       float64
	OrbitTilts           []float64 // Rotations around X, in radians, of each copy of the ring

	ParticleRadius   float64
	ParticleSegments int
	ParticleRings    int
	ParticleColor    string
	ParticleCopies   int

	LeadRadius float64 // Radius of the lead particle's circular path
	LeadHeight float64 // Fixed Y of the lead particle
	LeadStep   float64 // Phase advanced per tick, in radians

	LightX, LightY, LightZ float64
	LightEnergy            float32
	LightDistance          float64

	CameraFOV  float64
	CameraNear float64
	CameraFar  float64
	CameraZ    float64

	OrbitDamping bool

	// RollSpeed is the roll applied to the scene each tick while rotation is on, in radians.
	RollSpeed float64

	// TickRate is the number of ticks per second; tweens advance by 1/TickRate each tick.
	TickRate int

	ColorDuration float32 // Length of the drag recolor transition, in seconds
	DragBlue      uint8   // Blue channel of every drag color

	IntroStepDuration float32 // Length of each intro step, in seconds

	Title string
	Brand string
	Link  string
}

// DefaultConfig returns the default scene configuration.
func DefaultConfig() Config {
	return Config{
		SphereRadius:    3,
		SphereSegments:  64,
		SphereRings:     64,
		SphereColor:     colors.Planet().Hex(),
		SphereRoughness: 0.5,

		OrbitRadius:          9.9,
		OrbitTube:            0.01,
		OrbitRadialSegments:  16,
		OrbitTubularSegments: 100,
		OrbitArc:             math.Pi * 2,
		OrbitColor:           colors.White().Hex(),
		OrbitRoughness:       0.5,
		OrbitTilts:           []float64{40, -40, 8},

		ParticleRadius:   0.3,
		ParticleSegments: 32,
		ParticleRings:    16,
		ParticleColor:    colors.White().Hex(),
		ParticleCopies:   3,

		LeadRadius: 10,
		LeadHeight: -1,
		LeadStep:   0.01,

		LightX:        0,
		LightY:        10,
		LightZ:        10,
		LightEnergy:   1.25,
		LightDistance: 100,

		CameraFOV:  45,
		CameraNear: 0.1,
		CameraFar:  100,
		CameraZ:    30,

		OrbitDamping: true,

		RollSpeed: 1,

		TickRate: 60,

		ColorDuration: 0.5,
		DragBlue:      150,

		IntroStepDuration: 1,

		Title: "Give it a spin",
		Brand: "Sphere",
		Link:  "Explore",
	}
}

// tickDuration returns the length of a tick in seconds.
func (cfg Config) tickDuration() float32 {
	if cfg.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float32(cfg.TickRate)
}
