package planet

import (
	"math"

	"github.com/kvartborg/vector"
	"github.com/solarlune/orbital"
	"github.com/solarlune/orbital/orbit"
	"github.com/solarlune/orbital/tween"
)

// Surface is whatever the scene is drawn to; it's resized along with the viewport.
type Surface interface {
	SetSize(width, height int)
}

// Sizes is the size of the viewport, in pixels.
type Sizes struct {
	Width, Height int
}

// Chrome is the state of the UI drawn over the scene: the navigation bar and the title.
type Chrome struct {
	NavOffset    float32 // Vertical offset of the navigation bar, as a percentage of its own height (-100 hides it above the screen)
	TitleOpacity float32 // 0 to 1

	Title, Brand, Link string
}

// App holds all of the scene's runtime state. The host calls the handlers as input arrives and Tick once per frame,
// all from the same goroutine.
type App struct {
	Config   Config
	World    *World
	Controls *orbit.Controls
	Sizes    Sizes
	Chrome   Chrome
	Intro    *tween.Timeline

	// Rotation is whether the scene rolls each tick. It's off until the pointer is first released.
	Rotation bool
	// MouseDown is whether the pointer is pressed; pointer movement only recolors the sphere while it is.
	MouseDown bool
	// DragColor is the last color computed from the pointer position while dragging, as 0-255 sRGB channels.
	DragColor [3]uint8
	// Phase is the lead particle's angle along its path, in radians.
	Phase float64

	Ticks int

	surface Surface
	color   *tween.ColorAnimator
}

// NewApp creates an App for the World, sized to the Surface's initial size, and starts the intro animation.
func NewApp(cfg Config, world *World, surface Surface, width, height int) *App {

	app := &App{
		Config:  cfg,
		World:   world,
		surface: surface,
		Chrome: Chrome{
			Title: cfg.Title,
			Brand: cfg.Brand,
			Link:  cfg.Link,
		},
	}

	app.Controls = orbit.New(world.Camera)
	app.Controls.EnableDamping = cfg.OrbitDamping

	app.color = tween.NewColorAnimator(&world.Sphere.Material.Color)
	app.color.Duration = cfg.ColorDuration

	app.Resize(width, height)

	app.Intro = NewIntro(cfg, world.Sphere, &app.Chrome)

	return app

}

// Resize updates the viewport, the camera's aspect ratio, and the Surface's size. Non-positive sizes are ignored.
func (app *App) Resize(width, height int) {

	if width <= 0 || height <= 0 {
		return
	}

	app.Sizes = Sizes{Width: width, Height: height}
	app.World.Camera.SetAspect(float64(width) / float64(height))
	app.Controls.ViewportHeight = float64(height)

	if app.surface != nil {
		app.surface.SetSize(width, height)
	}

}

// Press handles the pointer being pressed at the given position: the scene stops rolling, and dragging begins.
func (app *App) Press(x, y float64) {
	app.Rotation = false
	app.MouseDown = true
	app.Controls.Begin(x, y)
}

// Release handles the pointer being released: the scene starts rolling, and dragging ends.
func (app *App) Release() {
	app.Rotation = true
	app.MouseDown = false
	app.Controls.End()
}

// Move handles the pointer moving to the given position. While the pointer is pressed, this orbits the camera and
// recolors the sphere according to where the pointer is in the viewport.
func (app *App) Move(x, y float64) {

	app.Controls.Drag(x, y)

	if !app.MouseDown {
		return
	}

	app.DragColor = DragColor(x, y, app.Sizes.Width, app.Sizes.Height, app.Config.DragBlue)
	app.color.To(orbital.NewColorFromRGB255(app.DragColor[0], app.DragColor[1], app.DragColor[2]))

}

// Wheel handles the mouse wheel, dollying the camera.
func (app *App) Wheel(dy float64) {
	app.Controls.Dolly(dy)
}

// KeyPress handles any key being pressed. Keys don't do anything to the scene; this applies an empty roll.
func (app *App) KeyPress() {
	app.World.Scene.RotateZ(0)
}

// Tick advances the scene by one frame: camera damping, the scene's roll, the lead particle, and any running animations.
func (app *App) Tick() {

	app.Controls.Update()

	if app.Rotation {
		app.World.Scene.RotateZ(app.Config.RollSpeed)
	} else {
		app.World.Scene.RotateZ(0)
	}

	app.Phase += app.Config.LeadStep
	app.World.Lead.Position = LeadPosition(app.Phase, app.Config.LeadRadius, app.Config.LeadHeight)

	dt := app.Config.tickDuration()

	if app.Intro != nil && app.Intro.Update(dt) {
		app.Intro = nil
	}

	app.color.Update(dt)

	app.Ticks++

}

// Recoloring returns if the sphere is in the middle of a color transition.
func (app *App) Recoloring() bool {
	return app.color.Active()
}

// DragColor returns the color for a pointer at (x, y) in a viewport of the given size: red follows the pointer across,
// green follows it down, and blue is fixed. Positions outside of the viewport are clamped to its edges.
func DragColor(x, y float64, width, height int, blue uint8) [3]uint8 {

	px, py := 0.0, 0.0

	if width > 0 {
		px = math.Max(0, math.Min(1, x/float64(width)))
	}

	if height > 0 {
		py = math.Max(0, math.Min(1, y/float64(height)))
	}

	return [3]uint8{
		uint8(math.Round(px * 255)),
		uint8(math.Round(py * 255)),
		blue,
	}

}

// LeadPosition returns the position of the lead particle at the given phase along its circular path.
func LeadPosition(phase, radius, height float64) vector.Vector {
	return vector.Vector{-radius * math.Cos(phase), height, -radius * math.Sin(phase)}
}
