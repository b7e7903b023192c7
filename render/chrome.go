package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	evector "github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/orbital/planet"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// NavHeight is the height of the navigation bar, in pixels.
const NavHeight = 40

const navPadding = 24

// DrawChrome draws the navigation bar and the title over the screen.
func DrawChrome(screen *ebiten.Image, chrome planet.Chrome) {

	face := basicfont.Face7x13
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()

	navY := float32(NavHeight) * chrome.NavOffset / 100

	if navY > -NavHeight {

		evector.DrawFilledRect(screen, 0, navY, float32(w), NavHeight, color.NRGBA{0, 0, 0, 160}, false)

		baseline := int(navY) + (NavHeight+face.Metrics().Ascent.Ceil())/2

		text.Draw(screen, chrome.Brand, face, navPadding, baseline, color.White)

		if chrome.Link != "" {
			linkWidth := font.MeasureString(face, chrome.Link).Ceil()
			text.Draw(screen, chrome.Link, face, w-navPadding-linkWidth, baseline, color.White)
		}

	}

	if chrome.TitleOpacity > 0 && chrome.Title != "" {

		titleWidth := font.MeasureString(face, chrome.Title).Ceil()

		// Drawn at 2x, so the width is doubled for centering.
		opt := &ebiten.DrawImageOptions{}
		opt.GeoM.Scale(2, 2)
		opt.GeoM.Translate(float64(w-titleWidth*2)/2, float64(h)*0.15)
		opt.ColorScale.ScaleAlpha(clamp01(chrome.TitleOpacity))
		text.DrawWithOptions(screen, chrome.Title, face, opt)

	}

}

// DrawDebug draws the Renderer's debug info, plus any extra lines, in the top-left corner of the screen.
func DrawDebug(screen *ebiten.Image, info DebugInfo, extra ...string) {

	lines := []string{
		fmt.Sprintf("FPS: %.2f  TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("Frame time: %.2fms", float64(info.FrameTime.Microseconds())/1000),
		fmt.Sprintf("Rendered models: %d/%d", info.DrawnParts, info.TotalParts),
		fmt.Sprintf("Rendered triangles: %d/%d", info.DrawnTris, info.TotalTris),
		fmt.Sprintf("Draw calls: %d", info.DrawCalls),
	}

	lines = append(lines, extra...)

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()
	y := NavHeight + lineHeight + 8

	for _, line := range strings.Split(strings.Join(lines, "\n"), "\n") {
		text.Draw(screen, line, face, 9, y+1, color.Black)
		text.Draw(screen, line, face, 8, y, color.White)
		y += lineHeight
	}

}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
