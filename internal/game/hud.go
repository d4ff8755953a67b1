package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"raycaster/internal/palette"
	"raycaster/internal/raycast"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	hudColor    = color.RGBA{255, 255, 255, 255}
	hudBackdrop = color.RGBA{0, 0, 0, 160}
)

const hudLeading = 14

// hudLines formats the performance and pose readout.
func (g *Game) hudLines() []string {
	m := g.perf.GetCurrentMetrics()
	return []string{
		fmt.Sprintf("FPS %.0f  render %.2fms", m.FramesPerSec, float64(m.AvgRenderTime.Microseconds())/1000),
		fmt.Sprintf("X %.0f Y %.0f  %.0f deg", g.camera.Pos.X, g.camera.Pos.Y, g.camera.Angle*180/math.Pi),
		g.facingLine(),
	}
}

// facingLine describes the wall straight ahead.
func (g *Game) facingLine() string {
	hit := raycast.Cast(g.camera.Pos, g.camera.Angle, g.grid, g.config.GetViewDistance())
	if !hit.Ok() {
		return "facing: nothing in range"
	}
	return fmt.Sprintf("facing %s at %.0f (%d,%d)", palette.Hex(hit.Wall.Color), hit.Distance, hit.TileX, hit.TileY)
}

// drawHUD draws the readout in the top-left corner over a dark backdrop.
func (g *Game) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	lines := g.hudLines()

	box := image.Rect(0, 0, hudWidth(lines)+4, len(lines)*hudLeading+4)
	screen.SubImage(box).(*ebiten.Image).Fill(hudBackdrop)

	baseline := face.Metrics().Ascent.Ceil() + 2
	for _, line := range lines {
		ebitext.Draw(screen, line, face, 2, baseline, hudColor)
		baseline += hudLeading
	}
}

// hudWidth is the pixel width of the widest readout line.
func hudWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		if lw := font.MeasureString(basicfont.Face7x13, line).Round(); lw > w {
			w = lw
		}
	}
	return w
}
