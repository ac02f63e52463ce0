//go:build ebiten

package app

import (
	"time"

	"seedgen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	world   *ebiten.Image
	drawn   int
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	hudWidth int
}

// New constructs a Game showing the session's world.
func New(s *Session, scale, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := s.Size()
	return &Game{
		session:  s,
		world:    ebiten.NewImage(size.W, size.H),
		drawn:    -1,
		hud:      ui.NewHUD(s, hudWidth),
		overlay:  ui.NewOverlay(s, scale),
		scale:    scale,
		hudWidth: hudWidth,
	}
}

// Update handles key bindings and HUD input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Reseed(uint64(time.Now().UnixNano()) & 0xFFFFFFFF)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.session.CycleView()
	}
	g.overlay.Update()
	g.hud.Update(g.session.Size().W * g.scale)
	return nil
}

// Draw renders the active view, overlays, and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if v := g.session.Version(); v != g.drawn {
		g.world.WritePixels(g.session.Pixels())
		g.drawn = v
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.world, op)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.session.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
