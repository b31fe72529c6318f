package tilespin

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Game struct {
	*EventEmitter

	app   *App
	clock *Clock
	hud   *HUD

	viewport image.Point
	hover    EventTileHoverData
}

func NewGame(app *App) *Game {
	g := &Game{
		EventEmitter: NewEventEmitter(),
		app:          app,
		clock:        NewClock(app.Config.TPS),
	}
	if app.Config.HUD {
		g.hud = NewHUD(g.EventEmitter)
	}
	return g
}

func (g *Game) Update() error {
	if g.app.Config.ExitOnEsc && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.step(g.clock.Tick())

	x, y := ebiten.CursorPosition()
	g.updateHover(float64(x), float64(y))
	return nil
}

func (g *Game) step(ld LoopData) {
	g.app.Frame.Update(ld.Delta)
}

// updateHover emits EventTileHover when the cursor enters another cell or
// leaves the drawn tiles.
func (g *Game) updateHover(x, y float64) {
	cell, ok := g.app.Grid.TileAt(x, y)
	next := EventTileHoverData{Ok: ok}
	if ok {
		next.Cell = cell.Pos
		next.Tile = cell.Tile
	}
	if next == g.hover {
		return
	}
	g.hover = next
	g.Emit(EventTileHover, next)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.app.Frame.Render(screen)
	if g.hud != nil {
		g.hud.Draw(screen, g.app.Frame.Rotation())
	}
}

// Layout keeps the screen the size of the window, so the viewport is the
// window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	size := image.Pt(outsideWidth, outsideHeight)
	if size != g.viewport {
		g.viewport = size
		g.Emit(EventViewportResize, EventViewportResizeData{Size: size})
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Run() error {
	cfg := g.app.Config
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(cfg.TPS)

	return ebiten.RunGame(g)
}
