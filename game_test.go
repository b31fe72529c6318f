package tilespin

import (
	"image"
	"testing"
)

func testApp(hud bool) *App {
	layer := TileLayer{{0, 1}, {2, 0}}
	sheet := testSheet(32, 16, 16)
	cfg := DefaultConfig()
	cfg.HUD = hud
	return &App{
		Config: cfg,
		Sheet:  sheet,
		Layer:  layer,
		Frame:  NewFrame(layer, sheet, cfg.FrameProps()),
		Grid:   NewTileGrid(layer, 16, 16),
	}
}

func TestGameHoverEvents(t *testing.T) {
	g := NewGame(testApp(false))

	var got []EventTileHoverData
	g.On(EventTileHover, func(data interface{}) {
		got = append(got, data.(EventTileHoverData))
	})

	g.updateHover(20, 4)  // enters (1,0)
	g.updateHover(25, 10) // same cell, no event
	g.updateHover(4, 4)   // empty cell
	g.updateHover(4, 20)  // enters (0,1)

	want := []EventTileHoverData{
		{Cell: image.Pt(1, 0), Tile: 1, Ok: true},
		{},
		{Cell: image.Pt(0, 1), Tile: 2, Ok: true},
	}
	if len(got) != len(want) {
		t.Fatalf("events = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestGameLayoutFollowsWindow(t *testing.T) {
	g := NewGame(testApp(false))

	var sizes []image.Point
	g.On(EventViewportResize, func(data interface{}) {
		sizes = append(sizes, data.(EventViewportResizeData).Size)
	})

	for _, s := range []image.Point{{800, 600}, {800, 600}, {1024, 768}} {
		w, h := g.Layout(s.X, s.Y)
		if w != s.X || h != s.Y {
			t.Errorf("Layout(%v) = %dx%d", s, w, h)
		}
	}
	if len(sizes) != 2 || sizes[0] != image.Pt(800, 600) || sizes[1] != image.Pt(1024, 768) {
		t.Errorf("resize events = %v", sizes)
	}
}

func TestGameStepAdvancesRotation(t *testing.T) {
	g := NewGame(testApp(false))
	g.step(LoopData{Delta: 0.5})
	g.step(LoopData{Delta: 0.25})
	if r := g.app.Frame.Rotation(); r != 1.5 {
		t.Errorf("rotation = %v, want 1.5", r)
	}
}

func TestHUDTracksHover(t *testing.T) {
	g := NewGame(testApp(true))
	if g.hud == nil {
		t.Fatal("HUD not created")
	}

	lines := g.hud.Lines(0, 60, 59.5)
	if lines[0] != "rotation 0.00 rad (0 deg)" || lines[1] != "tps 60.0 fps 59.5" || lines[2] != "tile -" {
		t.Errorf("lines = %q", lines)
	}

	g.updateHover(3, 30)
	if got := g.hud.Lines(0, 60, 60)[2]; got != "tile (0,1) #2" {
		t.Errorf("hover line = %q", got)
	}
}
