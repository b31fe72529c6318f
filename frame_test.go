package tilespin

import (
	"image"
	"math"
	"testing"
)

func testSheet(width, tileWidth, tileHeight int) *TileSheet {
	return NewTileSheet(image.NewRGBA(image.Rect(0, 0, width, width)), tileWidth, tileHeight)
}

func tileOps(ops []DrawOp) []DrawOp {
	var tiles []DrawOp
	for _, op := range ops {
		if op.Kind == DrawTile {
			tiles = append(tiles, op)
		}
	}
	return tiles
}

func TestFrameUpdateAccumulates(t *testing.T) {
	f := NewFrame(nil, testSheet(32, 16, 16), nil)

	want := 0.0
	for _, dt := range []float64{0.1, 0.2, 0.05} {
		before := f.Rotation()
		f.Update(dt)
		if got := f.Rotation(); got != before+2*dt {
			t.Errorf("Update(%v): rotation %v, want %v", dt, got, before+2*dt)
		}
		want += 2 * dt
	}

	if f.Rotation() != want {
		t.Errorf("rotation = %v, want %v", f.Rotation(), want)
	}
	if math.Abs(f.Rotation()-0.7) > 1e-12 {
		t.Errorf("rotation = %v, want 0.7", f.Rotation())
	}
}

func TestFrameUpdateDoesNotWrap(t *testing.T) {
	f := NewFrame(nil, testSheet(32, 16, 16), nil)
	f.Update(10)
	if f.Rotation() != 20 {
		t.Errorf("rotation = %v, want 20", f.Rotation())
	}
	f.Update(0)
	if f.Rotation() != 20 {
		t.Errorf("rotation after dt=0 = %v, want 20", f.Rotation())
	}
}

func TestFramePlanTwoByTwo(t *testing.T) {
	layer := TileLayer{{0, 1}, {2, 0}}
	f := NewFrame(layer, testSheet(32, 16, 16), nil)

	ops := f.Plan(image.Pt(800, 600))
	if len(ops) != 4 {
		t.Fatalf("ops = %d, want clear + 2 tiles + square", len(ops))
	}
	if ops[0].Kind != DrawClear || ops[0].Color != Green.Color() {
		t.Errorf("first op = %+v, want green clear", ops[0])
	}
	if ops[3].Kind != DrawSquare || ops[3].Color != Red.Color() {
		t.Errorf("last op = %+v, want red square", ops[3])
	}

	tests := []struct {
		cell  image.Point
		index uint32
		src   image.Rectangle
		dst   Vector2
	}{
		{image.Pt(1, 0), 0, image.Rect(0, 0, 16, 16), NewVector2(16, 0)},
		{image.Pt(0, 1), 1, image.Rect(16, 0, 32, 16), NewVector2(0, 16)},
	}
	tiles := tileOps(ops)
	for i, tt := range tests {
		got := tiles[i]
		if got.Cell != tt.cell || got.Index != tt.index || got.Src != tt.src || got.Dst != tt.dst {
			t.Errorf("tile %d = cell %v index %d src %v dst %v, want cell %v index %d src %v dst %v",
				i, got.Cell, got.Index, got.Src, got.Dst, tt.cell, tt.index, tt.src, tt.dst)
		}
	}
}

func TestFramePlanSkipsEmptyCells(t *testing.T) {
	layer := TileLayer{{0, 0, 0}, {0, 3, 0}}
	f := NewFrame(layer, testSheet(32, 16, 16), nil)

	tiles := tileOps(f.Plan(image.Pt(100, 100)))
	if len(tiles) != 1 {
		t.Fatalf("tiles = %d, want 1", len(tiles))
	}
	if tiles[0].Cell != image.Pt(1, 1) {
		t.Errorf("cell = %v, want (1,1)", tiles[0].Cell)
	}
	// index 2 on a two column sheet is the first tile of the second row.
	if want := image.Rect(0, 16, 16, 32); tiles[0].Src != want {
		t.Errorf("src = %v, want %v", tiles[0].Src, want)
	}
}

func TestFrameSourceRectMatchesFormula(t *testing.T) {
	sheet := testSheet(64, 16, 8)
	cols := uint32(64 / 16)
	var row []uint32
	for v := uint32(1); v <= 20; v++ {
		row = append(row, v)
	}
	f := NewFrame(TileLayer{row}, sheet, nil)

	for _, op := range tileOps(f.Plan(image.Pt(10, 10))) {
		i := op.Index
		want := image.Pt(int(i%cols)*16, int(i/cols)*8)
		if op.Src.Min != want || op.Src.Dx() != 16 || op.Src.Dy() != 8 {
			t.Errorf("index %d: src %v, want origin %v size 16x8", i, op.Src, want)
		}
	}
}

func TestFrameTilesIgnoreRotation(t *testing.T) {
	layer := TileLayer{{1, 2}, {3, 4}}
	f := NewFrame(layer, testSheet(32, 16, 16), nil)

	before := append([]DrawOp(nil), tileOps(f.Plan(image.Pt(640, 480)))...)
	f.Update(1.234)
	after := tileOps(f.Plan(image.Pt(1024, 768)))

	for i := range before {
		if before[i].Dst != after[i].Dst || before[i].Src != after[i].Src {
			t.Errorf("tile %d moved: %+v -> %+v", i, before[i], after[i])
		}
		want := NewVector2(float64(before[i].Cell.X*16), float64(before[i].Cell.Y*16))
		if before[i].Dst != want {
			t.Errorf("tile %d dst = %v, want %v", i, before[i].Dst, want)
		}
	}
}

func TestFrameSquareSpinsAboutViewportCenter(t *testing.T) {
	f := NewFrame(nil, testSheet(32, 16, 16), nil)
	viewport := image.Pt(800, 600)

	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

	for _, dt := range []float64{0, 0.25, 1.5} {
		f.Update(dt)
		ops := f.Plan(viewport)
		sq := ops[len(ops)-1]
		if sq.Size != DefaultSquareSize {
			t.Fatalf("square size = %v", sq.Size)
		}

		cx, cy := sq.GeoM.Apply(25, 25)
		if !near(cx, 400) || !near(cy, 300) {
			t.Errorf("rotation %v: square center at (%v,%v), want (400,300)", f.Rotation(), cx, cy)
		}

		x, y := sq.GeoM.Apply(0, 0)
		r := f.Rotation()
		wantX := 400 + (-25*math.Cos(r) + 25*math.Sin(r))
		wantY := 300 + (-25*math.Sin(r) - 25*math.Cos(r))
		if !near(x, wantX) || !near(y, wantY) {
			t.Errorf("rotation %v: corner at (%v,%v), want (%v,%v)", r, x, y, wantX, wantY)
		}
	}
}

func TestFramePropsOverrideDefaults(t *testing.T) {
	f := NewFrame(nil, testSheet(32, 16, 16), &FrameProps{
		Background:    White,
		SquareColor:   Green,
		SquareSize:    10,
		RotationSpeed: 0.5,
	})
	f.Update(2)
	if f.Rotation() != 1 {
		t.Errorf("rotation = %v, want 1", f.Rotation())
	}
	ops := f.Plan(image.Pt(20, 20))
	if ops[0].Color != White.Color() || ops[1].Color != Green.Color() || ops[1].Size != 10 {
		t.Errorf("ops = %+v", ops)
	}
}

func TestFrameKeepsExplicitZeroProps(t *testing.T) {
	props := &FrameProps{SquareColor: Red, SquareSize: DefaultSquareSize}
	f := NewFrame(nil, testSheet(32, 16, 16), props)

	f.Update(1)
	if f.Rotation() != 0 {
		t.Errorf("rotation = %v, want 0 for a zero speed", f.Rotation())
	}
	if ops := f.Plan(image.Pt(20, 20)); ops[0].Color != (RGBA{}).Color() {
		t.Errorf("background = %v, want transparent black", ops[0].Color)
	}
	if *props != (FrameProps{SquareColor: Red, SquareSize: DefaultSquareSize}) {
		t.Errorf("NewFrame changed the caller's props: %+v", *props)
	}
}
