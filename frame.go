package tilespin

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// TileLayer holds one-based sheet indices row by row. Zero is an empty cell.
type TileLayer [][]uint32

type DrawKind int

const (
	DrawClear DrawKind = iota
	DrawTile
	DrawSquare
)

// DrawOp is one step of a frame. Tile ops place Src from the sheet at Dst.
// The square op maps the square's own space, (0,0)-(Size,Size), to the
// screen through GeoM.
type DrawOp struct {
	Kind  DrawKind
	Color color.RGBA

	Cell  image.Point
	Index uint32
	Src   image.Rectangle
	Dst   Vector2

	Size float64
	GeoM ebiten.GeoM
}

type FrameProps struct {
	Background    RGBA
	SquareColor   RGBA
	SquareSize    float64
	RotationSpeed float64
}

// Frame renders a tile layer under a square spinning about the middle of
// the viewport.
type Frame struct {
	rotation float64

	layer TileLayer
	sheet *TileSheet
	tiles []DrawOp

	background  color.RGBA
	squareColor color.RGBA
	squareSize  float64
	speed       float64

	ops   []DrawOp
	pixel *ebiten.Image
}

// DefaultFrameProps is a green background under a red 50px square turning
// at 2 rad/s.
func DefaultFrameProps() FrameProps {
	return FrameProps{
		Background:    Green,
		SquareColor:   Red,
		SquareSize:    DefaultSquareSize,
		RotationSpeed: DefaultRotationSpeed,
	}
}

// NewFrame uses DefaultFrameProps when props is nil. Otherwise every field
// of props is taken as given, zero speed included.
func NewFrame(layer TileLayer, sheet *TileSheet, props *FrameProps) *Frame {
	p := DefaultFrameProps()
	if props != nil {
		p = *props
	}

	f := &Frame{
		layer:       layer,
		sheet:       sheet,
		background:  p.Background.Color(),
		squareColor: p.SquareColor.Color(),
		squareSize:  p.SquareSize,
		speed:       p.RotationSpeed,
	}
	f.tiles = f.layoutTiles()
	return f
}

// layoutTiles computes the tile ops once. The grid is never transformed, so
// they are the same every frame.
func (f *Frame) layoutTiles() []DrawOp {
	var ops []DrawOp
	tw := float64(f.sheet.TileWidth)
	th := float64(f.sheet.TileHeight)
	for yy, row := range f.layer {
		for xx, tile := range row {
			if tile == 0 {
				continue
			}
			index := tile - 1
			ops = append(ops, DrawOp{
				Kind:  DrawTile,
				Cell:  image.Pt(xx, yy),
				Index: index,
				Src:   f.sheet.SourceRect(index),
				Dst:   NewVector2(float64(xx)*tw, float64(yy)*th),
			})
		}
	}
	return ops
}

func (f *Frame) Rotation() float64 {
	return f.rotation
}

func (f *Frame) Layer() TileLayer {
	return f.layer
}

func (f *Frame) Sheet() *TileSheet {
	return f.sheet
}

// Update advances the rotation by dt seconds. It never wraps.
func (f *Frame) Update(dt float64) {
	f.rotation += f.speed * dt
}

// Plan returns the draw ops for a viewport of the given size: clear, the
// tiles in row-major order, then the square. The slice is reused by the
// next call.
func (f *Frame) Plan(viewport image.Point) []DrawOp {
	f.ops = append(f.ops[:0], DrawOp{Kind: DrawClear, Color: f.background})
	f.ops = append(f.ops, f.tiles...)

	var g ebiten.GeoM
	half := f.squareSize / 2
	g.Translate(-half, -half)
	g.Rotate(f.rotation)
	g.Translate(float64(viewport.X)/2, float64(viewport.Y)/2)

	f.ops = append(f.ops, DrawOp{
		Kind:  DrawSquare,
		Color: f.squareColor,
		Size:  f.squareSize,
		GeoM:  g,
	})
	return f.ops
}

// Render draws the current plan onto screen.
func (f *Frame) Render(screen *ebiten.Image) {
	for _, op := range f.Plan(screen.Bounds().Size()) {
		switch op.Kind {
		case DrawClear:
			screen.Fill(op.Color)

		case DrawTile:
			opts := &ebiten.DrawImageOptions{}
			opts.GeoM.Translate(op.Dst.X, op.Dst.Y)
			screen.DrawImage(f.sheet.SubImage(op.Src), opts)

		case DrawSquare:
			opts := &ebiten.DrawImageOptions{}
			opts.GeoM.Scale(op.Size, op.Size)
			opts.GeoM.Concat(op.GeoM)
			opts.ColorScale.ScaleWithColor(op.Color)
			screen.DrawImage(f.whitePixel(), opts)
		}
	}
}

func (f *Frame) whitePixel() *ebiten.Image {
	if f.pixel == nil {
		f.pixel = ebiten.NewImage(1, 1)
		f.pixel.Fill(color.White)
	}
	return f.pixel
}
