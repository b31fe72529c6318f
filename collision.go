package tilespin

import (
	"image"

	"github.com/ByteArena/box2d"
)

// Cell is a drawn tile of the layer: its grid position and one-based index.
type Cell struct {
	Pos  image.Point
	Tile uint32
}

// TileGrid answers which drawn tile lies under a screen point. Every
// non-empty cell is a static box in a gravity-free physics world.
type TileGrid struct {
	world  *box2d.B2World
	bodies int
}

func NewTileGrid(layer TileLayer, tileWidth, tileHeight int) *TileGrid {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, 0))
	g := &TileGrid{world: &world}

	tw := float64(tileWidth)
	th := float64(tileHeight)
	for yy, row := range layer {
		for xx, tile := range row {
			if tile == 0 {
				continue
			}

			bodyDef := box2d.MakeB2BodyDef()
			bodyDef.Type = box2d.B2BodyType.B2_staticBody
			bodyDef.Position.Set(
				PixelsToMeters(float64(xx)*tw+tw/2),
				PixelsToMeters(float64(yy)*th+th/2),
			)
			body := g.world.CreateBody(&bodyDef)
			body.SetUserData(Cell{Pos: image.Pt(xx, yy), Tile: tile})

			boxShape := box2d.MakeB2PolygonShape()
			boxShape.SetAsBox(PixelsToMeters(tw/2), PixelsToMeters(th/2))
			body.CreateFixture(&boxShape, 0)
			g.bodies++
		}
	}
	return g
}

// Len is the number of drawn tiles in the grid.
func (g *TileGrid) Len() int {
	return g.bodies
}

// TileAt returns the drawn tile under the screen point (x, y). A point on a
// shared edge belongs to the lower or right cell.
func (g *TileGrid) TileAt(x, y float64) (Cell, bool) {
	p := box2d.MakeB2Vec2(PixelsToMeters(x), PixelsToMeters(y))

	aabb := box2d.MakeB2AABB()
	aabb.LowerBound = p
	aabb.UpperBound = p

	var best Cell
	found := false
	g.world.QueryAABB(func(fixture *box2d.B2Fixture) bool {
		if !fixture.TestPoint(p) {
			return true
		}
		cell, ok := fixture.GetBody().GetUserData().(Cell)
		if !ok {
			return true
		}
		if !found || cell.Pos.Y > best.Pos.Y || (cell.Pos.Y == best.Pos.Y && cell.Pos.X > best.Pos.X) {
			best = cell
			found = true
		}
		return true
	}, aabb)

	return best, found
}
