// Package tmx reads Tiled maps in the XML (.tmx) and JSON (.tmj) formats.
// XML maps are decoded by go-tiled; JSON maps are checked against a schema
// and decoded here.
//
// Only what a renderer needs is kept: map and tile dimensions, the tilesets
// with their sheet images, and every tile layer as rows of global tile ids.
// Object groups, image layers and properties are skipped.
package tmx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNoTileset   = errors.New("tmx: no tileset for gid")
	ErrNoLayers    = errors.New("tmx: map has no tile layers")
	ErrCompression = errors.New("tmx: unsupported data compression")
	ErrLayerSize   = errors.New("tmx: layer data does not match layer size")
	ErrFormat      = errors.New("tmx: unknown map format")
)

// Tile ids carry flip flags in their top bits.
const (
	FlippedHorizontally uint32 = 0x80000000
	FlippedVertically   uint32 = 0x40000000
	FlippedDiagonally   uint32 = 0x20000000
	RotatedHexagonal120 uint32 = 0x10000000

	flagMask = FlippedHorizontally | FlippedVertically | FlippedDiagonally | RotatedHexagonal120
)

type Map struct {
	Width      int
	Height     int
	TileWidth  int
	TileHeight int

	Tilesets []*Tileset
	Layers   []*Layer
}

type Tileset struct {
	FirstGID   uint32
	Name       string
	TileWidth  int
	TileHeight int
	TileCount  int
	Columns    int
	Image      Image
}

// Image is the sheet of a tileset. Source is relative to the map's directory.
type Image struct {
	Source string
	Width  int
	Height int
}

// Layer holds global tile ids row by row. Zero means empty.
type Layer struct {
	Name   string
	Width  int
	Height int
	Tiles  [][]uint32
}

// Open decodes the map at path, picking the format from the extension.
func Open(path string) (*Map, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tmx", ".xml":
		return openTMX(path)
	case ".tmj", ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return decodeJSON(f, filepath.Dir(path))
	default:
		return nil, fmt.Errorf("%w: %s", ErrFormat, filepath.Base(path))
	}
}

// TilesetByGID returns the tileset that owns gid: the one with the largest
// FirstGID not above it.
func (m *Map) TilesetByGID(gid uint32) (*Tileset, error) {
	gid &^= flagMask
	var best *Tileset
	for _, ts := range m.Tilesets {
		if ts.FirstGID <= gid && (best == nil || ts.FirstGID > best.FirstGID) {
			best = ts
		}
	}
	if best == nil || gid == 0 {
		return nil, fmt.Errorf("%w %d", ErrNoTileset, gid)
	}
	return best, nil
}

// Layer returns the i-th tile layer.
func (m *Map) Layer(i int) (*Layer, error) {
	if i < 0 || i >= len(m.Layers) {
		return nil, ErrNoLayers
	}
	return m.Layers[i], nil
}

func grid(gids []uint32, width, height int) ([][]uint32, error) {
	if width < 0 || height < 0 || len(gids) != width*height {
		return nil, fmt.Errorf("%w: got %d tiles for %dx%d", ErrLayerSize, len(gids), width, height)
	}
	rows := make([][]uint32, height)
	for y := range rows {
		row := gids[y*width : (y+1)*width]
		for x := range row {
			row[x] &^= flagMask
		}
		rows[y] = row
	}
	return rows, nil
}
