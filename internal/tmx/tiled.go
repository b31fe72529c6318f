package tmx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lafriks/go-tiled"
)

// openTMX reads an XML map with go-tiled and keeps the parts a renderer
// needs. Layer data encodings, compression and external TSX tilesets are
// handled by the library.
func openTMX(path string) (*Map, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	// go-tiled does not always wrap the open error
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	tm, err := tiled.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tmx: %w", err)
	}

	dir := filepath.Dir(path)
	m := &Map{
		Width:      tm.Width,
		Height:     tm.Height,
		TileWidth:  tm.TileWidth,
		TileHeight: tm.TileHeight,
	}
	for _, ts := range tm.Tilesets {
		m.Tilesets = append(m.Tilesets, fromTiled(dir, ts))
	}
	for _, l := range tm.Layers {
		tiles, err := layerGrid(l, tm.Width, tm.Height)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", l.Name, err)
		}
		m.Layers = append(m.Layers, &Layer{
			Name:   l.Name,
			Width:  tm.Width,
			Height: tm.Height,
			Tiles:  tiles,
		})
	}
	return m, nil
}

// layerGrid turns decoded layer tiles back into global ids. go-tiled has
// already split off the flip flags.
func layerGrid(l *tiled.Layer, width, height int) ([][]uint32, error) {
	gids := make([]uint32, len(l.Tiles))
	for i, t := range l.Tiles {
		if t == nil || t.IsNil() || t.Tileset == nil {
			continue
		}
		gids[i] = t.Tileset.FirstGID + t.ID
	}
	return grid(gids, width, height)
}

func fromTiled(dir string, ts *tiled.Tileset) *Tileset {
	out := &Tileset{
		FirstGID:   ts.FirstGID,
		Name:       ts.Name,
		TileWidth:  ts.TileWidth,
		TileHeight: ts.TileHeight,
		TileCount:  ts.TileCount,
		Columns:    ts.Columns,
	}
	if ts.Image != nil {
		out.Image = Image{
			Source: sheetSource(dir, ts.GetFileFullPath(ts.Image.Source)),
			Width:  ts.Image.Width,
			Height: ts.Image.Height,
		}
	}
	return out
}

// sheetSource makes a tileset image path relative to the map's directory.
// An external tileset resolves its image against its own file.
func sheetSource(dir, full string) string {
	if filepath.IsAbs(full) {
		if rel, err := filepath.Rel(dir, full); err == nil {
			return rel
		}
	}
	return full
}
