package tmx

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tmj.schema.json
var tmjSchemaJSON string

var tmjSchema = jsonschema.MustCompileString("tmj.schema.json", tmjSchemaJSON)

type jsonMap struct {
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	TileWidth  int           `json:"tilewidth"`
	TileHeight int           `json:"tileheight"`
	Tilesets   []jsonTileset `json:"tilesets"`
	Layers     []jsonLayer   `json:"layers"`
}

type jsonTileset struct {
	FirstGID    uint32 `json:"firstgid"`
	Source      string `json:"source"`
	Name        string `json:"name"`
	TileWidth   int    `json:"tilewidth"`
	TileHeight  int    `json:"tileheight"`
	TileCount   int    `json:"tilecount"`
	Columns     int    `json:"columns"`
	Image       string `json:"image"`
	ImageWidth  int    `json:"imagewidth"`
	ImageHeight int    `json:"imageheight"`
}

type jsonLayer struct {
	Type        string          `json:"type"`
	Name        string          `json:"name"`
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	Encoding    string          `json:"encoding"`
	Compression string          `json:"compression"`
	Data        json.RawMessage `json:"data"`
}

func decodeJSON(r io.Reader, dir string) (*Map, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err := Validate(raw); err != nil {
		return nil, err
	}

	var jm jsonMap
	if err := json.Unmarshal(raw, &jm); err != nil {
		return nil, fmt.Errorf("tmx: %w", err)
	}

	m := &Map{
		Width:      jm.Width,
		Height:     jm.Height,
		TileWidth:  jm.TileWidth,
		TileHeight: jm.TileHeight,
	}

	for _, jt := range jm.Tilesets {
		ts, err := jt.resolve(dir)
		if err != nil {
			return nil, err
		}
		m.Tilesets = append(m.Tilesets, ts)
	}

	for _, jl := range jm.Layers {
		if jl.Type != "tilelayer" {
			continue
		}
		gids, err := jl.gids()
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", jl.Name, err)
		}
		tiles, err := grid(gids, jl.Width, jl.Height)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", jl.Name, err)
		}
		m.Layers = append(m.Layers, &Layer{
			Name:   jl.Name,
			Width:  jl.Width,
			Height: jl.Height,
			Tiles:  tiles,
		})
	}

	return m, nil
}

// Validate checks a JSON map document against the embedded schema.
func Validate(doc []byte) error {
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return fmt.Errorf("tmx: %w", err)
	}
	if err := tmjSchema.Validate(v); err != nil {
		return fmt.Errorf("tmx: schema: %w", err)
	}
	return nil
}

func (jl jsonLayer) gids() ([]uint32, error) {
	if jl.Encoding == "base64" {
		var text string
		if err := json.Unmarshal(jl.Data, &text); err != nil {
			return nil, fmt.Errorf("tmx: base64 data: %w", err)
		}
		return decodeBase64(jl.Compression, text)
	}
	var gids []uint32
	if err := json.Unmarshal(jl.Data, &gids); err != nil {
		return nil, fmt.Errorf("tmx: data: %w", err)
	}
	return gids, nil
}

func (jt jsonTileset) resolve(dir string) (*Tileset, error) {
	if jt.Source == "" {
		return jt.tileset(), nil
	}

	// XML tilesets belong with XML maps
	switch strings.ToLower(filepath.Ext(jt.Source)) {
	case ".tsx", ".xml":
		return nil, fmt.Errorf("%w: tileset %s in a JSON map", ErrFormat, jt.Source)
	}

	b, err := os.ReadFile(filepath.Join(dir, jt.Source))
	if err != nil {
		return nil, fmt.Errorf("tileset %s: %w", jt.Source, err)
	}
	var ext jsonTileset
	if err := json.Unmarshal(b, &ext); err != nil {
		return nil, fmt.Errorf("tileset %s: %w", jt.Source, err)
	}
	ext.FirstGID = jt.FirstGID
	if ext.Image != "" {
		ext.Image = filepath.Join(filepath.Dir(jt.Source), ext.Image)
	}
	return ext.tileset(), nil
}

func (jt jsonTileset) tileset() *Tileset {
	return &Tileset{
		FirstGID:   jt.FirstGID,
		Name:       jt.Name,
		TileWidth:  jt.TileWidth,
		TileHeight: jt.TileHeight,
		TileCount:  jt.TileCount,
		Columns:    jt.Columns,
		Image: Image{
			Source: jt.Image,
			Width:  jt.ImageWidth,
			Height: jt.ImageHeight,
		},
	}
}
