package tilespin

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rhpo/tilespin/internal/telemetry"
	"github.com/rhpo/tilespin/internal/tmx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// App is everything the startup pipeline loads. It is built once and kept
// for the life of the process.
type App struct {
	Config Config

	Map       *Map
	AssetsDir string
	TileMap   *tmx.Map
	Tileset   *tmx.Tileset
	Sheet     *TileSheet
	Layer     TileLayer
	Frame     *Frame
	Grid      *TileGrid

	workDir string
}

type startupStep struct {
	name string
	run  func(ctx context.Context) error
}

// Load runs the startup steps in order and stops at the first failure,
// which is returned as a *StartupError.
func Load(ctx context.Context, cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &StartupError{Step: "config", Err: err}
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, &StartupError{Step: "assets", Err: err}
	}
	return load(ctx, cfg, wd)
}

func load(ctx context.Context, cfg Config, workDir string) (*App, error) {
	tracer := telemetry.Tracer("startup")
	ctx, span := tracer.Start(ctx, "startup")
	defer span.End()

	a := &App{Config: cfg, workDir: workDir}
	steps := []startupStep{
		{"map", a.buildMap},
		{"assets", a.findAssets},
		{"tilemap", a.loadTileMap},
		{"tileset", a.pickTileset},
		{"tilesheet", a.loadSheet},
		{"layer", a.takeLayer},
		{"frame", a.buildFrame},
		{"collision", a.buildGrid},
	}

	for _, step := range steps {
		stepCtx, stepSpan := tracer.Start(ctx, "startup."+step.name)
		err := step.run(stepCtx)
		if err != nil {
			stepSpan.RecordError(err)
			stepSpan.SetStatus(codes.Error, err.Error())
			stepSpan.End()
			span.SetStatus(codes.Error, step.name)
			return nil, &StartupError{Step: step.name, Err: err}
		}
		stepSpan.End()
	}

	span.SetAttributes(a.attributes()...)
	log.Printf("loaded %s: %dx%d tiles of %dx%d from %s",
		cfg.MapFile, a.TileMap.Width, a.TileMap.Height, a.Sheet.TileWidth, a.Sheet.TileHeight, a.AssetsDir)
	return a, nil
}

func (a *App) buildMap(ctx context.Context) error {
	a.Map = NewMap(20.0, 40.0)
	a.Map.Build()
	return nil
}

func (a *App) findAssets(ctx context.Context) error {
	if a.Config.AssetsDir != "" {
		if !isDir(a.Config.AssetsDir) {
			return fmt.Errorf("%w: %s", ErrFolderNotFound, a.Config.AssetsDir)
		}
		a.AssetsDir = a.Config.AssetsDir
		return nil
	}

	dir, err := FindFolder(a.workDir, a.Config.AssetsFolder, a.Config.SearchParents, a.Config.SearchKids)
	if err != nil {
		return err
	}
	a.AssetsDir = dir
	return nil
}

func (a *App) loadTileMap(ctx context.Context) error {
	m, err := tmx.Open(filepath.Join(a.AssetsDir, a.Config.MapFile))
	if err != nil {
		return err
	}
	a.TileMap = m
	return nil
}

func (a *App) pickTileset(ctx context.Context) error {
	ts, err := a.TileMap.TilesetByGID(1)
	if err != nil {
		return err
	}
	if ts.TileWidth <= 0 || ts.TileHeight <= 0 {
		return fmt.Errorf("%w: tileset %q is %dx%d", ErrBadTileSize, ts.Name, ts.TileWidth, ts.TileHeight)
	}
	if ts.Image.Source == "" {
		return fmt.Errorf("tileset %q has no image", ts.Name)
	}
	a.Tileset = ts
	return nil
}

func (a *App) loadSheet(ctx context.Context) error {
	mapDir := filepath.Dir(filepath.Join(a.AssetsDir, a.Config.MapFile))
	img, err := LoadImage(filepath.Join(mapDir, a.Tileset.Image.Source))
	if err != nil {
		return err
	}
	sheet := NewTileSheet(img, a.Tileset.TileWidth, a.Tileset.TileHeight)
	if sheet.Columns() == 0 {
		return fmt.Errorf("%w: sheet is %dpx wide, tiles are %dpx", ErrBadTileSize, sheet.Width, sheet.TileWidth)
	}
	a.Sheet = sheet
	return nil
}

// takeLayer copies the first layer so the frame owns its grid.
func (a *App) takeLayer(ctx context.Context) error {
	l, err := a.TileMap.Layer(0)
	if err != nil {
		return err
	}
	layer := make(TileLayer, len(l.Tiles))
	for y, row := range l.Tiles {
		layer[y] = append([]uint32(nil), row...)
	}
	a.Layer = layer
	return nil
}

func (a *App) buildFrame(ctx context.Context) error {
	a.Frame = NewFrame(a.Layer, a.Sheet, a.Config.FrameProps())
	return nil
}

func (a *App) buildGrid(ctx context.Context) error {
	a.Grid = NewTileGrid(a.Layer, a.Sheet.TileWidth, a.Sheet.TileHeight)
	if a.Grid.Len() == 0 {
		log.Printf("layer %q has no tiles to draw", a.TileMap.Layers[0].Name)
	}
	return nil
}

func (a *App) attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("assets.dir", a.AssetsDir),
		attribute.String("map.file", a.Config.MapFile),
		attribute.Int("layer.rows", len(a.Layer)),
		attribute.Int("tiles.drawn", a.Grid.Len()),
	}
}
