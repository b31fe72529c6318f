// Command tilespin draws a Tiled map under a spinning square.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/rhpo/tilespin"
	"github.com/rhpo/tilespin/internal/telemetry"
)

func main() {
	// Not fatal: the environment may already be set.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	var (
		configPath = flag.String("config", envOr("TILESPIN_CONFIG", "tilespin.yaml"), "yaml config file (optional)")
		assetsDir  = flag.String("assets", "", "assets directory; skips the folder search")
		mapFile    = flag.String("map", "", "map file inside the assets directory")
		hud        = flag.Bool("hud", false, "show the debug overlay")
	)
	flag.Parse()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := tilespin.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *assetsDir != "" {
		cfg.AssetsDir = *assetsDir
	}
	if *mapFile != "" {
		cfg.MapFile = *mapFile
	}
	if *hud {
		cfg.HUD = true
	}

	app, err := tilespin.Load(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if err := tilespin.NewGame(app).Run(); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
