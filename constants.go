package tilespin

import (
	"image/color"
	"math"
)

const (
	Deg = math.Pi / 180
	PTM = 8.0
)

func PixelsToMeters(p float64) float64 {
	return p / PTM
}

const (
	DefaultTitle  = "spinning-square"
	DefaultWidth  = 2000
	DefaultHeight = 2000
	DefaultTPS    = 60

	DefaultAssetsFolder = "assets"
	DefaultMapFile      = "tiled_base64_zlib.tmx"
	DefaultSearchDepth  = 3

	// Radians per second.
	DefaultRotationSpeed = 2.0
	DefaultSquareSize    = 50.0
)

// RGBA components in [0, 1].
type RGBA [4]float32

var (
	Green = RGBA{0, 1, 0, 1}
	Red   = RGBA{1, 0, 0, 1}
	White = RGBA{1, 1, 1, 1}
)

func (c RGBA) Color() color.RGBA {
	return color.RGBA{
		R: channel(c[0]),
		G: channel(c[1]),
		B: channel(c[2]),
		A: channel(c[3]),
	}
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}
