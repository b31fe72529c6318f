package tilespin

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes any image format registered with the image package.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}

	return img, nil
}

// TileSheet is one image made of equally sized tiles laid out in rows.
// Width must be a multiple of TileWidth.
type TileSheet struct {
	Source     image.Image
	Width      int
	TileWidth  int
	TileHeight int

	texture *ebiten.Image
}

func NewTileSheet(src image.Image, tileWidth, tileHeight int) *TileSheet {
	return &TileSheet{
		Source:     src,
		Width:      src.Bounds().Dx(),
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
	}
}

func (s *TileSheet) Columns() int {
	return s.Width / s.TileWidth
}

// SourceRect is the sheet rectangle of the zero-based tile index. Indexes
// past the end of the sheet are not checked.
func (s *TileSheet) SourceRect(index uint32) image.Rectangle {
	cols := uint32(s.Columns())
	x := int(index%cols) * s.TileWidth
	y := int(index/cols) * s.TileHeight
	return image.Rect(x, y, x+s.TileWidth, y+s.TileHeight)
}

// Texture uploads the sheet on first use.
func (s *TileSheet) Texture() *ebiten.Image {
	if s.texture == nil {
		s.texture = ebiten.NewImageFromImage(s.Source)
	}
	return s.texture
}

func (s *TileSheet) SubImage(r image.Rectangle) *ebiten.Image {
	return s.Texture().SubImage(r).(*ebiten.Image)
}
