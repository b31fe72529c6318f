package tilespin

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type TextProps struct {
	Text  string
	X, Y  float64
	Color color.Color
	Font  font.Face
}

func DrawText(screen *ebiten.Image, props *TextProps) {
	if props == nil || props.Text == "" {
		return
	}
	if props.Font == nil {
		props.Font = basicfont.Face7x13
	}
	if props.Color == nil {
		props.Color = color.RGBA{255, 255, 255, 255}
	}

	text.Draw(screen, props.Text, props.Font, int(props.X), int(props.Y), props.Color)
}

const hudLineHeight = 14

// HUD is a debug overlay with the rotation, the loop rate and the tile
// under the cursor.
type HUD struct {
	hover EventTileHoverData
}

func NewHUD(events *EventEmitter) *HUD {
	h := &HUD{}
	events.On(EventTileHover, func(data interface{}) {
		if d, ok := data.(EventTileHoverData); ok {
			h.hover = d
		}
	})
	return h
}

func (h *HUD) Lines(rotation, tps, fps float64) []string {
	hover := "tile -"
	if h.hover.Ok {
		hover = fmt.Sprintf("tile (%d,%d) #%d", h.hover.Cell.X, h.hover.Cell.Y, h.hover.Tile)
	}
	return []string{
		fmt.Sprintf("rotation %.2f rad (%.0f deg)", rotation, math.Mod(rotation/Deg, 360)),
		fmt.Sprintf("tps %.1f fps %.1f", tps, fps),
		hover,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, rotation float64) {
	for i, line := range h.Lines(rotation, ebiten.ActualTPS(), ebiten.ActualFPS()) {
		DrawText(screen, &TextProps{
			Text: line,
			X:    8,
			Y:    float64(16 + i*hudLineHeight),
		})
	}
}
