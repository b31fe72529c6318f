package tilespin

import "image"

type EventType string

const (
	EventTileHover      EventType = "tilehover"
	EventViewportResize EventType = "viewportresize"
)

// EventTileHoverData is sent when the cursor moves to another cell. Ok is
// false when the cursor left the drawn tiles.
type EventTileHoverData struct {
	Cell image.Point
	Tile uint32
	Ok   bool
}

type EventViewportResizeData struct {
	Size image.Point
}
