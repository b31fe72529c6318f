package tilespin

// Map is a placeholder for map-wide state. It only stores the size it was
// created with and is not read by the renderer.
type Map struct {
	Width  float64
	Height float64
}

func NewMap(width, height float64) *Map {
	return &Map{
		Width:  width,
		Height: height,
	}
}

// Build is a no-op.
func (m *Map) Build() {}
