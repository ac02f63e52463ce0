package render

// View selects which layer the viewer and CLI render.
type View int

const (
	ViewWorld View = iota
	ViewHeight
	ViewBiome
	viewCount
)

func (v View) String() string {
	switch v {
	case ViewWorld:
		return "worldview"
	case ViewHeight:
		return "heightmap"
	case ViewBiome:
		return "biomes"
	default:
		return "unknown"
	}
}

// Next cycles to the following view.
func (v View) Next() View { return (v + 1) % viewCount }
