package curvelab

// Swatch is a named display colour.
type Swatch struct {
	Name string
	// Hex is the colour as "#RRGGBB".
	Hex string
}

// Palette is an ordered list of colours a curve cycles through.
type Palette []Swatch

// DefaultPalette is the palette used by [Editor.CycleColor]. Index 1 is
// [DefaultColor].
var DefaultPalette = Palette{
	{"Red", "#DB0505"},
	{"Blue", "#45B7D1"},
	{"Green", "#29D50E"},
	{"Purple", "#9B59B6"},
	{"Orange", "#FF8C42"},
	{"Teal", "#26A69A"},
}

// Next returns the index and swatch following index i, wrapping around at the
// end. It panics if the palette is empty.
func (p Palette) Next(i int) (int, Swatch) {
	next := (i + 1) % len(p)
	if next < 0 {
		next += len(p)
	}
	return next, p[next]
}

// Index returns the index of the swatch with the given hex colour, or -1.
func (p Palette) Index(hex string) int {
	for i, s := range p {
		if s.Hex == hex {
			return i
		}
	}
	return -1
}
