package wildfire

import "image/color"

var firePalette = buildFirePalette()

// Palette maps Cells() values to colours: green fuel, red fire, black ash.
func Palette() []color.RGBA {
	return firePalette
}

// Palette exposes the colour palette used for rendering the fire.
func (f *Fire) Palette() []color.RGBA {
	return firePalette
}

func buildFirePalette() []color.RGBA {
	palette := make([]color.RGBA, int(Burnt)+1)
	for i := range palette {
		palette[i] = statusColor(Status(i))
	}
	return palette
}

func statusColor(s Status) color.RGBA {
	switch s {
	case Burning:
		return color.RGBA{R: 220, G: 30, B: 20, A: 255}
	case Burnt:
		return color.RGBA{R: 0, G: 0, B: 0, A: 255}
	default:
		return color.RGBA{R: 34, G: 139, B: 34, A: 255}
	}
}
