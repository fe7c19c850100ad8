package report

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"wildfire/internal/render"
	"wildfire/internal/sims/wildfire"
)

const (
	framePad    = 16
	titleHeight = 28
	lineHeight  = 16
	boxPad      = 6
)

var (
	backgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	textColor       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	boxColor        = color.NRGBA{R: 255, G: 255, B: 255, A: 204}
)

// CellScale picks a per-cell pixel size so an n×n grid spans roughly target
// pixels.
func CellScale(n, target int) int {
	if n <= 0 || target <= n {
		return 1
	}
	return target / n
}

// Frame renders a snapshot with one scale×scale block per cell.
func Frame(snap *wildfire.Snapshot, scale int) *image.RGBA {
	n := snap.Size()
	return render.PaletteImage(snap.Cells(), n, n, scale, wildfire.Palette())
}

// StepFrame renders a snapshot with its step index in the top-left corner.
func StepFrame(step int, snap *wildfire.Snapshot, scale int) *image.RGBA {
	img := Frame(snap, scale)
	drawTextBox(img, image.Pt(2, 2), []string{fmt.Sprintf("Step %d", step)})
	return img
}

// FinalImage renders the final snapshot on a white canvas under title, with
// the summary in an annotation box over the top-left of the grid.
func FinalImage(snap *wildfire.Snapshot, sum Summary, title string, scale int) *image.RGBA {
	grid := Frame(snap, scale)
	gw, gh := grid.Bounds().Dx(), grid.Bounds().Dy()

	width := gw + 2*framePad
	if tw := textWidth(title) + 2*framePad; tw > width {
		width = tw
	}
	img := image.NewRGBA(image.Rect(0, 0, width, gh+titleHeight+2*framePad))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	drawString(img, (width-textWidth(title))/2, framePad+lineHeight, title)

	origin := image.Pt((width-gw)/2, framePad+titleHeight)
	draw.Draw(img, grid.Bounds().Add(origin), grid, image.Point{}, draw.Src)

	drawTextBox(img, origin.Add(image.Pt(boxPad, boxPad)), sum.Lines())
	return img
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func drawTextBox(img *image.RGBA, at image.Point, lines []string) {
	if len(lines) == 0 {
		return
	}
	w := 0
	for _, l := range lines {
		if tw := textWidth(l); tw > w {
			w = tw
		}
	}
	box := image.Rect(at.X, at.Y, at.X+w+2*boxPad, at.Y+len(lines)*lineHeight+2*boxPad)
	draw.Draw(img, box.Intersect(img.Bounds()), image.NewUniform(boxColor), image.Point{}, draw.Over)
	for i, l := range lines {
		drawString(img, at.X+boxPad, at.Y+boxPad+(i+1)*lineHeight-3, l)
	}
}

func drawString(img *image.RGBA, x, y int, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}
