package gridmesh

import (
	"image"
	"image/png"
	"os"
	"runtime"
	"sync"

	xdraw "golang.org/x/image/draw"
)

// SoftwareRenderer rasterizes a cell grid on the CPU with the exact fragment
// decision the GPU pipeline uses. Every pixel is an independent, pure
// invocation, so rows are fanned out across goroutines in no particular
// order.
type SoftwareRenderer struct {
	// CellSize is the square pixel size of one cell. Defaults to 8.
	CellSize int
}

func (r SoftwareRenderer) cellSize() int {
	if r.CellSize <= 0 {
		return 8
	}
	return r.CellSize
}

// Render draws the grid into a new RGBA image. Pixels outside every cell
// shape stay fully transparent; covered pixels get the cell color. Image
// rows run top-down while grid y grows upward, so row 0 shows the top row
// of cells.
func (r SoftwareRenderer) Render(grid *CellGrid, color PackedColor) *image.RGBA {
	size := r.cellSize()
	width := grid.Width() * size
	height := grid.Height() * size
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	cr, cg, cb, ca := color.Bytes()

	workers := runtime.NumCPU()
	if workers > height {
		workers = height
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(startRow int) {
			defer wg.Done()
			for py := startRow; py < height; py += workers {
				// Flip into grid space: world y grows upward.
				worldY := height - 1 - py
				cellY := worldY / size
				ly := (float32(worldY%size) + 0.5) / float32(size)
				for px := 0; px < width; px++ {
					cellX := px / size
					lx := (float32(px%size) + 0.5) / float32(size)
					if PixelOn(grid.MaskAt(cellX, cellY), lx, ly) {
						i := img.PixOffset(px, py)
						img.Pix[i+0] = cr
						img.Pix[i+1] = cg
						img.Pix[i+2] = cb
						img.Pix[i+3] = ca
					}
				}
			}
		}(w)
	}
	wg.Wait()
	return img
}

// RenderScaled renders the grid and upscales the result by an integer
// factor with nearest-neighbor sampling, keeping the cell edges crisp.
func (r SoftwareRenderer) RenderScaled(grid *CellGrid, color PackedColor, factor int) *image.RGBA {
	src := r.Render(grid, color)
	if factor <= 1 {
		return src
	}
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)
	return dst
}

// ExportPNG writes an image to disk, for offline inspection of
// software-rendered frames.
func ExportPNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}
