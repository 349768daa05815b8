// Package sprite paints the game's tiles and sprites procedurally, so the
// binaries ship without image assets.
package sprite

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/golangdaddy/bogger/pkg/config"
)

var (
	black   = color.RGBA{0, 0, 0, 255}
	white   = color.RGBA{255, 255, 255, 255}
	magenta = color.RGBA{255, 0, 255, 255}
)

// CarColours are the body colours vehicles are painted in.
var CarColours = []color.RGBA{
	{200, 40, 40, 255},
	{40, 90, 200, 255},
	{230, 200, 40, 255},
	{240, 240, 240, 255},
	{150, 60, 180, 255},
}

// Generator paints textures from a seeded source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator; the same seed gives the same pixels.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, 0x5eed))}
}

func tile() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, int(config.TileWidth), int(config.TileHeight)))
}

func fill(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// set writes c at (x,y) when it is inside img.
func set(img *image.RGBA, x, y int, c color.RGBA) {
	if (image.Point{x, y}).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}

// Grass is a speckled green tile.
func (g *Generator) Grass() *image.RGBA {
	img := tile()
	fill(img, color.RGBA{30, 100, 30, 255})
	for i := 0; i < 40; i++ {
		shade := uint8(80 + g.rng.IntN(60))
		set(img, g.rng.IntN(16), g.rng.IntN(16), color.RGBA{30, shade, 30, 255})
	}
	return img
}

// Road is tarmac with a dashed centre line.
func (g *Generator) Road() *image.RGBA {
	img := tile()
	fill(img, color.RGBA{50, 50, 55, 255})
	for i := 0; i < 20; i++ {
		shade := uint8(40 + g.rng.IntN(30))
		set(img, g.rng.IntN(16), g.rng.IntN(16), color.RGBA{shade, shade, shade, 255})
	}
	for x := 2; x < 10; x++ {
		set(img, x, 7, color.RGBA{220, 220, 220, 255})
	}
	return img
}

// Water is blue with a ripple band.
func (g *Generator) Water() *image.RGBA {
	img := tile()
	fill(img, color.RGBA{20, 60, 160, 255})
	phase := g.rng.Float64() * math.Pi
	for x := 0; x < 16; x++ {
		y := 8 + int(2*math.Sin(float64(x)*0.8+phase))
		set(img, x, y, color.RGBA{90, 140, 230, 255})
	}
	return img
}

// Fault marks a lane the world could not provide.
func (g *Generator) Fault() *image.RGBA {
	img := tile()
	fill(img, magenta)
	return img
}

// Frog is the player, seen from above.
func (g *Generator) Frog() *image.RGBA {
	img := tile()
	body := color.RGBA{60, 200, 60, 255}
	dark := color.RGBA{20, 110, 20, 255}

	cx, cy, r := 8, 9, 5
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			dx, dy := x-cx, y-cy
			d := dx*dx + dy*dy
			switch {
			case d <= (r-1)*(r-1):
				set(img, x, y, body)
			case d <= r*r:
				set(img, x, y, dark)
			}
		}
	}
	// Legs
	for _, p := range [][2]int{{2, 4}, {13, 4}, {2, 14}, {13, 14}} {
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				set(img, p[0]+dx, p[1]+dy, dark)
			}
		}
	}
	// Eyes
	for _, ex := range []int{6, 10} {
		set(img, ex, 5, white)
		set(img, ex, 6, black)
	}
	return img
}

// Car paints a vehicle in the given body colour, facing right.
func (g *Generator) Car(body color.RGBA) *image.RGBA {
	img := tile()
	glass := color.RGBA{150, 200, 230, 255}
	for y := 3; y < 13; y++ {
		for x := 1; x < 15; x++ {
			set(img, x, y, body)
		}
	}
	for y := 5; y < 11; y++ {
		set(img, 10, y, glass)
		set(img, 11, y, glass)
		set(img, 4, y, glass)
	}
	for _, w := range [][2]int{{3, 2}, {11, 2}, {3, 13}, {11, 13}} {
		set(img, w[0], w[1], black)
		set(img, w[0]+1, w[1], black)
	}
	return img
}

// Log paints a log width pixels long, with bark grain.
func (g *Generator) Log(width int) *image.RGBA {
	h := int(config.FloatHeight)
	img := image.NewRGBA(image.Rect(0, 0, width, h))
	bark := color.RGBA{110, 70, 30, 255}
	fill(img, bark)
	for i := 0; i < width/2; i++ {
		shade := uint8(60 + g.rng.IntN(40))
		set(img, g.rng.IntN(width), 1+g.rng.IntN(h-2), color.RGBA{shade + 30, shade, 20, 255})
	}
	ring := color.RGBA{190, 150, 90, 255}
	for y := 2; y < h-2; y++ {
		set(img, width-2, y, ring)
		set(img, width-1, y, bark)
	}
	for x := 0; x < width; x++ {
		set(img, x, 0, color.RGBA{70, 40, 15, 255})
		set(img, x, h-1, color.RGBA{70, 40, 15, 255})
	}
	return img
}

// Turtle is a single shell, seen from above.
func (g *Generator) Turtle() *image.RGBA {
	h := int(config.FloatHeight)
	img := image.NewRGBA(image.Rect(0, 0, int(config.TurtleWidth), h))
	shell := color.RGBA{170, 40, 40, 255}
	rim := color.RGBA{90, 20, 20, 255}
	cx, cy, r := 8, h/2, 6
	for y := 0; y < h; y++ {
		for x := 0; x < int(config.TurtleWidth); x++ {
			dx, dy := x-cx, y-cy
			d := dx*dx + dy*dy
			switch {
			case d <= (r-1)*(r-1):
				set(img, x, y, shell)
			case d <= r*r:
				set(img, x, y, rim)
			}
		}
	}
	set(img, 1, cy, color.RGBA{120, 180, 80, 255})
	return img
}

// Set holds every texture a frontend needs.
type Set struct {
	Grass, Road, Water, Fault *image.RGBA
	Frog, Turtle              *image.RGBA
	Cars                      []*image.RGBA
	Logs                      map[int]*image.RGBA
}

// NewSet paints the full texture set from seed.
func NewSet(seed uint64) *Set {
	g := NewGenerator(seed)
	s := &Set{
		Grass:  g.Grass(),
		Road:   g.Road(),
		Water:  g.Water(),
		Fault:  g.Fault(),
		Frog:   g.Frog(),
		Turtle: g.Turtle(),
		Logs:   make(map[int]*image.RGBA),
	}
	for _, c := range CarColours {
		s.Cars = append(s.Cars, g.Car(c))
	}
	for _, w := range []float64{config.LogWidth1, config.LogWidth2, config.LogWidth3} {
		s.Logs[int(w)] = g.Log(int(w))
	}
	return s
}

// LogFor returns the log texture for width, painting one if the width is new.
func (s *Set) LogFor(width int) *image.RGBA {
	if img, ok := s.Logs[width]; ok {
		return img
	}
	img := NewGenerator(uint64(width)).Log(width)
	s.Logs[width] = img
	return img
}

// Export writes every texture as a PNG under dir.
func (s *Set) Export(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create sprite directory: %w", err)
	}
	files := map[string]*image.RGBA{
		"grass.png":  s.Grass,
		"road.png":   s.Road,
		"water.png":  s.Water,
		"fault.png":  s.Fault,
		"frog.png":   s.Frog,
		"turtle.png": s.Turtle,
	}
	for i, img := range s.Cars {
		files[fmt.Sprintf("car_%d.png", i)] = img
	}
	for w, img := range s.Logs {
		files[fmt.Sprintf("log_%d.png", w)] = img
	}
	for name, img := range files {
		if err := writePNG(filepath.Join(dir, name), img); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}
