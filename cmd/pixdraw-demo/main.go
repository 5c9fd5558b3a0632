// Command pixdraw-demo renders a scene of rectangle fills and lines
// with the pixdraw software rasterizer. The result is written to a PNG
// file or shown in a window. A scene can be loaded from a YAML file;
// without one, a built-in demo scene is used.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"

	"github.com/gopix/pixdraw"
	"github.com/gopix/pixdraw/surface"
)

func main() {
	var (
		width  = flag.Int("width", 640, "surface width")
		height = flag.Int("height", 480, "surface height")
		scene  = flag.String("scene", "", "YAML scene file (optional)")
		output = flag.String("output", "demo.png", "output PNG file")
		window = flag.Bool("window", false, "show the result in a window instead of writing a file")
	)
	flag.Parse()

	sc := defaultScene()
	if *scene != "" {
		loaded, err := loadScene(*scene)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
		sc = loaded
	}

	s := surface.New(*width, *height, surface.ABGR8888)
	if err := render(s, sc); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if *window {
		if err := show(s); err != nil {
			log.Fatalf("Window error: %v", err)
		}
		return
	}
	if err := savePNG(s, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// Scene describes what to draw: an optional background color, then
// rectangle fills and lines, in order.
type Scene struct {
	Background string `yaml:"background,omitempty"`
	Fills      []Fill `yaml:"fills,omitempty"`
	Lines      []Line `yaml:"lines,omitempty"`
}

// Fill is one fill operation: a color and zero or more (x, y, w, h)
// areas. Without areas the whole surface is filled.
type Fill struct {
	Color string  `yaml:"color"`
	Areas [][]int `yaml:"areas,omitempty"`
}

// Line is one line operation: a color, a width, and a flat list of
// (x1, y1, x2, y2) segment coordinates.
type Line struct {
	Color  string `yaml:"color"`
	Width  int    `yaml:"width,omitempty"`
	Points []int  `yaml:"points"`
}

func loadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &sc, nil
}

func render(s *surface.Surface, sc *Scene) error {
	target := pixdraw.FromSurface(s)

	if sc.Background != "" {
		c, err := pixdraw.ParseColor(sc.Background)
		if err != nil {
			return err
		}
		if err := pixdraw.Fill(target, c); err != nil {
			return err
		}
	}

	for _, f := range sc.Fills {
		c, err := pixdraw.ParseColor(f.Color)
		if err != nil {
			return err
		}
		areas := make([]surface.Rect, 0, len(f.Areas))
		for _, a := range f.Areas {
			r, err := pixdraw.ParseArea(a)
			if err != nil {
				return err
			}
			areas = append(areas, r)
		}
		if err := pixdraw.Fill(target, c, areas...); err != nil {
			return err
		}
	}

	for _, l := range sc.Lines {
		c, err := pixdraw.ParseColor(l.Color)
		if err != nil {
			return err
		}
		width := l.Width
		if width == 0 {
			width = 1
		}
		if err := pixdraw.Line(target, c, l.Points, width); err != nil {
			return err
		}
	}
	return nil
}

// defaultScene draws a dark background, a few colored panels, and a
// fan of lines from the top-left corner.
func defaultScene() *Scene {
	sc := &Scene{
		Background: "#202830",
		Fills: []Fill{
			{Color: "crimson", Areas: [][]int{{40, 40, 120, 80}}},
			{Color: "#3fa34d", Areas: [][]int{{200, 40, 120, 80}, {360, 40, 120, 80}, {520, 40, 80, 80}}},
		},
	}
	fan := Line{Color: "gold", Width: 1}
	for x := 0; x <= 600; x += 40 {
		fan.Points = append(fan.Points, 20, 160, 20+x, 460)
	}
	sc.Lines = append(sc.Lines, fan)
	sc.Lines = append(sc.Lines, Line{
		Color:  "skyblue",
		Width:  5,
		Points: []int{620, 160, 620, 460},
	})
	return sc
}

func savePNG(s *surface.Surface, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, s.Snapshot())
}

// viewer displays a finished surface in an ebiten window.
type viewer struct {
	img  *ebiten.Image
	w, h int
}

func (v *viewer) Update() error { return nil }

func (v *viewer) Draw(screen *ebiten.Image) { screen.DrawImage(v.img, nil) }

func (v *viewer) Layout(_, _ int) (int, int) { return v.w, v.h }

func show(s *surface.Surface) error {
	v := &viewer{
		img: ebiten.NewImageFromImage(s.Snapshot()),
		w:   s.W,
		h:   s.H,
	}
	ebiten.SetWindowTitle("pixdraw demo")
	ebiten.SetWindowSize(s.W, s.H)
	return ebiten.RunGame(v)
}
