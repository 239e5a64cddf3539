// Command sademo lays out a small state automaton on a grid and writes it
// as a PNG image, an SVG document or an HTML canvas page.
//
//	sademo -output automaton.svg
//	sademo -format html -grid
//	sademo -chrome -output automaton.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/stateautomaton/automaton"
	"github.com/gogpu/stateautomaton/environment"
	"github.com/gogpu/stateautomaton/graphic"
	"github.com/gogpu/stateautomaton/pattern"
	"github.com/gogpu/stateautomaton/recording"
	"github.com/gogpu/stateautomaton/recording/backends/canvasjs"
	"github.com/gogpu/stateautomaton/recording/backends/raster"
	"github.com/gogpu/stateautomaton/recording/backends/svg"
	"github.com/gogpu/stateautomaton/surface"
)

func main() {
	var (
		format = flag.String("format", "", "backend name or file extension (default from -output, else png)")
		output = flag.String("output", "", "output file (default automaton.<ext>)")
		width  = flag.Int("width", 600, "image width")
		height = flag.Int("height", 400, "image height")
		cols   = flag.Int("cols", 3, "grid columns")
		rows   = flag.Int("rows", 2, "grid rows")
		grid   = flag.Bool("grid", false, "draw the layout grid")
		chrome = flag.Bool("chrome", false, "render the html page in headless Chrome and write a PNG screenshot")
	)
	flag.Parse()

	f, err := resolveFormat(*format, *output, *chrome)
	if err != nil {
		log.Fatal(err)
	}
	if *output == "" {
		ext := f.Extension
		if *chrome {
			ext = "png"
		}
		*output = "automaton." + ext
	}

	rec := recording.NewRecorder(*width, *height)
	env, err := environment.New(rec, environment.WithGrid(*rows, *cols))
	if err != nil {
		log.Fatalf("Failed to create environment: %v", err)
	}
	if err := buildAutomaton(env, *grid); err != nil {
		log.Fatalf("Failed to lay out automaton: %v", err)
	}
	if err := env.Redraw(); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	backend, err := newBackend(f)
	if err != nil {
		log.Fatal(err)
	}
	if err := rec.FinishRecording().Playback(backend); err != nil {
		log.Fatalf("Failed to render %s: %v", f.Name, err)
	}

	if *chrome {
		if err := screenshot(backend, *output); err != nil {
			log.Fatalf("Failed to take screenshot: %v", err)
		}
	} else if err := backend.SaveToFile(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Automaton saved to %s (%dx%d, %s)\n", *output, *width, *height, f.Name)
}

// resolveFormat picks the backend: canvasjs for screenshots, else the one
// named by format (a backend name or an extension), else the one matching
// the output file, else raster.
func resolveFormat(format, output string, chrome bool) (recording.Format, error) {
	switch {
	case chrome:
		format = "canvasjs"
	case format == "" && output != "":
		if f, ok := recording.FormatFor(output); ok {
			return f, nil
		}
		return recording.Format{}, fmt.Errorf("no backend writes %s files, registered backends: %v", filepath.Ext(output), recording.Backends())
	case format == "":
		format = "raster"
	}
	if f, ok := recording.Lookup(format); ok {
		return f, nil
	}
	if f, ok := recording.FormatFor("automaton." + format); ok {
		return f, nil
	}
	return recording.Format{}, fmt.Errorf("unknown format %q, registered backends: %v", format, recording.Backends())
}

// buildAutomaton places four states around the grid and connects them.
// States that do not fit the grid are skipped.
func buildAutomaton(env *environment.Environment, withGrid bool) error {
	g := env.Grid()
	if withGrid {
		dashed := graphic.NewStyle(
			graphic.WithLineStyle(graphic.LineDashed),
			graphic.WithStrokeColor(graphic.RGB(0.6, 0.6, 0.6)),
		)
		layout, err := pattern.NewGrid(g.Rows(), g.Cols(), g.Width(), g.Height(), pattern.WithCellStyle(dashed))
		if err != nil {
			return err
		}
		if err := env.AddElement(layout); err != nil {
			return err
		}
	}

	positions := []automaton.Position{
		{Col: 0, Row: 0},
		{Col: g.Cols() - 1, Row: 0},
		{Col: g.Cols() - 1, Row: g.Rows() - 1},
		{Col: 0, Row: g.Rows() - 1},
	}
	var states []*automaton.State
	seen := make(map[automaton.Position]bool)
	for i, pos := range positions {
		if seen[pos] {
			continue
		}
		seen[pos] = true
		s := automaton.NewState(fmt.Sprintf("q%d", i), pos)
		if err := env.AddState(s); err != nil {
			return err
		}
		states = append(states, s)
	}

	n := len(states)
	for i, s := range states {
		next := states[(i+1)%n]
		placement := automaton.Top
		if i%2 == 1 {
			placement = automaton.Bottom
		}
		t, err := automaton.NewTransitionCurve(string(rune('a'+i)), s, next, automaton.WithPlacement(placement))
		if err != nil {
			return err
		}
		if err := env.AddElement(t); err != nil {
			return err
		}
	}
	loop, err := automaton.NewTransitionCurve("ε", states[0], states[0])
	if err != nil {
		return err
	}
	return env.AddElement(loop)
}

// newBackend builds the backend for f. The built-in backends paint on a
// white background; others come from the registry with their defaults.
func newBackend(f recording.Format) (recording.FileBackend, error) {
	var b recording.Backend
	switch f.Name {
	case "raster":
		b = raster.NewBackend(surface.WithBackground(graphic.White))
	case "svg":
		b = svg.New(svg.WithBackground(graphic.White))
	case "canvasjs":
		b = canvasjs.New(canvasjs.WithTitle("State automaton"))
	default:
		b = f.New()
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		return nil, fmt.Errorf("backend %q cannot write files", f.Name)
	}
	return fb, nil
}

func screenshot(b recording.Backend, path string) error {
	page, ok := b.(*canvasjs.Backend)
	if !ok {
		return errors.New("screenshots need the canvasjs backend")
	}
	html, err := page.Bytes()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	png, err := canvasjs.Screenshot(ctx, html)
	if err != nil {
		return err
	}
	return os.WriteFile(path, png, 0o644)
}
