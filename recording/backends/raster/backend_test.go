// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/stateautomaton/graphic"
	"github.com/gogpu/stateautomaton/recording"
	"github.com/gogpu/stateautomaton/surface"
)

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func TestBackendRegistration(t *testing.T) {
	if _, ok := recording.Lookup("raster"); !ok {
		t.Fatal("raster backend not registered")
	}
	backend, err := recording.NewBackend("raster")
	if err != nil {
		t.Fatalf("failed to create raster backend: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatalf("backend is %T, want *raster.Backend", backend)
	}
	if f, ok := recording.FormatFor("automaton.png"); !ok || f.Name != "raster" {
		t.Errorf("FormatFor(automaton.png) = %q, %v, want raster", f.Name, ok)
	}
}

func TestBackendNotStarted(t *testing.T) {
	b := NewBackend()
	if err := b.End(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("End() = %v, want ErrNotStarted", err)
	}
	if b.Image() != nil {
		t.Error("Image() before Begin should be nil")
	}
	if _, err := b.WriteTo(&bytes.Buffer{}); !errors.Is(err, ErrNotStarted) {
		t.Errorf("WriteTo() = %v, want ErrNotStarted", err)
	}
	// Drawing before Begin is ignored.
	b.ClearRect(recording.Rect{W: 10, H: 10})
	b.FillText(recording.TextRun{Text: "x"})
}

func TestBackendBeginInvalid(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(0, 10); !errors.Is(err, surface.ErrInvalidSize) {
		t.Errorf("Begin(0, 10) = %v, want ErrInvalidSize", err)
	}
}

func TestPlaybackDrawsDiagram(t *testing.T) {
	rec := recording.NewRecorder(200, 120)
	q0 := graphic.MustPoint(50, 60)
	q1 := graphic.MustPoint(150, 60)
	thick := graphic.WithStyle(graphic.NewStyle(graphic.WithLineWidth(3)))
	circle, err := graphic.NewCircle(q0, 20, thick)
	if err != nil {
		t.Fatal(err)
	}
	arrow, err := graphic.NewArrow(q0, q1, thick)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range []graphic.Drawable{circle, arrow} {
		if err := d.Draw(rec); err != nil {
			t.Fatalf("Draw: %v", err)
		}
	}

	b := NewBackend(surface.WithBackground(graphic.White))
	if err := rec.FinishRecording().Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	img := b.Image()
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 120 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}

	// Circle rim left of q0, shaft between the states, background elsewhere.
	if r, _, _, _ := img.At(30, 60).RGBA(); r > 0x8000 {
		t.Errorf("circle rim at (30, 60) = %v, want dark", img.At(30, 60))
	}
	if r, _, _, _ := img.At(100, 60).RGBA(); r > 0x8000 {
		t.Errorf("shaft at (100, 60) = %v, want dark", img.At(100, 60))
	}
	if r, g, b, _ := img.At(100, 10).RGBA(); r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("background at (100, 10) = %v, want white", img.At(100, 10))
	}
}

func TestPlaybackClearRect(t *testing.T) {
	rec := recording.NewRecorder(40, 40)
	rec.BeginPath()
	rec.MoveTo(0, 0)
	rec.LineTo(40, 0)
	rec.LineTo(40, 40)
	rec.LineTo(0, 40)
	rec.ClosePath()
	_ = rec.Fill()
	rec.ClearRect(0, 0, 20, 40)

	b := NewBackend()
	if err := rec.FinishRecording().Playback(b); err != nil {
		t.Fatal(err)
	}
	img := b.Image()
	if alphaAt(img, 10, 20) != 0 {
		t.Error("cleared area still painted")
	}
	if alphaAt(img, 30, 20) == 0 {
		t.Error("filled area lost")
	}
}

func TestBackendOutput(t *testing.T) {
	rec := recording.NewRecorder(32, 16)
	_ = rec.FillText("q0", 2, 2)
	b := NewBackend()
	if err := rec.FinishRecording().Playback(b); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d", n, buf.Len())
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("output is not PNG: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := b.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("saved file: %v, %v", fi, err)
	}
}
