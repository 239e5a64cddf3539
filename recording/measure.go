// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/stateautomaton/graphic"
)

// Text is measured with Go Regular, the face the raster output uses too,
// so layout decisions made against a Recorder hold on replay.
var (
	measureOnce sync.Once
	measureFont *opentype.Font
	measureErr  error

	facesMu sync.Mutex
	faces   = map[float64]font.Face{}
)

func measureFace(size float64) (font.Face, error) {
	measureOnce.Do(func() {
		measureFont, measureErr = opentype.Parse(goregular.TTF)
	})
	if measureErr != nil {
		return nil, measureErr
	}

	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(measureFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // one point per pixel
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	faces[size] = f
	return f, nil
}

// measureText returns the advance width of s in the given CSS font. An
// unparsable font falls back to the default size.
func measureText(fontSpec, s string) float64 {
	spec, err := graphic.ParseFont(fontSpec)
	if err != nil {
		spec, _ = graphic.ParseFont(graphic.DefaultFont)
	}
	face, err := measureFace(spec.Size)
	if err != nil {
		graphic.Logger().Warn("recording: cannot load measuring font", "err", err)
		return 0
	}
	return float64(font.MeasureString(face, s)) / 64
}
