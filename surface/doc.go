// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides Canvas, a pixel-backed graphic.Surface.
//
// Canvas follows the HTML canvas 2D context: a current path that survives
// Stroke and Fill, a Save/Restore state stack covering colors, line width,
// dash, font, text anchoring and the transform, and points transformed as
// they are added to the path. Rasterization, stroking and glyph rendering
// are done by gg's software renderer.
//
//	c, err := surface.NewCanvas(400, 300, surface.WithBackground(graphic.White))
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	env, _ := environment.New(c, environment.WithGrid(2, 3))
//	// ... add states and transitions ...
//	if err := env.Draw(); err != nil {
//		return err
//	}
//	return c.SavePNG("automaton.png")
//
// Text is set in Go Regular unless WithFontSource supplies another face.
// Glyphs follow the translation of the transform but are not rotated.
package surface
