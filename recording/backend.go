// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"image"
	"io"

	"github.com/gogpu/stateautomaton/graphic"
)

// Backend turns a replayed Recording into an output format.
//
// Paint commands carry their complete attribute state and device-space
// geometry, so a Backend needs no state stack of its own. Drawing methods
// do not return errors; a Backend that can fail mid-replay keeps the first
// error and reports it from End.
//
// Backends register a factory from init:
//
//	func init() {
//	    recording.Register(recording.Format{
//	        Name:      "svg",
//	        Extension: "svg",
//	        New:       func() recording.Backend { return New() },
//	    })
//	}
type Backend interface {
	// Begin prepares an output of the given size. It is called once,
	// before any drawing method.
	Begin(width, height int) error

	// End finishes the output. Output methods such as WriteTo are valid
	// only after End returned nil.
	End() error

	StrokePath(path *Path, stroke Stroke)
	FillPath(path *Path, color graphic.Color)
	FillText(run TextRun)
	ClearRect(r Rect)
}

// WriterBackend is a Backend whose output can be streamed.
type WriterBackend interface {
	Backend
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend is a Backend that can write its output to a file.
type FileBackend interface {
	Backend
	SaveToFile(path string) error
}

// ImageBackend is a Backend that produces a raster image.
type ImageBackend interface {
	Backend
	Image() image.Image
}
