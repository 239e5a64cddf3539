// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recording captures diagram drawing as typed commands.
//
// A Recorder implements graphic.Surface. Instead of rasterizing, it turns
// every Stroke, Fill, FillText and ClearRect into a command carrying the
// path (already transformed into device space) and the attribute state in
// effect at that moment. Attribute changes, Save, Restore and transform
// changes are recorded as well, so tests can inspect exactly what a
// primitive did to the context.
//
// A finished Recording is immutable and can be replayed to any Backend:
//
//	rec := recording.NewRecorder(400, 300)
//	env, _ := environment.New(rec)
//	// ... add states and transitions, env.Draw() ...
//	r := rec.FinishRecording()
//
//	b, err := recording.NewBackend("svg")
//	if err != nil {
//		return err
//	}
//	if err := r.Playback(b); err != nil {
//		return err
//	}
//	b.(recording.WriterBackend).WriteTo(os.Stdout)
//
// Backends register themselves by name from their init functions, as
// database/sql drivers do. Import the backend package for its side effect:
//
//	import _ "github.com/gogpu/stateautomaton/recording/backends/svg"
package recording
