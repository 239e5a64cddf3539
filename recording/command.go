// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import "github.com/gogpu/stateautomaton/graphic"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave         CommandType = iota // Save current state
	CmdRestore                         // Restore previous state
	CmdSetTransform                    // Current transform changed

	// Attribute commands
	CmdSetLineWidth    // Set stroke line width
	CmdSetFillColor    // Set fill color
	CmdSetStrokeColor  // Set stroke color
	CmdSetFont         // Set font shorthand
	CmdSetTextAlign    // Set text alignment
	CmdSetTextBaseline // Set text baseline
	CmdSetDash         // Set dash pattern

	// Paint commands
	CmdStrokePath // Stroke a path
	CmdFillPath   // Fill a path
	CmdFillText   // Fill a text run
	CmdClearRect  // Clear a rectangle to transparent
)

var commandTypeNames = [...]string{
	CmdSave:            "Save",
	CmdRestore:         "Restore",
	CmdSetTransform:    "SetTransform",
	CmdSetLineWidth:    "SetLineWidth",
	CmdSetFillColor:    "SetFillColor",
	CmdSetStrokeColor:  "SetStrokeColor",
	CmdSetFont:         "SetFont",
	CmdSetTextAlign:    "SetTextAlign",
	CmdSetTextBaseline: "SetTextBaseline",
	CmdSetDash:         "SetDash",
	CmdStrokePath:      "StrokePath",
	CmdFillPath:        "FillPath",
	CmdFillText:        "FillText",
	CmdClearRect:       "ClearRect",
}

// String returns the name of the command type.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsPaint reports whether commands of this type produce output.
func (c CommandType) IsPaint() bool {
	return c >= CmdStrokePath && c <= CmdClearRect
}

// Command is implemented by every recorded operation.
type Command interface {
	Type() CommandType
}

// SaveCommand records Context.Save.
type SaveCommand struct{}

// RestoreCommand records Context.Restore.
type RestoreCommand struct{}

// SetTransformCommand records the transform after a Translate or Rotate.
type SetTransformCommand struct {
	Matrix Matrix
}

// SetLineWidthCommand records Context.SetLineWidth.
type SetLineWidthCommand struct {
	Width float64
}

// SetFillColorCommand records Context.SetFillColor.
type SetFillColorCommand struct {
	Color graphic.Color
}

// SetStrokeColorCommand records Context.SetStrokeColor.
type SetStrokeColorCommand struct {
	Color graphic.Color
}

// SetFontCommand records Context.SetFont.
type SetFontCommand struct {
	Font string
}

// SetTextAlignCommand records Context.SetTextAlign.
type SetTextAlignCommand struct {
	Align graphic.TextAlign
}

// SetTextBaselineCommand records Context.SetTextBaseline.
type SetTextBaselineCommand struct {
	Baseline graphic.Baseline
}

// SetDashCommand records Context.SetLineDash. An empty pattern means
// solid lines.
type SetDashCommand struct {
	Pattern []float64
}

// Stroke is the stroke state captured with a StrokePathCommand.
type Stroke struct {
	Width float64
	Color graphic.Color
	Dash  []float64 // empty for solid lines
}

// IsDashed reports whether the stroke has a dash pattern.
func (s Stroke) IsDashed() bool {
	return len(s.Dash) > 0
}

// StrokePathCommand strokes a pooled path.
type StrokePathCommand struct {
	Path   PathRef
	Stroke Stroke
}

// FillPathCommand fills a pooled path with the nonzero rule.
type FillPathCommand struct {
	Path  PathRef
	Color graphic.Color
}

// TextRun is a label with everything needed to place and paint it.
// X and Y are in device space.
type TextRun struct {
	Text     string
	X, Y     float64
	Font     string
	Align    graphic.TextAlign
	Baseline graphic.Baseline
	Color    graphic.Color
}

// FillTextCommand paints a text run.
type FillTextCommand struct {
	TextRun
}

// ClearRectCommand clears a device-space rectangle to transparent.
type ClearRectCommand struct {
	Rect Rect
}

func (SaveCommand) Type() CommandType            { return CmdSave }
func (RestoreCommand) Type() CommandType         { return CmdRestore }
func (SetTransformCommand) Type() CommandType    { return CmdSetTransform }
func (SetLineWidthCommand) Type() CommandType    { return CmdSetLineWidth }
func (SetFillColorCommand) Type() CommandType    { return CmdSetFillColor }
func (SetStrokeColorCommand) Type() CommandType  { return CmdSetStrokeColor }
func (SetFontCommand) Type() CommandType         { return CmdSetFont }
func (SetTextAlignCommand) Type() CommandType    { return CmdSetTextAlign }
func (SetTextBaselineCommand) Type() CommandType { return CmdSetTextBaseline }
func (SetDashCommand) Type() CommandType         { return CmdSetDash }
func (StrokePathCommand) Type() CommandType      { return CmdStrokePath }
func (FillPathCommand) Type() CommandType        { return CmdFillPath }
func (FillTextCommand) Type() CommandType        { return CmdFillText }
func (ClearRectCommand) Type() CommandType       { return CmdClearRect }
