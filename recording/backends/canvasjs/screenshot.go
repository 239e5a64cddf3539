// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvasjs

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/chromedp/chromedp"

	"github.com/gogpu/stateautomaton/graphic"
)

// ErrEmptyScreenshot is returned when Chrome produced no image data.
var ErrEmptyScreenshot = errors.New("canvasjs: empty screenshot")

// Screenshot loads page in headless Chrome and returns the canvas element
// as PNG. It needs a Chrome or Chromium binary; opts are appended to the
// chromedp defaults, for example chromedp.ExecPath or chromedp.NoSandbox.
func Screenshot(ctx context.Context, page []byte, opts ...chromedp.ExecAllocatorOption) ([]byte, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)
	allocOpts = append(allocOpts, opts...)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	dataURI := "data:text/html;base64," + base64.StdEncoding.EncodeToString(page)
	selector := "#" + CanvasID
	var buf []byte
	graphic.Logger().Debug("canvasjs: rendering page in chrome", "bytes", len(page))
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Screenshot(selector, &buf, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("canvasjs: chrome: %w", err)
	}
	if len(buf) == 0 {
		return nil, ErrEmptyScreenshot
	}
	return buf, nil
}
