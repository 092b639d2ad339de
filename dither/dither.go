// Package dither maps full-color pixel buffers onto constrained palettes,
// scattering the palette's colors to approximate colors outside it.
//
// All operations are pure: they leave the source buffer untouched and
// return a new buffer. Fully transparent cells stay transparent.
// Translucent cells are rejected unless the caller opts into
// 8-bit-per-channel alpha passthrough, since palette-constrained formats
// cannot carry partial opacity.
package dither

import (
	"github.com/32bitkid/chrome"
	"github.com/32bitkid/chrome/palette"
	"github.com/32bitkid/chrome/raster"
)

// Options tune a dithering pass. The zero value selects the luma-weighted
// distance metric and rejects translucent pixels.
type Options struct {
	Metric palette.Metric
	// KeepAlpha permits translucent source pixels and passes their
	// alpha through unchanged, for targets in the 8-bit-per-channel
	// family of formats.
	KeepAlpha bool
}

func getOptions(opts []Options) Options {
	if len(opts) > 0 {
		return opts[0]
	}
	return Options{}
}

func checkAlpha(src *raster.Buffer, o Options) error {
	if o.KeepAlpha {
		return nil
	}
	if src.Translucent() {
		return chrome.FormatUnsupportedError{
			Reason: "translucent pixels in a palette-constrained target",
		}
	}
	return nil
}
