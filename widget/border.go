package widget

import (
	"image/color"

	"github.com/32bitkid/chrome"
	"github.com/32bitkid/chrome/raster"
)

// The edge primitives paint one-pixel-wide beveled frames through a
// raster.RectDrawer, so the same borders compose onto plain buffers and
// onto wraparound (tileable) surfaces. Coordinates are half-open:
// the frame occupies [x0,x1)×[y0,y1).

// drawEdgeBotDom draws a frame whose bottom-right edge dominates the
// corners: upper-left edges in hilt, lower-right edges in dksh.
func drawEdgeBotDom(d raster.RectDrawer, x0, y0, x1, y1 int, hilt, dksh color.Color, edge int) {
	if hilt == nil {
		hilt = dksh
	}
	if dksh == nil {
		dksh = hilt
	}
	switch {
	case x1-x0 < edge*2 && y1-y0 < edge*2:
		d.Rect(x0, y0, x1, y1, dksh)
	case x1-x0 < edge*2:
		d.Rect(x0, y0, x1, y0+edge, hilt)
		d.Rect(x0, y0+edge, x1, y1-edge, hilt)
		d.Rect(x0, y1-edge, x1, y1, dksh)
	case y1-y0 < edge*2:
		d.Rect(x0, y0, x0+edge, y1, dksh)
		d.Rect(x0+edge, y0, x1-edge, y1, hilt)
		d.Rect(x1-edge, y0, x1, y1, dksh)
	default:
		d.Rect(x0, y0, x0+edge, y1-edge, hilt)
		d.Rect(x0+edge, y0, x1-edge, y0+edge, hilt)
		d.Rect(x1-edge, y0, x1, y1, dksh)
		d.Rect(x0, y1-edge, x1-edge, y1, dksh)
	}
}

// drawEdgeTopDom draws a frame whose top-left edge dominates the
// corners, used by 16-bit style pressed buttons.
func drawEdgeTopDom(d raster.RectDrawer, x0, y0, x1, y1 int, hilt, dksh color.Color, edge int) {
	if x1-x0 < edge*2 || y1-y0 < edge*2 {
		drawEdgeBotDom(d, x0, y0, x1, y1, hilt, dksh, edge)
		return
	}
	d.Rect(x0, y0, x0+edge, y1, hilt)
	d.Rect(x0+edge, y0, x1, y0+edge, hilt)
	d.Rect(x1-edge, y0+edge, x1, y1, dksh)
	d.Rect(x0+edge, y1-edge, x1-edge, y1, dksh)
}

// drawRoundEdge is drawEdgeBotDom with the four corner pixels left
// unpainted, for the rounded default-button frame.
func drawRoundEdge(d raster.RectDrawer, x0, y0, x1, y1 int, hilt, dksh color.Color, edge int) {
	if hilt == nil {
		hilt = dksh
	}
	if dksh == nil {
		dksh = hilt
	}
	switch {
	case x1-x0 < edge*2 && y1-y0 < edge*2:
		return
	case x1-x0 < edge*2:
		d.Rect(x0, y0+edge, x1, y1-edge, hilt)
	case y1-y0 < edge*2:
		d.Rect(x0+edge, y0, x1-edge, y1, hilt)
	default:
		d.Rect(x0, y0+edge, x0+edge, y1-edge, hilt)
		d.Rect(x0+edge, y0, x1-edge, y0+edge, hilt)
		d.Rect(x1-edge, y0+edge, x1, y1-edge, dksh)
		d.Rect(x0+edge, y1-edge, x1-edge, y1, dksh)
	}
}

func drawInnerFace(d raster.RectDrawer, x0, y0, x1, y1 int, face color.Color, edge int) {
	if face == nil {
		return
	}
	switch {
	case x1-x0 < edge*2 && y1-y0 < edge*2:
	case x1-x0 < edge*2:
		d.Rect(x0, y0+edge, x1, y1-edge, face)
	case y1-y0 < edge*2:
		d.Rect(x0+edge, y0, x1-edge, y1, face)
	default:
		d.Rect(x0+edge, y0+edge, x1-edge, y1-edge, face)
	}
}

// RaisedOuter and friends draw the outer and inner halves of the
// standard two-pixel bevels. Square edges use the light color outside
// and the highlight inside; "soft" button edges swap that order.
func RaisedOuter(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet) {
	drawEdgeBotDom(d, x0, y0, x1, y1, c.LightHighlight, c.DarkShadow, 1)
}

func RaisedInner(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet) {
	drawEdgeBotDom(d, x0+1, y0+1, x1-1, y1-1, c.Highlight, c.Shadow, 1)
}

func SunkenOuter(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet) {
	drawEdgeBotDom(d, x0, y0, x1, y1, c.Shadow, c.Highlight, 1)
}

func SunkenInner(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet) {
	drawEdgeBotDom(d, x0+1, y0+1, x1-1, y1-1, c.DarkShadow, c.LightHighlight, 1)
}

func raisedOuterButton(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet) {
	drawEdgeBotDom(d, x0, y0, x1, y1, c.Highlight, c.DarkShadow, 1)
}

func raisedInnerButton(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet) {
	drawEdgeBotDom(d, x0+1, y0+1, x1-1, y1-1, c.LightHighlight, c.Shadow, 1)
}

func sunkenOuterButton(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet) {
	drawEdgeBotDom(d, x0, y0, x1, y1, c.DarkShadow, c.Highlight, 1)
}

func sunkenInnerButton(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet) {
	drawEdgeBotDom(d, x0+1, y0+1, x1-1, y1-1, c.Shadow, c.LightHighlight, 1)
}

// ButtonUp draws an unpressed push-button bevel with an optional face
// fill. face may be nil to bevel an already-painted area.
func ButtonUp(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet, face color.Color) {
	raisedOuterButton(d, x0, y0, x1, y1, c)
	raisedInnerButton(d, x0, y0, x1, y1, c)
	drawInnerFace(d, x0+1, y0+1, x1-1, y1-1, face, 1)
}

// ButtonDown draws a pressed push-button bevel.
func ButtonDown(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet, face color.Color) {
	sunkenOuterButton(d, x0, y0, x1, y1, c)
	sunkenInnerButton(d, x0, y0, x1, y1, c)
	drawInnerFace(d, x0+1, y0+1, x1-1, y1-1, face, 1)
}

// DefaultButton draws the window-frame outline of a default button and
// the button bevel inside it. squareFrame selects square corners over
// the rounded frame.
func DefaultButton(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet, face color.Color, pressed, squareFrame bool) {
	if pressed {
		drawEdgeBotDom(d, x0, y0, x1, y1, c.WindowFrame, c.WindowFrame, 1)
		drawEdgeBotDom(d, x0+1, y0+1, x1-1, y1-1, c.Shadow, c.Shadow, 1)
		drawInnerFace(d, x0+2, y0+2, x1-2, y1-2, face, 1)
		return
	}
	ButtonUp(d, x0+1, y0+1, x1-1, y1-1, c, face)
	if squareFrame {
		drawEdgeBotDom(d, x0, y0, x1, y1, c.WindowFrame, c.WindowFrame, 1)
	} else {
		drawRoundEdge(d, x0, y0, x1, y1, c.WindowFrame, c.WindowFrame, 1)
	}
}

// WindowBorder draws the raised border of a top-level window.
func WindowBorder(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet, face color.Color) {
	if face == nil {
		face = c.Face
	}
	RaisedOuter(d, x0, y0, x1, y1, c)
	RaisedInner(d, x0, y0, x1, y1, c)
	drawInnerFace(d, x0+1, y0+1, x1-1, y1-1, face, 1)
}

// FieldBox draws the sunken border of a text field. face defaults to
// the highlight color unpressed and the button face when pressed.
func FieldBox(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet, face color.Color, pressed bool) {
	if face == nil {
		if pressed {
			face = c.Face
		} else {
			face = c.Highlight
		}
	}
	SunkenOuter(d, x0, y0, x1, y1, c)
	SunkenInner(d, x0, y0, x1, y1, c)
	drawInnerFace(d, x0+1, y0+1, x1-1, y1-1, face, 1)
}

// GroupingBox draws the etched outline of a group box.
func GroupingBox(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet, face color.Color) {
	if face == nil {
		face = c.Face
	}
	SunkenOuter(d, x0, y0, x1, y1, c)
	RaisedInner(d, x0, y0, x1, y1, c)
	drawInnerFace(d, x0+1, y0+1, x1-1, y1-1, face, 1)
}

// StatusFieldBox draws the single-pixel sunken outline of a status bar
// field.
func StatusFieldBox(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet, face color.Color) {
	if face == nil {
		face = c.Face
	}
	SunkenOuter(d, x0, y0, x1, y1, c)
	drawInnerFace(d, x0+1, y0+1, x1-1, y1-1, face, 1)
}

// WellBorder draws the deep sunken border of a color well: a sunken
// highlight edge inside a window-text ring.
func WellBorder(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet) {
	mono := chrome.SystemColorSet{
		Highlight: c.Highlight, Shadow: c.Highlight,
		LightHighlight: c.Highlight, DarkShadow: c.Highlight,
	}
	SunkenOuter(d, x0, y0, x1, y1, mono)
	ring := chrome.SystemColorSet{
		Highlight: c.WindowText, Shadow: c.WindowText,
		LightHighlight: c.WindowText, DarkShadow: c.WindowText,
	}
	SunkenInner(d, x0, y0, x1, y1, ring)
	SunkenOuter(d, x0-1, y0-1, x1+1, y1+1, ring)
}

// MonoBorder draws the flat black-and-white border used on monochrome
// displays: a window-frame ring around the client color.
func MonoBorder(d raster.RectDrawer, x0, y0, x1, y1 int, frame, client color.Color) {
	drawEdgeBotDom(d, x0, y0, x1, y1, frame, frame, 1)
	drawEdgeBotDom(d, x0+1, y0+1, x1-1, y1-1, client, client, 1)
	drawInnerFace(d, x0+1, y0+1, x1-1, y1-1, client, 1)
}

// FlatBorder draws a non-beveled border: a shadow ring around the face.
func FlatBorder(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet) {
	drawEdgeBotDom(d, x0, y0, x1, y1, c.Shadow, c.Shadow, 1)
	drawEdgeBotDom(d, x0+1, y0+1, x1-1, y1-1, c.Face, c.Face, 1)
	drawInnerFace(d, x0+1, y0+1, x1-1, y1-1, c.Face, 1)
}

// IndentBorder draws the recessed border of a screen-edge toolbar
// dock: outer sunken rings, a window-frame ring, then inner raised
// rings.
func IndentBorder(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet, outer, inner int) {
	for i := 0; i < outer; i++ {
		drawEdgeBotDom(d, x0, y0, x1, y1, c.Shadow, c.Highlight, 1)
		x0, y0, x1, y1 = x0+1, y0+1, x1-1, y1-1
	}
	drawEdgeBotDom(d, x0, y0, x1, y1, c.WindowFrame, c.WindowFrame, 1)
	x0, y0, x1, y1 = x0+1, y0+1, x1-1, y1-1
	for i := 0; i < inner; i++ {
		drawEdgeBotDom(d, x0, y0, x1, y1, c.Highlight, c.Shadow, 1)
		x0, y0, x1, y1 = x0+1, y0+1, x1-1, y1-1
	}
}

// Button16Up draws a 16-bit-style (single-highlight) button bevel with
// an optional frame color.
func Button16Up(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet, face, frame color.Color, squareFrame bool) {
	edge := 1
	drawEdgeBotDom(d, x0+edge, y0+edge, x1-edge, y1-edge, c.LightHighlight, c.Shadow, 1)
	drawEdgeBotDom(d, x0+edge+1, y0+edge+1, x1-edge-1, y1-edge-1, c.LightHighlight, c.Shadow, 1)
	d.Rect(x0+edge+2, y0+edge+2, x1-edge-2, y1-edge-2, face)
	if frame != nil {
		if squareFrame {
			drawEdgeBotDom(d, x0, y0, x1, y1, frame, frame, 1)
		} else {
			drawRoundEdge(d, x0, y0, x1, y1, frame, frame, 1)
		}
	}
}

// Button16Down draws a pressed 16-bit-style button bevel.
func Button16Down(d raster.RectDrawer, x0, y0, x1, y1 int, c chrome.SystemColorSet, face, frame color.Color, squareFrame bool) {
	edge := 1
	drawEdgeTopDom(d, x0+edge, y0+edge, x1-edge, y1-edge, c.Shadow, face, 1)
	d.Rect(x0+edge+1, y0+edge+1, x1-edge-1, y1-edge-1, face)
	if frame != nil {
		if squareFrame {
			drawEdgeBotDom(d, x0, y0, x1, y1, frame, frame, 1)
		} else {
			drawRoundEdge(d, x0, y0, x1, y1, frame, frame, 1)
		}
	}
}
