package widget

import (
	"image"

	"github.com/32bitkid/chrome"
	"github.com/32bitkid/chrome/raster"
)

// Options configure the caller-selectable appearance choices.
type Options struct {
	// Face selects the mixed-value and latched option-set face
	// rendering.
	Face FaceStyle
	// Unavailable selects the grayed-label rendering.
	Unavailable UnavailableStyle
	// SquareFrame selects a square default-button frame over the
	// rounded one.
	SquareFrame bool
	// Margin is the face border around the label, in pixels.
	// Zero means the default of 4.
	Margin int
}

func (o Options) margin() int {
	if o.Margin > 0 {
		return o.Margin
	}
	return 4
}

func getOptions(opts []Options) Options {
	if len(opts) > 0 {
		return opts[0]
	}
	return Options{}
}

// Compose produces the face-and-label appearance for a widget state:
// a face-colored canvas with the state-transformed label layered over
// it. The label buffer is read-only input; derived buffers are built
// instead of mutating it. State only affects the label transformation
// and the face treatment; borders are drawn separately (see Render) so
// that the pressed state is exactly the unpressed state with the label
// translated by (+1,+1).
func Compose(label *raster.Buffer, colors chrome.SystemColorSet, kind Kind, state State, opts ...Options) (*raster.Buffer, error) {
	if err := checkLabel(label); err != nil {
		return nil, err
	}
	if err := checkState(kind, state); err != nil {
		return nil, err
	}
	o := getOptions(opts)
	m := o.margin()

	canvas := raster.NewRect(label.Rect.Inset(-m))
	canvas.Fill(canvas.Rect, colors.Face)

	// Option-set buttons reuse the pressed visual as their unpressed
	// baseline, with the mixed face marking the latched state.
	pressed := state == Pressed || (kind == OptionSet && state != Unavailable)
	if state == Mixed || (kind == OptionSet && state != Unavailable) {
		MixedFill(canvas, canvas.Rect, colors.Face, colors.Highlight, o.Face)
	}

	layer := label
	switch state {
	case Mixed:
		layer = Monochrome(label, colors.Shadow)
	case Unavailable:
		switch o.Unavailable {
		case UnavailableFaded:
			layer = Faded(label)
		case UnavailableChecker:
			layer = CheckerMasked(label)
		default:
			layer = Embossed(label, colors.Highlight, colors.Shadow)
		}
	}
	if pressed {
		layer = layer.Translate(1, 1)
	}
	canvas.DrawOver(layer)
	return canvas, nil
}

// Render draws the full control: the kind- and state-appropriate border
// around the composed face and label. The output is deterministic; the
// same inputs always yield byte-identical buffers.
func Render(label *raster.Buffer, colors chrome.SystemColorSet, kind Kind, state State, opts ...Options) (*raster.Buffer, error) {
	dst, err := Compose(label, colors, kind, state, opts...)
	if err != nil {
		return nil, err
	}
	o := getOptions(opts)

	d := dst.Draw()
	r := dst.Rect
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y
	pressed := state == Pressed || (kind == OptionSet && state != Unavailable)

	switch kind {
	case Normal, Slider:
		if pressed && kind != Slider {
			ButtonDown(d, x0, y0, x1, y1, colors, nil)
		} else {
			ButtonUp(d, x0, y0, x1, y1, colors, nil)
		}
	case Default:
		DefaultButton(d, x0, y0, x1, y1, colors, nil, pressed, o.SquareFrame)
	case Toolbar, OptionSet:
		// Toolbar buttons are flat until hovered.
		switch {
		case pressed:
			drawEdgeBotDom(d, x0, y0, x1, y1, colors.Shadow, colors.Highlight, 1)
		case state == Hover:
			drawEdgeBotDom(d, x0, y0, x1, y1, colors.Highlight, colors.Shadow, 1)
		}
	case Checkbox, Radio:
		SunkenOuter(d, x0, y0, x1, y1, colors)
		SunkenInner(d, x0, y0, x1, y1, colors)
	}
	return dst, nil
}

func checkLabel(label *raster.Buffer) error {
	if label == nil || label.NRGBA == nil {
		return chrome.InvalidLabelError{Reason: "nil buffer"}
	}
	if label.Rect.Dx() <= 0 || label.Rect.Dy() <= 0 {
		return chrome.InvalidLabelError{Reason: "zero width or height"}
	}
	if len(label.Pix) < label.Rect.Dy()*label.Stride {
		return chrome.InvalidLabelError{Reason: "short pixel data"}
	}
	return nil
}

// Bounds reports the output bounds Compose will produce for a label,
// before any compositing happens.
func Bounds(label *raster.Buffer, opts ...Options) image.Rectangle {
	return label.Rect.Inset(-getOptions(opts).margin())
}
