package chrome

import "fmt"

// InvalidPaletteError reports a palette that cannot be used for
// quantization: it is empty or contains duplicate entries.
type InvalidPaletteError struct {
	Reason string
}

func (e InvalidPaletteError) Error() string {
	return fmt.Sprintf("invalid palette: %s", e.Reason)
}

// InvalidLabelError reports a zero-area or malformed label buffer.
type InvalidLabelError struct {
	Reason string
}

func (e InvalidLabelError) Error() string {
	return fmt.Sprintf("invalid label: %s", e.Reason)
}

// UnsupportedStateError reports a widget kind/state combination that has
// no defined rendering. It is returned rather than silently degrading.
type UnsupportedStateError struct {
	Kind  string
	State string
}

func (e UnsupportedStateError) Error() string {
	return fmt.Sprintf("unsupported widget state: %s/%s", e.Kind, e.State)
}

// FormatUnsupportedError reports a pixel that the requested format cannot
// carry, such as a translucent pixel in a mask-only or palette-only format.
type FormatUnsupportedError struct {
	Reason string
}

func (e FormatUnsupportedError) Error() string {
	return fmt.Sprintf("format unsupported: %s", e.Reason)
}
