package codec

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRLE8RoundTrip(t *testing.T) {
	rows := [][]byte{
		{5, 5, 5, 5, 1, 2, 3},
		{0, 0, 0, 0, 0, 0, 0},
		{9, 8, 9, 8, 9, 8, 9},
	}

	got, err := rle8Decode(rle8Encode(rows), 7, 3)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(rows, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRLE8EncodeUsesRuns(t *testing.T) {
	rows := [][]byte{bytes.Repeat([]byte{7}, 64)}

	data := rle8Encode(rows)
	// One run plus the end-of-bitmap marker.
	want := []byte{64, 7, 0, 1}
	if !bytes.Equal(data, want) {
		t.Errorf("encoded as % x, want % x", data, want)
	}
}

func TestRLE8DecodeDelta(t *testing.T) {
	// Skip two cells right and one row down, then a run of three.
	data := []byte{0, 2, 2, 1, 3, 6, 0, 1}

	rows, err := rle8Decode(data, 5, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]byte{
		{0, 0, 0, 0, 0},
		{0, 0, 6, 6, 6},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("delta decode mismatch (-want +got):\n%s", diff)
	}
}

func TestRLE8DecodeTruncated(t *testing.T) {
	if _, err := rle8Decode([]byte{12}, 4, 4); err == nil {
		t.Error("expected error for truncated stream")
	}
}

func testPaletted(w, h int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, w, h), color.Palette{
		color.NRGBA{0x00, 0x00, 0x00, 0xff},
		color.NRGBA{0xff, 0xff, 0xff, 0xff},
		color.NRGBA{0xc0, 0xc0, 0xc0, 0xff},
	})
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetColorIndex(x, y, uint8((x/3+y)%3))
		}
	}
	return img
}

func TestWriteBMP8Header(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBMP8(&buf, testPaletted(4, 2), false); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	if string(data[:2]) != "BM" {
		t.Fatalf("bad signature: % x", data[:2])
	}

	offset := binary.LittleEndian.Uint32(data[10:])
	if want := uint32(14 + 40 + 3*4); offset != want {
		t.Errorf("pixel offset = %d, want %d", offset, want)
	}
	if size := binary.LittleEndian.Uint32(data[2:]); int(size) != len(data) {
		t.Errorf("file size field = %d, want %d", size, len(data))
	}
	if bpp := binary.LittleEndian.Uint16(data[28:]); bpp != 8 {
		t.Errorf("bit count = %d, want 8", bpp)
	}
	if comp := binary.LittleEndian.Uint32(data[30:]); comp != 0 {
		t.Errorf("compression = %d, want 0", comp)
	}

	// Rows are stored bottom-up and padded to 32 bits.
	if got := len(data) - int(offset); got != 8 {
		t.Errorf("pixel data is %d bytes, want 8", got)
	}
}

func TestWriteBMP8Compressed(t *testing.T) {
	img := testPaletted(16, 4)

	var buf bytes.Buffer
	if err := WriteBMP8(&buf, img, true); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	if comp := binary.LittleEndian.Uint32(data[30:]); comp != biRLE8 {
		t.Errorf("compression = %d, want %d", comp, biRLE8)
	}

	offset := binary.LittleEndian.Uint32(data[10:])
	rows, err := rle8Decode(data[offset:], 16, 4)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(bottomUpRows(img), rows); diff != "" {
		t.Errorf("pixel mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteBMP8RejectsEmptyPalette(t *testing.T) {
	img := &image.Paletted{
		Pix:    make([]byte, 1),
		Stride: 1,
		Rect:   image.Rect(0, 0, 1, 1),
	}
	if err := WriteBMP8(&bytes.Buffer{}, img, false); err == nil {
		t.Error("expected error for empty palette")
	}
}
