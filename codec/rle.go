package codec

import (
	"bytes"
	"encoding/binary"
	"image"
	"io"

	"github.com/32bitkid/chrome"
)

// biRLE8 is the BITMAPINFOHEADER compression mode for run-length
// encoded 8-bpp bitmaps.
const biRLE8 = 1

// WriteBMP8 writes img as an 8-bpp paletted Windows bitmap. With
// compress set the pixel data is run-length encoded (BI_RLE8);
// otherwise rows are stored raw, bottom-up, padded to 32 bits.
func WriteBMP8(w io.Writer, img *image.Paletted, compress bool) error {
	if len(img.Palette) == 0 || len(img.Palette) > 256 {
		return chrome.InvalidPaletteError{Reason: "8-bpp bitmap needs 1 to 256 colors"}
	}
	width := img.Rect.Dx()
	height := img.Rect.Dy()
	if width <= 0 || height <= 0 {
		return chrome.FormatUnsupportedError{Reason: "bitmap must have positive dimensions"}
	}

	rows := bottomUpRows(img)

	var data []byte
	compression := uint32(0)
	if compress {
		data = rle8Encode(rows)
		compression = biRLE8
	} else {
		stride := pad4(width)
		data = make([]byte, 0, stride*height)
		for _, row := range rows {
			data = append(data, row...)
			data = append(data, make([]byte, stride-width)...)
		}
	}

	var table bytes.Buffer
	for _, c := range img.Palette {
		r, g, b, _ := c.RGBA()
		table.Write([]byte{uint8(b >> 8), uint8(g >> 8), uint8(r >> 8), 0})
	}

	offset := 14 + 40 + table.Len()
	var hdr bytes.Buffer
	hdr.Write([]byte{'B', 'M'})
	binary.Write(&hdr, binary.LittleEndian, uint32(offset+len(data)))
	binary.Write(&hdr, binary.LittleEndian, uint32(0))
	binary.Write(&hdr, binary.LittleEndian, uint32(offset))
	binary.Write(&hdr, binary.LittleEndian, bitmapInfoHeader{
		Size:        40,
		Width:       int32(width),
		Height:      int32(height),
		Planes:      1,
		BitCount:    8,
		Compression: compression,
		SizeImage:   uint32(len(data)),
		ClrUsed:     uint32(len(img.Palette)),
	})

	if _, err := w.Write(hdr.Bytes()); err != nil {
		return err
	}
	if _, err := w.Write(table.Bytes()); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// bottomUpRows returns the index rows of img in bitmap storage order,
// last scanline first.
func bottomUpRows(img *image.Paletted) [][]byte {
	width := img.Rect.Dx()
	rows := make([][]byte, 0, img.Rect.Dy())
	for y := img.Rect.Max.Y - 1; y >= img.Rect.Min.Y; y-- {
		i := img.PixOffset(img.Rect.Min.X, y)
		rows = append(rows, img.Pix[i:i+width])
	}
	return rows
}

// rle8Encode run-length encodes bottom-up index rows. Repeats of three
// or more become encoded-mode runs, longer mixed stretches use absolute
// mode, each row ends with an end-of-line marker and the stream with an
// end-of-bitmap marker.
func rle8Encode(rows [][]byte) []byte {
	var buf bytes.Buffer
	for n, row := range rows {
		if n > 0 {
			buf.Write([]byte{0, 0})
		}
		rle8EncodeRow(&buf, row)
	}
	buf.Write([]byte{0, 1})
	return buf.Bytes()
}

func rle8EncodeRow(buf *bytes.Buffer, row []byte) {
	for i := 0; i < len(row); {
		run := 1
		for i+run < len(row) && row[i+run] == row[i] && run < 255 {
			run++
		}
		if run >= 3 {
			buf.Write([]byte{byte(run), row[i]})
			i += run
			continue
		}

		// Mixed stretch: extend until the next run of three starts.
		j := i
		for j < len(row) && j-i <= 253 {
			r := 1
			for j+r < len(row) && row[j+r] == row[j] && r < 3 {
				r++
			}
			if r >= 3 {
				break
			}
			j += r
		}

		if n := j - i; n >= 3 {
			buf.Write([]byte{0, byte(n)})
			buf.Write(row[i:j])
			if n&1 == 1 {
				buf.WriteByte(0)
			}
		} else {
			for k := i; k < j; {
				r := 1
				if k+1 < j && row[k+1] == row[k] {
					r = 2
				}
				buf.Write([]byte{byte(r), row[k]})
				k += r
			}
		}
		i = j
	}
}

// rle8Decode expands an RLE8 stream into width-byte rows in bitmap
// storage order. Delta escapes skip over cells, leaving index zero
// behind.
func rle8Decode(data []byte, width, height int) ([][]byte, error) {
	rows := make([][]byte, height)
	for i := range rows {
		rows[i] = make([]byte, width)
	}

	truncated := chrome.FormatUnsupportedError{Reason: "run-length stream is truncated"}

	x, y := 0, 0
	for i := 0; y < height; {
		if i+2 > len(data) {
			return nil, truncated
		}
		count, value := data[i], data[i+1]
		i += 2
		switch {
		case count > 0: // encoded mode
			for k := 0; k < int(count) && x < width; k++ {
				rows[y][x] = value
				x++
			}
		case value == 0: // end of line
			x, y = 0, y+1
		case value == 1: // end of bitmap
			return rows, nil
		case value == 2: // delta
			if i+2 > len(data) {
				return nil, truncated
			}
			x += int(data[i])
			y += int(data[i+1])
			i += 2
		default: // absolute mode, padded to a word boundary
			run := int(value)
			if i+run+run&1 > len(data) {
				return nil, truncated
			}
			for k := 0; k < run && x < width; k++ {
				rows[y][x] = data[i+k]
				x++
			}
			i += run + run&1
		}
	}
	return rows, nil
}
