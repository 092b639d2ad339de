package codec

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"io"

	"github.com/32bitkid/bitreader"

	"github.com/32bitkid/chrome"
	"github.com/32bitkid/chrome/mask"
	"github.com/32bitkid/chrome/raster"
)

const (
	icoTypeIcon   = 1
	icoTypeCursor = 2
)

type iconDir struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

// iconDirEntry's fifth and sixth fields are color planes and bit depth
// for icons, but the hotspot coordinates for cursors.
type iconDirEntry struct {
	Width    uint8
	Height   uint8
	Colors   uint8
	Reserved uint8
	PlanesX  uint16
	BitsY    uint16
	Size     uint32
	Offset   uint32
}

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// WriteICO writes masks as a Windows icon file: per image, a 24-bpp
// XOR plane followed by a 1-bpp AND plane, both bottom-up.
func WriteICO(w io.Writer, masks []*mask.Mask) error {
	entries := make([]mask.Cursor, len(masks))
	for i, m := range masks {
		entries[i] = mask.Cursor{Mask: *m}
	}
	return writeIconFile(w, icoTypeIcon, entries)
}

// WriteCUR writes cursors as a Windows cursor file. The directory
// carries each cursor's hotspot in place of the icon plane fields.
func WriteCUR(w io.Writer, cursors []mask.Cursor) error {
	return writeIconFile(w, icoTypeCursor, cursors)
}

func writeIconFile(w io.Writer, fileType uint16, entries []mask.Cursor) error {
	if len(entries) == 0 {
		return chrome.FormatUnsupportedError{Reason: "icon file needs at least one image"}
	}

	dir := iconDir{Type: fileType, Count: uint16(len(entries))}
	offset := uint32(6 + 16*len(entries))

	var dirEntries []iconDirEntry
	var bodies [][]byte
	for _, e := range entries {
		width, height := e.Rect.Dx(), e.Rect.Dy()
		if width <= 0 || height <= 0 || width > 256 || height > 256 {
			return chrome.FormatUnsupportedError{Reason: "icon dimensions must be 1..256"}
		}

		body, err := iconImage(&e.Mask)
		if err != nil {
			return err
		}

		de := iconDirEntry{
			Width:  uint8(width % 256),
			Height: uint8(height % 256),
			Size:   uint32(len(body)),
			Offset: offset,
		}
		if fileType == icoTypeCursor {
			de.PlanesX = uint16(e.X)
			de.BitsY = uint16(e.Y)
		} else {
			de.PlanesX = 1
			de.BitsY = 24
		}
		dirEntries = append(dirEntries, de)
		bodies = append(bodies, body)
		offset += uint32(len(body))
	}

	if err := binary.Write(w, binary.LittleEndian, dir); err != nil {
		return err
	}
	for _, de := range dirEntries {
		if err := binary.Write(w, binary.LittleEndian, de); err != nil {
			return err
		}
	}
	for _, body := range bodies {
		if _, err := w.Write(body); err != nil {
			return err
		}
	}
	return nil
}

// iconImage serializes one mask as BITMAPINFOHEADER + XOR + AND. The
// header's height is doubled to cover both planes.
func iconImage(m *mask.Mask) ([]byte, error) {
	width, height := m.Rect.Dx(), m.Rect.Dy()
	xorStride := pad4(width * 3)
	andStride := pad4((width + 7) / 8)

	var buf bytes.Buffer
	hdr := bitmapInfoHeader{
		Size:      40,
		Width:     int32(width),
		Height:    int32(height * 2),
		Planes:    1,
		BitCount:  24,
		SizeImage: uint32((xorStride + andStride) * height),
	}
	if err := binary.Write(&buf, binary.LittleEndian, hdr); err != nil {
		return nil, err
	}

	xorRow := make([]byte, xorStride)
	for y := m.Rect.Max.Y - 1; y >= m.Rect.Min.Y; y-- {
		i := 0
		for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
			c := m.Xor.NRGBAAt(x, y)
			xorRow[i+0] = c.B
			xorRow[i+1] = c.G
			xorRow[i+2] = c.R
			i += 3
		}
		buf.Write(xorRow)
	}

	srcStride := ((width + 31) / 32) * 4
	andRow := make([]byte, andStride)
	for y := height - 1; y >= 0; y-- {
		copy(andRow, m.And[y*srcStride:(y+1)*srcStride])
		buf.Write(andRow)
	}
	return buf.Bytes(), nil
}

// ReadICO parses a Windows icon or cursor file back into masks. Icon
// entries come back with a zero hotspot. Supported pixel depths are 1,
// 4, and 8 bits with a color table, and 24 and 32 bits direct color.
func ReadICO(r io.Reader) ([]mask.Cursor, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	br := bytes.NewReader(raw)

	var dir iconDir
	if err := binary.Read(br, binary.LittleEndian, &dir); err != nil {
		return nil, err
	}
	if dir.Reserved != 0 || (dir.Type != icoTypeIcon && dir.Type != icoTypeCursor) {
		return nil, chrome.FormatUnsupportedError{Reason: "not an icon or cursor file"}
	}

	out := make([]mask.Cursor, 0, dir.Count)
	for i := 0; i < int(dir.Count); i++ {
		var de iconDirEntry
		if err := binary.Read(br, binary.LittleEndian, &de); err != nil {
			return nil, err
		}
		if int(de.Offset)+int(de.Size) > len(raw) {
			return nil, chrome.FormatUnsupportedError{Reason: "icon image lies outside the file"}
		}
		m, err := parseIconImage(raw[de.Offset : de.Offset+de.Size])
		if err != nil {
			return nil, err
		}
		c := mask.Cursor{Mask: *m}
		if dir.Type == icoTypeCursor {
			c.Point = mask.Point{X: int16(de.PlanesX), Y: int16(de.BitsY)}
		}
		out = append(out, c)
	}
	return out, nil
}

func parseIconImage(raw []byte) (*mask.Mask, error) {
	br := bytes.NewReader(raw)
	var hdr bitmapInfoHeader
	if err := binary.Read(br, binary.LittleEndian, &hdr); err != nil {
		return nil, err
	}
	if hdr.Size != 40 || hdr.Compression != 0 {
		return nil, chrome.FormatUnsupportedError{Reason: "icon image is not an uncompressed DIB"}
	}
	width := int(hdr.Width)
	height := int(hdr.Height) / 2
	if width <= 0 || height <= 0 {
		return nil, chrome.FormatUnsupportedError{Reason: "icon image has degenerate dimensions"}
	}

	var table []color.NRGBA
	if hdr.BitCount <= 8 {
		n := int(hdr.ClrUsed)
		if n == 0 {
			n = 1 << hdr.BitCount
		}
		table = make([]color.NRGBA, n)
		rgbq := make([]byte, 4)
		for i := range table {
			if _, err := io.ReadFull(br, rgbq); err != nil {
				return nil, err
			}
			table[i] = color.NRGBA{R: rgbq[2], G: rgbq[1], B: rgbq[0], A: 0xff}
		}
	}

	xor := raster.New(width, height)
	if err := parseXorPlane(br, xor, int(hdr.BitCount), table); err != nil {
		return nil, err
	}

	andStride := pad4((width + 7) / 8)
	dstStride := ((width + 31) / 32) * 4
	and := make([]byte, dstStride*height)
	row := make([]byte, andStride)
	for y := height - 1; y >= 0; y-- {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, err
		}
		copy(and[y*dstStride:(y+1)*dstStride], row)
	}

	return &mask.Mask{
		Rect: image.Rect(0, 0, width, height),
		And:  and,
		Xor:  xor,
	}, nil
}

// parseXorPlane fills dst from bottom-up rows of the given bit depth.
// Paletted depths read most-significant bits first within each byte.
func parseXorPlane(r io.Reader, dst *raster.Buffer, bitCount int, table []color.NRGBA) error {
	width, height := dst.Rect.Dx(), dst.Rect.Dy()
	stride := pad4((width*bitCount + 7) / 8)
	row := make([]byte, stride)
	for y := height - 1; y >= 0; y-- {
		if _, err := io.ReadFull(r, row); err != nil {
			return err
		}
		switch bitCount {
		case 1, 4, 8:
			bits := bitreader.NewReader(bytes.NewReader(row))
			for x := 0; x < width; x++ {
				i, err := bits.Read8(uint(bitCount))
				if err != nil {
					return err
				}
				if int(i) >= len(table) {
					return chrome.FormatUnsupportedError{Reason: "pixel index outside the color table"}
				}
				dst.SetNRGBA(x, y, table[i])
			}
		case 24:
			for x := 0; x < width; x++ {
				dst.SetNRGBA(x, y, color.NRGBA{R: row[x*3+2], G: row[x*3+1], B: row[x*3], A: 0xff})
			}
		case 32:
			for x := 0; x < width; x++ {
				dst.SetNRGBA(x, y, color.NRGBA{R: row[x*4+2], G: row[x*4+1], B: row[x*4], A: 0xff})
			}
		default:
			return chrome.FormatUnsupportedError{Reason: "unsupported icon bit depth"}
		}
	}
	return nil
}

func pad4(n int) int {
	return ((n + 3) / 4) * 4
}
