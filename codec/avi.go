package codec

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/32bitkid/chrome"
	"github.com/32bitkid/chrome/raster"
)

// DefaultFPS is the frame rate used when the caller passes a
// non-positive one. Twenty frames per second is adequate for fluid
// animation of small desktop assets.
const DefaultFPS = 20

type aviMainHeader struct {
	MicroSecPerFrame    uint32
	MaxBytesPerSec      uint32
	PaddingGranularity  uint32
	Flags               uint32
	TotalFrames         uint32
	InitialFrames       uint32
	Streams             uint32
	SuggestedBufferSize uint32
	Width               uint32
	Height              uint32
	Reserved            [4]uint32
}

type aviStreamHeader struct {
	Type                [4]byte
	Handler             [4]byte
	Flags               uint32
	Priority            uint16
	Language            uint16
	InitialFrames       uint32
	Scale               uint32
	Rate                uint32
	Start               uint32
	Length              uint32
	SuggestedBufferSize uint32
	Quality             uint32
	SampleSize          uint32
	Frame               [4]int16
}

type aviIndexEntry struct {
	ChunkID [4]byte
	Flags   uint32
	Offset  uint32
	Size    uint32
}

const aviKeyframe = 0x10

// WriteAVI writes frames as an uncompressed AVI: one RIFF video stream
// of bottom-up 24-bpp DIB frames plus an idx1 index. All frames must
// share the dimensions of the first. A non-positive fps falls back to
// DefaultFPS.
func WriteAVI(w io.Writer, frames []*raster.Buffer, fps int) error {
	if len(frames) == 0 {
		return chrome.FormatUnsupportedError{Reason: "animation needs at least one frame"}
	}
	if fps <= 0 {
		fps = DefaultFPS
	}

	width := frames[0].Rect.Dx()
	height := frames[0].Rect.Dy()
	if width <= 0 || height <= 0 || width > 0x7fff || height > 0x7fff {
		return chrome.FormatUnsupportedError{Reason: "frame dimensions must be 1..32767"}
	}
	for _, f := range frames[1:] {
		if f.Rect.Dx() != width || f.Rect.Dy() != height {
			return chrome.FormatUnsupportedError{Reason: "frames must share one size"}
		}
	}

	stride := pad4(width * 3)
	frameSize := stride * height

	var hdrl bytes.Buffer
	writeChunk(&hdrl, "avih", aviMainHeader{
		MicroSecPerFrame:    uint32(1000000 / fps),
		MaxBytesPerSec:      uint32(width*height*4*fps + 256),
		Flags:               0x010010, // AVIF_HASINDEX | AVIF_WASCAPTUREFILE
		TotalFrames:         uint32(len(frames)),
		Streams:             1,
		SuggestedBufferSize: uint32(frameSize + 16),
		Width:               uint32(width),
		Height:              uint32(height),
	})

	var strl bytes.Buffer
	writeChunk(&strl, "strh", aviStreamHeader{
		Type:                [4]byte{'v', 'i', 'd', 's'},
		Handler:             [4]byte{'D', 'I', 'B', ' '},
		Scale:               1,
		Rate:                uint32(fps),
		Length:              uint32(len(frames)),
		SuggestedBufferSize: uint32(frameSize + 16),
		Quality:             0xffffffff,
		Frame:               [4]int16{0, 0, int16(width), int16(height)},
	})
	writeChunk(&strl, "strf", bitmapInfoHeader{
		Size:     40,
		Width:    int32(width),
		Height:   int32(height),
		Planes:   1,
		BitCount: 24,
	})
	writeList(&hdrl, "strl", strl.Bytes())

	var riff bytes.Buffer
	writeList(&riff, "hdrl", hdrl.Bytes())

	var movi bytes.Buffer
	var index []aviIndexEntry
	row := make([]byte, stride)
	for _, f := range frames {
		index = append(index, aviIndexEntry{
			ChunkID: [4]byte{'0', '0', 'd', 'b'},
			Flags:   aviKeyframe,
			Offset:  uint32(4 + movi.Len()),
			Size:    uint32(frameSize),
		})
		movi.WriteString("00db")
		binary.Write(&movi, binary.LittleEndian, uint32(frameSize))
		for y := f.Rect.Max.Y - 1; y >= f.Rect.Min.Y; y-- {
			i := 0
			for x := f.Rect.Min.X; x < f.Rect.Max.X; x++ {
				c := f.NRGBAAt(x, y)
				row[i+0] = c.B
				row[i+1] = c.G
				row[i+2] = c.R
				i += 3
			}
			movi.Write(row)
		}
	}
	writeList(&riff, "movi", movi.Bytes())

	var idx bytes.Buffer
	for _, e := range index {
		binary.Write(&idx, binary.LittleEndian, e)
	}
	writeChunkBytes(&riff, "idx1", idx.Bytes())

	if _, err := io.WriteString(w, "RIFF"); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(4+riff.Len())); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "AVI "); err != nil {
		return err
	}
	_, err := w.Write(riff.Bytes())
	return err
}

func writeChunk(buf *bytes.Buffer, id string, v interface{}) {
	var body bytes.Buffer
	binary.Write(&body, binary.LittleEndian, v)
	writeChunkBytes(buf, id, body.Bytes())
}

func writeChunkBytes(buf *bytes.Buffer, id string, body []byte) {
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, uint32(len(body)))
	buf.Write(body)
	if len(body)%2 != 0 {
		buf.WriteByte(0)
	}
}

func writeList(buf *bytes.Buffer, kind string, body []byte) {
	buf.WriteString("LIST")
	binary.Write(buf, binary.LittleEndian, uint32(4+len(body)))
	buf.WriteString(kind)
	buf.Write(body)
}
