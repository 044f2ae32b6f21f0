package icon

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// Windows ICO layout: https://en.wikipedia.org/wiki/ICO_(file_format)
const (
	icoHeaderSize = 6
	icoEntrySize  = 16
	icoTypeIcon   = 1
	icoBitCount   = 32
)

// ICOHeader is the 6 byte ICONDIR.
type ICOHeader struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

// ICOEntry is one 16 byte ICONDIRENTRY. Width and Height of 0 mean 256.
type ICOEntry struct {
	Width    uint8
	Height   uint8
	Colors   uint8
	Reserved uint8
	Planes   uint16
	BitCount uint16
	Size     uint32
	Offset   uint32
}

// Dim returns the entry dimensions with the 0→256 wrap undone.
func (e ICOEntry) Dim() (w, h int) {
	w, h = int(e.Width), int(e.Height)
	if w == 0 {
		w = 256
	}
	if h == 0 {
		h = 256
	}
	return
}

// ICOFile is a parsed ICO container.
type ICOFile struct {
	Header   ICOHeader
	Entries  []ICOEntry
	Payloads [][]byte
}

// EncodeICO writes the header, the directory and then every payload in the
// same order.
func EncodeICO(w io.Writer, payloads []*Payload) error {
	if len(payloads) > math.MaxUint16 {
		return errors.Errorf("too many images for one ico: %d", len(payloads))
	}

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, ICOHeader{Type: icoTypeIcon, Count: uint16(len(payloads))})

	offset := uint32(icoHeaderSize + len(payloads)*icoEntrySize)
	for _, p := range payloads {
		// uint8 conversion turns 256 into 0, as the format expects.
		binary.Write(&buf, binary.LittleEndian, ICOEntry{
			Width:    uint8(p.Width),
			Height:   uint8(p.Height),
			BitCount: icoBitCount,
			Size:     uint32(len(p.Data)),
			Offset:   offset,
		})
		offset += uint32(len(p.Data))
	}

	for _, p := range payloads {
		buf.Write(p.Data)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// ParseICO reads an ICO container. Payloads must follow the directory in
// directory order without overlapping, which is how EncodeICO lays them out.
func ParseICO(data []byte) (*ICOFile, error) {
	if len(data) < icoHeaderSize {
		return nil, errors.Wrap(ErrMalformedICO, "too short for header")
	}
	var f ICOFile
	r := bytes.NewReader(data)
	binary.Read(r, binary.LittleEndian, &f.Header)
	if f.Header.Reserved != 0 {
		return nil, errors.Wrapf(ErrMalformedICO, "reserved field is %d", f.Header.Reserved)
	}
	if f.Header.Type != icoTypeIcon {
		return nil, errors.Wrapf(ErrMalformedICO, "type is %d", f.Header.Type)
	}

	dirEnd := icoHeaderSize + int(f.Header.Count)*icoEntrySize
	if len(data) < dirEnd {
		return nil, errors.Wrap(ErrMalformedICO, "too short for directory")
	}
	f.Entries = make([]ICOEntry, f.Header.Count)
	binary.Read(r, binary.LittleEndian, f.Entries)

	end := uint64(dirEnd)
	for i, e := range f.Entries {
		start, stop := uint64(e.Offset), uint64(e.Offset)+uint64(e.Size)
		if start < end || stop > uint64(len(data)) {
			return nil, errors.Wrapf(ErrMalformedICO, "entry %d spans [%d,%d) of %d bytes", i, start, stop, len(data))
		}
		f.Payloads = append(f.Payloads, data[start:stop])
		end = stop
	}
	return &f, nil
}

// PackageWindows writes one ICO file containing a PNG for every size, in
// request order.
func PackageWindows(r *Resolver, sizes []int, outPath string) ([]Artifact, error) {
	payloads := make([]*Payload, 0, len(sizes))
	for _, size := range sizes {
		p, err := r.ResolvePNG(size)
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, p)
	}

	var buf bytes.Buffer
	if err := EncodeICO(&buf, payloads); err != nil {
		return nil, err
	}
	a, err := writeArtifact(outPath, buf.Bytes())
	if err != nil {
		return nil, err
	}
	return []Artifact{a}, nil
}
