package icon

import (
	"encoding/json"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ContentsName is the descriptor file name inside an iconset.
const ContentsName = "Contents.json"

// ContentsEntry is one object of the "images" array of an iconset
// descriptor. Size and Scale are 0 when missing or unparsable.
type ContentsEntry struct {
	Filename string
	Size     float64
	Scale    float64
}

// Complete reports whether the entry names a file to produce.
func (e ContentsEntry) Complete() bool {
	return e.Filename != "" && e.Size != 0 && e.Scale != 0
}

// Pixels is the output edge length, round(size × scale).
func (e ContentsEntry) Pixels() int {
	return int(math.Round(e.Size * e.Scale))
}

// ScanContents streams the "images" array of a descriptor and calls fn for
// every object in file order, complete or not. Other top level keys are
// skipped. An error from fn stops the scan and is returned as is.
func ScanContents(r io.Reader, fn func(ContentsEntry) error) error {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	found := false
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errors.Wrap(ErrMalformedContents, err.Error())
		}
		if key, _ := tok.(string); key != "images" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return errors.Wrap(ErrMalformedContents, err.Error())
			}
			continue
		}
		found = true
		if err := expectDelim(dec, '['); err != nil {
			return err
		}
		for dec.More() {
			var obj map[string]any
			if err := dec.Decode(&obj); err != nil {
				return errors.Wrap(ErrMalformedContents, err.Error())
			}
			if err := fn(parseContentsEntry(obj)); err != nil {
				return err
			}
		}
		if err := expectDelim(dec, ']'); err != nil {
			return err
		}
	}
	if !found {
		return errors.Wrap(ErrMalformedContents, `no "images" array`)
	}
	return nil
}

// ReadContents returns the complete entries of the descriptor at path.
func ReadContents(path string) ([]ContentsEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	var entries []ContentsEntry
	err = ScanContents(f, func(e ContentsEntry) error {
		if e.Complete() {
			entries = append(entries, e)
		}
		return nil
	})
	return entries, err
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(ErrMalformedContents, err.Error())
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return errors.Wrapf(ErrMalformedContents, "expected %q, got %v", want, tok)
	}
	return nil
}

func parseContentsEntry(obj map[string]any) ContentsEntry {
	var e ContentsEntry
	e.Filename, _ = obj["filename"].(string)
	e.Size = parseDimension(obj["size"])
	e.Scale = parseDimension(obj["scale"])
	return e
}

// parseDimension reads values like "16x16", "83.5x83.5" or "2x", keeping
// the number before the first x.
func parseDimension(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		s, _, _ := strings.Cut(strings.TrimSpace(t), "x")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0
		}
		return f
	}
	return 0
}
