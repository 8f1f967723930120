package encode

import (
	"bufio"
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/pspoerri/tilemap/internal/errors"
)

// Encoder streams an image to w in a single output format.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error

	// Format returns the format name as accepted by NewEncoder.
	Format() string

	// Extension returns the conventional file extension, with the dot.
	Extension() string
}

// NewEncoder creates an encoder for the given format and quality.
// quality applies to jpeg and webp; for png8 it is the palette size.
func NewEncoder(format string, quality int) (Encoder, error) {
	switch format {
	case "jpeg", "jpg":
		return newJPEGEncoder(quality), nil
	case "png":
		return &pngEncoder{format: "png", level: png.BestSpeed}, nil
	case "png8":
		return &palettedEncoder{colors: quality}, nil
	case "webp":
		return newWebPEncoder(quality), nil
	case "bmp":
		return bmpEncoder{}, nil
	case "terrarium":
		return &pngEncoder{format: "terrarium", level: png.BestCompression}, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported,
			"unsupported texture format: %q (supported: png, png8, jpeg, webp, bmp, terrarium)", format)
	}
}

// EncodeBytes encodes img into memory.
func EncodeBytes(enc Encoder, img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes img to path and returns the number of bytes written.
// Output goes to a temporary file in the same directory that replaces path
// only once encoding has succeeded, so a failed run never leaves a
// truncated texture behind.
func WriteFile(path string, enc Encoder, img image.Image) (int64, error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".tilemap-*"+enc.Extension())
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeIO, err, "creating %s", path)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	cw := &countingWriter{w: f}
	bw := bufio.NewWriterSize(cw, 1<<16)
	if err := enc.Encode(bw, img); err != nil {
		f.Close()
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "encoding %s", enc.Format())
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return 0, errors.Wrap(errors.ErrCodeIO, err, "writing %s", path)
	}
	if err := f.Close(); err != nil {
		return 0, errors.Wrap(errors.ErrCodeIO, err, "writing %s", path)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return 0, errors.Wrap(errors.ErrCodeIO, err, "writing %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		return 0, errors.Wrap(errors.ErrCodeIO, err, "renaming to %s", path)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
