package encode

import (
	"image"
	"image/png"
	"io"
	"sync"
)

// pngEncoder writes truecolor PNG. The terrarium format shares it with a
// higher compression level, since heightmaps are small and written once.
type pngEncoder struct {
	format string
	level  png.CompressionLevel
}

func (e *pngEncoder) Encode(w io.Writer, img image.Image) error {
	enc := &png.Encoder{CompressionLevel: e.level, BufferPool: pngBuffers}
	return enc.Encode(w, img)
}

func (e *pngEncoder) Format() string    { return e.format }
func (e *pngEncoder) Extension() string { return ".png" }

// pngBufferPool lets consecutive encodes reuse the zlib writer and row
// buffers of image/png.
type pngBufferPool struct{ p sync.Pool }

func (b *pngBufferPool) Get() *png.EncoderBuffer {
	buf, _ := b.p.Get().(*png.EncoderBuffer)
	return buf
}

func (b *pngBufferPool) Put(buf *png.EncoderBuffer) { b.p.Put(buf) }

var pngBuffers = &pngBufferPool{}
