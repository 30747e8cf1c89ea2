// Package ioadapter defines the byte I/O boundary that the govariant codec
// engine consumes: a seekable, length-known Source for decoding (framing
// offsets live at the tail of every variable-sized container, so the
// engine must be able to address the end before it has read the middle)
// and an append-only Sink for encoding.
package ioadapter

import (
	"bytes"
	"fmt"
	"io"
)

// Source is a positioned, length-known byte source. Framing offsets sit at
// the tail of each container, so codec.DecodeFromSource reads the whole
// source into memory once (via ReadRange) before decoding.
type Source interface {
	// ReadAt reads len(p) bytes starting at absolute offset off, exactly as
	// io.ReaderAt does: it returns an error if fewer than len(p) bytes are
	// available.
	ReadAt(p []byte, off int64) (int, error)
	// Len returns the total number of bytes available from the source.
	Len() int64
}

// Sink is an append-only byte destination.
type Sink interface {
	io.Writer
}

// SliceSource adapts a plain []byte into a Source. This is the common case:
// GVariant messages are typically fully buffered before decoding since the
// offset tables require random access to the tail.
type SliceSource struct {
	data []byte
}

// NewSliceSource wraps b. The slice is not copied; callers must not mutate
// it for the lifetime of the Source.
func NewSliceSource(b []byte) *SliceSource {
	return &SliceSource{data: b}
}

// ReadAt implements Source.
func (s *SliceSource) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(s.data)) {
		return 0, fmt.Errorf("ioadapter: offset %d out of range [0,%d]", off, len(s.data))
	}
	n := copy(p, s.data[off:])
	if n < len(p) {
		return n, io.ErrUnexpectedEOF
	}
	return n, nil
}

// Len implements Source.
func (s *SliceSource) Len() int64 { return int64(len(s.data)) }

// Bytes returns the underlying slice without copying.
func (s *SliceSource) Bytes() []byte { return s.data }

// ReaderSource adapts an io.ReaderAt of known total length into a Source,
// for decoding from a file or other out-of-core backing store. The adapter
// itself buffers nothing; codec.DecodeFromSource still reads the full
// length into memory before decoding.
type ReaderSource struct {
	r      io.ReaderAt
	length int64
}

// NewReaderSource wraps r, which must yield exactly length bytes starting
// at offset 0.
func NewReaderSource(r io.ReaderAt, length int64) *ReaderSource {
	return &ReaderSource{r: r, length: length}
}

// ReadAt implements Source.
func (s *ReaderSource) ReadAt(p []byte, off int64) (int, error) {
	return s.r.ReadAt(p, off)
}

// Len implements Source.
func (s *ReaderSource) Len() int64 { return s.length }

// BufferSink adapts a *bytes.Buffer into a Sink.
type BufferSink struct {
	buf *bytes.Buffer
}

// NewBufferSink wraps buf.
func NewBufferSink(buf *bytes.Buffer) *BufferSink {
	return &BufferSink{buf: buf}
}

// Write implements Sink.
func (s *BufferSink) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// WriterSink adapts any io.Writer into a Sink, for streaming encode
// directly to a file or network connection.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink wraps w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Write implements Sink.
func (s *WriterSink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// ReadRange is a convenience that reads the half-open byte window [start,
// end) from src into a freshly allocated slice.
func ReadRange(src Source, start, end int64) ([]byte, error) {
	if end < start {
		return nil, fmt.Errorf("ioadapter: invalid range [%d,%d)", start, end)
	}
	buf := make([]byte, end-start)
	if len(buf) == 0 {
		return buf, nil
	}
	if _, err := src.ReadAt(buf, start); err != nil {
		return nil, err
	}
	return buf, nil
}
