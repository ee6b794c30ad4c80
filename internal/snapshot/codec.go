package snapshot

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Encode serialises a single frame.
func Encode(f Frame) ([]byte, error) {
	data, err := msgpack.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frame %d: %w", f.Header.Tick, err)
	}
	return data, nil
}

// Decode parses a frame produced by Encode.
func Decode(data []byte) (Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("failed to unmarshal frame: %w", err)
	}
	return f, nil
}

// Writer streams frames back to back onto an io.Writer.
type Writer struct {
	enc    *msgpack.Encoder
	frames int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: msgpack.NewEncoder(w)}
}

func (w *Writer) Write(f Frame) error {
	if err := w.enc.Encode(&f); err != nil {
		return fmt.Errorf("failed to write frame %d: %w", f.Header.Tick, err)
	}
	w.frames++
	return nil
}

// Frames returns how many frames were written.
func (w *Writer) Frames() int {
	return w.frames
}

// Reader reads a stream produced by Writer.
type Reader struct {
	dec *msgpack.Decoder
}

func NewReader(r io.Reader) *Reader {
	return &Reader{dec: msgpack.NewDecoder(r)}
}

// Read returns the next frame, or io.EOF once the stream is exhausted.
func (r *Reader) Read() (Frame, error) {
	var f Frame
	if err := r.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("failed to read frame: %w", err)
	}
	return f, nil
}
