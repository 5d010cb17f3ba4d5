// Package stream converts between raw byte streams and normalized
// float samples, one sample at a time. Integer formats map to
// [-1, +1) through division by 2^(N-1); unsigned variants shift by
// the midpoint. Writes clamp symmetrically to the integer range.
package stream

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/zaf/g711"
)

type ReadFunc func(r *bufio.Reader) (float64, error)
type WriteFunc func(w *bufio.Writer, v float64) error

// Format is one entry of the adapter table: a named reader/writer
// pair, same dispatch idea as the original function-pointer table.
type Format struct {
	Name  string
	Bytes int // bytes per sample; 0 for dummy
	Read  ReadFunc
	Write WriteFunc
}

// readBytes fills buf from r. A clean EOF before the first byte is
// reported as io.EOF; a truncated sample is an error.
func readBytes(r *bufio.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	if err == io.EOF {
		return io.EOF
	}
	if err == io.ErrUnexpectedEOF {
		return errors.New("short read inside a sample")
	}
	return err
}

func clampScaled(v float64, min, max float64) float64 {
	scaled := v * -min
	if scaled > max {
		return max
	}
	if scaled < min {
		return min
	}
	return scaled
}

func readU8(r *bufio.Reader) (float64, error) {
	var b [1]byte
	if err := readBytes(r, b[:]); err != nil {
		return 0, err
	}
	return float64(int8(b[0]-0x80)) / 128, nil
}

func writeU8(w *bufio.Writer, v float64) error {
	s := int8(clampScaled(v, -128, 127))
	return w.WriteByte(uint8(s) + 0x80)
}

func readS8(r *bufio.Reader) (float64, error) {
	var b [1]byte
	if err := readBytes(r, b[:]); err != nil {
		return 0, err
	}
	return float64(int8(b[0])) / 128, nil
}

func writeS8(w *bufio.Writer, v float64) error {
	return w.WriteByte(uint8(int8(clampScaled(v, -128, 127))))
}

func read16(r *bufio.Reader, order binary.ByteOrder, unsigned bool) (float64, error) {
	var b [2]byte
	if err := readBytes(r, b[:]); err != nil {
		return 0, err
	}
	s := int16(order.Uint16(b[:]))
	if unsigned {
		s += math.MinInt16
	}
	return float64(s) / 32768, nil
}

func write16(w *bufio.Writer, v float64, order binary.ByteOrder, unsigned bool) error {
	s := int16(clampScaled(v, math.MinInt16, math.MaxInt16))
	if unsigned {
		s -= math.MinInt16
	}
	var b [2]byte
	order.PutUint16(b[:], uint16(s))
	_, err := w.Write(b[:])
	return err
}

func read32(r *bufio.Reader, order binary.ByteOrder, unsigned bool) (float64, error) {
	var b [4]byte
	if err := readBytes(r, b[:]); err != nil {
		return 0, err
	}
	s := int32(order.Uint32(b[:]))
	if unsigned {
		s += math.MinInt32
	}
	return float64(s) / 2147483648, nil
}

func write32(w *bufio.Writer, v float64, order binary.ByteOrder, unsigned bool) error {
	s := int32(clampScaled(v, math.MinInt32, math.MaxInt32))
	if unsigned {
		s -= math.MinInt32
	}
	var b [4]byte
	order.PutUint32(b[:], uint32(s))
	_, err := w.Write(b[:])
	return err
}

func readF32(r *bufio.Reader, order binary.ByteOrder) (float64, error) {
	var b [4]byte
	if err := readBytes(r, b[:]); err != nil {
		return 0, err
	}
	return float64(math.Float32frombits(order.Uint32(b[:]))), nil
}

func writeF32(w *bufio.Writer, v float64, order binary.ByteOrder) error {
	var b [4]byte
	order.PutUint32(b[:], math.Float32bits(float32(v)))
	_, err := w.Write(b[:])
	return err
}

func readF64(r *bufio.Reader, order binary.ByteOrder) (float64, error) {
	var b [8]byte
	if err := readBytes(r, b[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(order.Uint64(b[:])), nil
}

func writeF64(w *bufio.Writer, v float64, order binary.ByteOrder) error {
	var b [8]byte
	order.PutUint64(b[:], math.Float64bits(v))
	_, err := w.Write(b[:])
	return err
}

// G.711 companded bytes, decoded through the 16-bit contract.

func readAlaw(r *bufio.Reader) (float64, error) {
	var b [1]byte
	if err := readBytes(r, b[:]); err != nil {
		return 0, err
	}
	return float64(g711.DecodeAlawFrame(b[0])) / 32768, nil
}

func writeAlaw(w *bufio.Writer, v float64) error {
	s := int16(clampScaled(v, math.MinInt16, math.MaxInt16))
	return w.WriteByte(g711.EncodeAlawFrame(s))
}

func readUlaw(r *bufio.Reader) (float64, error) {
	var b [1]byte
	if err := readBytes(r, b[:]); err != nil {
		return 0, err
	}
	return float64(g711.DecodeUlawFrame(b[0])) / 32768, nil
}

func writeUlaw(w *bufio.Writer, v float64) error {
	s := int16(clampScaled(v, math.MinInt16, math.MaxInt16))
	return w.WriteByte(g711.EncodeUlawFrame(s))
}

// dummy: reads end immediately, writes are discarded
func readDummy(r *bufio.Reader) (float64, error)  { return 0, io.EOF }
func writeDummy(w *bufio.Writer, v float64) error { return nil }

var le = binary.LittleEndian
var be = binary.BigEndian

var Formats = []Format{
	{"U8", 1, readU8, writeU8},
	{"S8", 1, readS8, writeS8},
	{"U16_LE", 2,
		func(r *bufio.Reader) (float64, error) { return read16(r, le, true) },
		func(w *bufio.Writer, v float64) error { return write16(w, v, le, true) }},
	{"U16_BE", 2,
		func(r *bufio.Reader) (float64, error) { return read16(r, be, true) },
		func(w *bufio.Writer, v float64) error { return write16(w, v, be, true) }},
	{"S16_LE", 2,
		func(r *bufio.Reader) (float64, error) { return read16(r, le, false) },
		func(w *bufio.Writer, v float64) error { return write16(w, v, le, false) }},
	{"S16_BE", 2,
		func(r *bufio.Reader) (float64, error) { return read16(r, be, false) },
		func(w *bufio.Writer, v float64) error { return write16(w, v, be, false) }},
	{"U32_LE", 4,
		func(r *bufio.Reader) (float64, error) { return read32(r, le, true) },
		func(w *bufio.Writer, v float64) error { return write32(w, v, le, true) }},
	{"U32_BE", 4,
		func(r *bufio.Reader) (float64, error) { return read32(r, be, true) },
		func(w *bufio.Writer, v float64) error { return write32(w, v, be, true) }},
	{"S32_LE", 4,
		func(r *bufio.Reader) (float64, error) { return read32(r, le, false) },
		func(w *bufio.Writer, v float64) error { return write32(w, v, le, false) }},
	{"S32_BE", 4,
		func(r *bufio.Reader) (float64, error) { return read32(r, be, false) },
		func(w *bufio.Writer, v float64) error { return write32(w, v, be, false) }},
	{"FLOAT_LE", 4,
		func(r *bufio.Reader) (float64, error) { return readF32(r, le) },
		func(w *bufio.Writer, v float64) error { return writeF32(w, v, le) }},
	{"FLOAT_BE", 4,
		func(r *bufio.Reader) (float64, error) { return readF32(r, be) },
		func(w *bufio.Writer, v float64) error { return writeF32(w, v, be) }},
	{"FLOAT64_LE", 8,
		func(r *bufio.Reader) (float64, error) { return readF64(r, le) },
		func(w *bufio.Writer, v float64) error { return writeF64(w, v, le) }},
	{"FLOAT64_BE", 8,
		func(r *bufio.Reader) (float64, error) { return readF64(r, be) },
		func(w *bufio.Writer, v float64) error { return writeF64(w, v, be) }},
	{"ALAW", 1, readAlaw, writeAlaw},
	{"ULAW", 1, readUlaw, writeUlaw},
	{"dummy", 0, readDummy, writeDummy},
}

// Lookup resolves a format by name.
func Lookup(name string) (*Format, error) {
	for i := range Formats {
		if Formats[i].Name == name {
			return &Formats[i], nil
		}
	}
	return nil, errors.Errorf("unknown format: %s", name)
}
