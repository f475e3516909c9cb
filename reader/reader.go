/*
NAME
  reader.go

DESCRIPTION
  reader.go provides a byte-cursor reader over a slice that can decode
  fixed-width integers in either byte order, seek to absolute offsets, and
  carve out sub-ranges for lazily-parsed chunk payloads.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package reader provides a byte-cursor reader over a Director container's
// backing buffer, used by the container and cast-member decoders to read
// fixed-width integers, Pascal/fixed-length strings, and raw sub-ranges
// without copying the source buffer.
package reader

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// ByteOrder selects how multi-byte integers are interpreted.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// Reader is a cursor over a byte slice. It never mutates the underlying
// slice; reads only advance an internal position.
type Reader struct {
	buf   []byte
	pos   int
	order ByteOrder
}

// New returns a Reader over buf, defaulting to little-endian, matching the
// container's most common on-disk byte order until byte order is detected
// from the container's magic and set with SetByteOrder.
func New(buf []byte) *Reader {
	return &Reader{buf: buf, order: LittleEndian}
}

// SetByteOrder changes the order used by the native-order read methods.
func (r *Reader) SetByteOrder(order ByteOrder) { r.order = order }

// ByteOrderOf returns the reader's current byte order.
func (r *Reader) ByteOrderOf() ByteOrder { return r.order }

// Len returns the total size of the reader's backing buffer.
func (r *Reader) Len() int { return len(r.buf) }

// Pos returns the current cursor position.
func (r *Reader) Pos() int64 { return int64(r.pos) }

// Seek moves the cursor to an absolute position within the buffer.
func (r *Reader) Seek(pos int64) error {
	if pos < 0 || pos > int64(len(r.buf)) {
		return errors.Errorf("reader: seek %d out of range [0,%d]", pos, len(r.buf))
	}
	r.pos = int(pos)
	return nil
}

// Remaining reports how many bytes are left to read.
func (r *Reader) Remaining() int64 {
	return int64(len(r.buf) - r.pos)
}

// SubRange returns a new Reader over buf[pos:pos+size], sharing the same
// byte order as r. It does not copy the underlying bytes.
func (r *Reader) SubRange(pos, size int64) (*Reader, error) {
	if pos < 0 || size < 0 || pos+size > int64(len(r.buf)) {
		return nil, errors.Errorf("reader: subrange [%d,%d) out of range for buffer of length %d", pos, pos+size, len(r.buf))
	}
	return &Reader{buf: r.buf[pos : pos+size], order: r.order}, nil
}

func (r *Reader) need(n int) error {
	if r.pos+n > len(r.buf) {
		return errors.Wrapf(io.ErrUnexpectedEOF, "reader: need %d bytes at position %d in buffer of length %d", n, r.pos, len(r.buf))
	}
	return nil
}

// ReadBytes reads n raw bytes and advances the cursor.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadToEnd reads and returns everything remaining from the cursor.
func (r *Reader) ReadToEnd() []byte {
	b := r.buf[r.pos:]
	r.pos = len(r.buf)
	return b
}

// ReadU8 reads a single unsigned byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// ReadI8 reads a single signed byte.
func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

// ReadU8At reads a byte at an absolute position without leaving the cursor
// there; the cursor is left just past the read byte, matching the Rust
// reader's read_u8_at (seek then read).
func (r *Reader) ReadU8At(pos int64) (uint8, error) {
	if err := r.Seek(pos); err != nil {
		return 0, err
	}
	return r.ReadU8()
}

func (r *Reader) readU16(order ByteOrder) (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	b := r.buf[r.pos : r.pos+2]
	r.pos += 2
	if order == BigEndian {
		return uint16(b[0])<<8 | uint16(b[1]), nil
	}
	return uint16(b[1])<<8 | uint16(b[0]), nil
}

func (r *Reader) readU32(order ByteOrder) (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	b := r.buf[r.pos : r.pos+4]
	r.pos += 4
	if order == BigEndian {
		return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
	}
	return uint32(b[3])<<24 | uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0]), nil
}

// ReadU16 reads a uint16 in the reader's native byte order.
func (r *Reader) ReadU16() (uint16, error) { return r.readU16(r.order) }

// ReadI16 reads an int16 in the reader's native byte order.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.readU16(r.order)
	return int16(v), err
}

// ReadBEU16 reads a big-endian uint16 regardless of the reader's native order.
func (r *Reader) ReadBEU16() (uint16, error) { return r.readU16(BigEndian) }

// ReadBEI16 reads a big-endian int16 regardless of the reader's native order.
func (r *Reader) ReadBEI16() (int16, error) {
	v, err := r.readU16(BigEndian)
	return int16(v), err
}

// ReadLEU16 reads a little-endian uint16 regardless of the reader's native order.
func (r *Reader) ReadLEU16() (uint16, error) { return r.readU16(LittleEndian) }

// ReadBEI16At seeks to pos and reads a big-endian int16.
func (r *Reader) ReadBEI16At(pos int64) (int16, error) {
	if err := r.Seek(pos); err != nil {
		return 0, err
	}
	return r.ReadBEI16()
}

// ReadBEU16At seeks to pos and reads a big-endian uint16.
func (r *Reader) ReadBEU16At(pos int64) (uint16, error) {
	if err := r.Seek(pos); err != nil {
		return 0, err
	}
	return r.ReadBEU16()
}

// ReadI16At seeks to pos and reads an int16 in native byte order.
func (r *Reader) ReadI16At(pos int64) (int16, error) {
	if err := r.Seek(pos); err != nil {
		return 0, err
	}
	return r.ReadI16()
}

// ReadU32 reads a uint32 in the reader's native byte order.
func (r *Reader) ReadU32() (uint32, error) { return r.readU32(r.order) }

// ReadI32 reads an int32 in the reader's native byte order.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.readU32(r.order)
	return int32(v), err
}

// ReadBEU32 reads a big-endian uint32 regardless of the reader's native order.
func (r *Reader) ReadBEU32() (uint32, error) { return r.readU32(BigEndian) }

// ReadBEI32 reads a big-endian int32 regardless of the reader's native order.
func (r *Reader) ReadBEI32() (int32, error) {
	v, err := r.readU32(BigEndian)
	return int32(v), err
}

// ReadPascalString reads a one-byte length prefix followed by that many
// bytes, decoded per ReadFixedString.
func (r *Reader) ReadPascalString() (string, error) {
	n, err := r.ReadU8()
	if err != nil {
		return "", err
	}
	return r.ReadFixedString(int(n))
}

// ReadFixedString reads n bytes, drops anything from the first NUL byte
// onward, and decodes the rest as ISO-8859-1, ignoring undecodable bytes.
// This mirrors the tolerant behaviour authoring tools rely on: embedded
// NULs terminate the logical string without it being a parse error.
func (r *Reader) ReadFixedString(n int) (string, error) {
	raw, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}

	var trimmed []byte
	for _, b := range raw {
		if b == 0 {
			break
		}
		trimmed = append(trimmed, b)
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(trimmed)
	if err != nil {
		// ISO-8859-1 maps every byte value, so in practice this never
		// errors; fall back to the raw bytes for tolerance anyway.
		return string(trimmed), nil
	}
	return string(decoded), nil
}

// HexDump renders the remaining unread bytes as a canonical hex+ASCII dump,
// 16 bytes per line, without moving the cursor.
func (r *Reader) HexDump() string {
	return r.HexDumpWidth(16)
}

// HexDumpWidth renders the remaining unread bytes width bytes per line.
func (r *Reader) HexDumpWidth(width int) string {
	buf := r.buf[r.pos:]
	var sb strings.Builder
	for n := 0; n*width < len(buf); n++ {
		start := n * width
		end := start + width
		if end > len(buf) {
			end = len(buf)
		}
		chunk := buf[start:end]

		fmt.Fprintf(&sb, "%08x ", start)
		for i := 0; i < width; i++ {
			if i < len(chunk) {
				fmt.Fprintf(&sb, "%02x ", chunk[i])
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteByte(' ')
		for _, b := range chunk {
			if b >= 0x20 && b < 0x7f {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
