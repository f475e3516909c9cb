/*
NAME
  tag.go

DESCRIPTION
  Four-byte chunk tags used throughout the RIFX/XFIR container family.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package tag defines the four-character chunk tags found in Director
// RIFX/XFIR containers and projector executables. A tag's byte value is
// always its four ASCII characters in big-endian order, independent of the
// container's own byte order.
package tag

import "fmt"

// Tag identifies the type of a chunk.
type Tag uint32

// New builds a Tag from four ASCII bytes.
func New(a, b, c, d byte) Tag {
	return Tag(uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d))
}

// Chunk tags present in Director RIFX/XFIR containers.
const (
	APPL Tag = 0x4150504C // "APPL"
	BITD Tag = 0x42495444 // "BITD"
	CAS_ Tag = 0x4341532A // "CAS*"
	CASt Tag = 0x43415374 // "CASt"
	CLUT Tag = 0x434C5554 // "CLUT"
	DRCF Tag = 0x44524346 // "DRCF"
	File Tag = 0x46696C65 // "File"
	free Tag = 0x66726565 // "free"
	imap Tag = 0x696D6170 // "imap"
	junk Tag = 0x6A756E6B // "junk"
	KEY_ Tag = 0x4B45592A // "KEY*"
	Lctx Tag = 0x4C637478 // "Lctx"
	Lnam Tag = 0x4C6E616D // "Lnam"
	Lscr Tag = 0x4C736372 // "Lscr"
	mmap Tag = 0x6D6D6170 // "mmap"
	MV93 Tag = 0x4D563933 // "MV93"
	PJ93 Tag = 0x504A3933 // "PJ93"
	RIFX Tag = 0x52494658 // "RIFX"
	STXT Tag = 0x53545854 // "STXT"
	THUM Tag = 0x5448554D // "THUM"
	VWCF Tag = 0x56574346 // "VWCF"
	VWFI Tag = 0x56574649 // "VWFI"
	VWLB Tag = 0x56574C42 // "VWLB"
	VWSC Tag = 0x56575343 // "VWSC"
	XFIR Tag = 0x58464952 // "XFIR"
)

// Exported aliases for the lower-case tags above, since unexported package
// constants can't be referenced outside tag. Free and Junk mark padding
// chunks that carry no useful data.
const (
	Free Tag = free
	Junk Tag = junk
	Imap Tag = imap
	Mmap Tag = mmap
	Key  Tag = KEY_
)

// Bytes returns the tag's four bytes in big-endian (on-disk text) order.
func (t Tag) Bytes() [4]byte {
	return [4]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)}
}

// String renders the tag as its four ASCII characters, substituting '.'
// for any non-printable byte.
func (t Tag) String() string {
	b := t.Bytes()
	out := make([]byte, 4)
	for i, c := range b {
		if c >= 0x20 && c < 0x7f {
			out[i] = c
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// GoString renders the tag quoted, matching the Rust implementation's
// Debug format.
func (t Tag) GoString() string {
	return fmt.Sprintf("'%s'", t.String())
}

// Hex renders the tag's bytes as space-separated hex pairs, useful when
// diagnosing corrupt or non-ASCII tags.
func (t Tag) Hex() string {
	b := t.Bytes()
	return fmt.Sprintf("%02X %02X %02X %02X", b[0], b[1], b[2], b[3])
}
