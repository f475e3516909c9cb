/*
NAME
  cast_member.go

DESCRIPTION
  cast_member.go decodes the CASt chunk: a tagged union of cast member
  variants (bitmap, text, palette, script, and others playback treats as
  opaque), each carrying a name and a type-specific data record.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package director

import (
	"github.com/ausocean/director/reader"
	"github.com/ausocean/director/tag"
)

// CastMember is one entry of the CAS* cast table, decoded from its CASt
// chunk. Exactly one of the variant fields is meaningful, selected by
// Type; the rest are nil. BitmapInfo is always present for Type ==
// CastMemberTypeBitmap, since it is read inline with the CASt chunk
// itself rather than lazily from BITD.
type CastMember struct {
	Type CastMemberType
	Name string

	BitmapInfo *BitmapInfo
	Bitmap     *Bitmap
	Text       *Text
	Palette    *PaletteCastMember
	Script     *Script
}

// Bitmap is a bitmap cast member. Data and Thumbnail are populated
// separately, by loading the cast member's BITD and THUM chunks.
type Bitmap struct {
	Info      BitmapInfo
	Data      *BitmapData
	Thumbnail *Thumbnail
}

// readCastMember decodes a CASt chunk. r must be positioned at the start
// of the chunk's payload (just past the tag+length header); on return, r
// has been advanced past the data section and the VList.
func readCastMember(r *reader.Reader, id uint32) (CastMember, error) {
	dataLen, err := r.ReadBEU16()
	if err != nil {
		return CastMember{}, err
	}
	vlistByteLen, err := r.ReadBEU32()
	if err != nil {
		return CastMember{}, err
	}

	typeByte, err := r.ReadU8()
	if err != nil {
		return CastMember{}, err
	}
	dataLen--

	typ, err := newCastMemberType(typeByte)
	if err != nil {
		return CastMember{}, err
	}

	if dataLen > 1 {
		if _, err := r.ReadU8(); err != nil {
			return CastMember{}, err
		}
		dataLen--
	}

	dataStart := r.Pos()
	dataReader, err := r.SubRange(dataStart, int64(dataLen))
	if err != nil {
		return CastMember{}, err
	}

	vlistReader, err := r.SubRange(dataStart+int64(dataLen), int64(vlistByteLen))
	if err != nil {
		return CastMember{}, err
	}

	member := CastMember{Type: typ}

	switch typ {
	case CastMemberTypeBitmap:
		info, err := readBitmapInfo(dataReader)
		if err != nil {
			return CastMember{}, err
		}
		member.BitmapInfo = &info
		member.Bitmap = &Bitmap{Info: info}
	case CastMemberTypeText:
		member.Text = &Text{}
	case CastMemberTypePalette:
		member.Palette = &PaletteCastMember{}
	}

	vl, err := readVListU32(vlistReader)
	if err != nil {
		return CastMember{}, err
	}
	if name, ok, err := vl.TryGetAsPascalString(1); err != nil {
		return CastMember{}, err
	} else if ok {
		member.Name = name
	}

	// Carving the sub-readers above leaves the outer reader just past the
	// flags byte, which is where readScript expects it.
	if typ == CastMemberTypeScript {
		script, err := readScript(r)
		if err != nil {
			return CastMember{}, err
		}
		member.Script = &script
	}

	// The outer reader must end up positioned past both sections,
	// regardless of which variant was selected.
	if err := r.Seek(dataStart + int64(dataLen) + int64(vlistByteLen)); err != nil {
		return CastMember{}, err
	}

	return member, nil
}

// readCastMemberChunk reads a CastMember from the memory-map entry at id,
// tagged CASt.
func (c *Container) readCastMemberChunk(id uint32) (CastMember, error) {
	r, _, err := c.entryReader(id)
	if err != nil {
		return CastMember{}, err
	}
	payload, err := readChunkPayload(r, tag.CASt)
	if err != nil {
		return CastMember{}, err
	}
	return readCastMember(payload, id)
}
