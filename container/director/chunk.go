/*
NAME
  chunk.go

DESCRIPTION
  chunk.go provides the common chunk-framing logic shared by every
  per-tag chunk parser: reading a chunk's tag and length header, carving
  out a sub-reader over its payload, and tolerating the final chunk in a
  container being truncated to a zero-length header.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package director decodes Adobe/Macromedia Director movie containers
// (DIR/DXR/DCR, and the RIFX/XFIR container embedded in a Director
// projector executable) into a read-only object model.
package director

import (
	"github.com/ausocean/director/errs"
	"github.com/ausocean/director/reader"
	"github.com/ausocean/director/tag"
)

// chunkHeaderSize is the size in bytes of a chunk's tag+length header.
const chunkHeaderSize = 8

// readChunkPayload reads a chunk's tag and length at the reader's current
// position, verifies the tag matches want, and returns a sub-reader over
// exactly the chunk's payload bytes.
//
// Authoring tools sometimes write a final chunk's length as if its payload
// followed, when in fact the file simply ends after the header. When
// exactly zero bytes remain after the header, that declared length is
// overridden to zero instead of erroring.
func readChunkPayload(r *reader.Reader, want tag.Tag) (*reader.Reader, error) {
	pos := r.Pos()

	rawTag, err := r.ReadU32()
	if err != nil {
		return nil, errs.Wrapf(err, "director: reading chunk tag at offset 0x%x", pos)
	}
	got := tag.Tag(rawTag)

	size, err := r.ReadU32()
	if err != nil {
		return nil, errs.Wrapf(err, "director: reading chunk length at offset 0x%x", pos)
	}

	if pos+chunkHeaderSize == int64(r.Len()) && size != 0 {
		size = 0
	}

	if got != want {
		return nil, errs.NewInvalidData(want.String(), pos,
			"expected tag "+want.String()+", found "+got.String()+" ("+got.Hex()+")")
	}

	payloadPos := r.Pos()
	payload, err := r.SubRange(payloadPos, int64(size))
	if err != nil {
		return nil, errs.Wrapf(err, "director: chunk %s payload at offset 0x%x", want, payloadPos)
	}

	if err := r.Seek(payloadPos + int64(size)); err != nil {
		return nil, err
	}

	return payload, nil
}
