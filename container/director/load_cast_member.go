/*
NAME
  load_cast_member.go

DESCRIPTION
  load_cast_member.go implements the demand-loading path for a cast
  member: resolving its CASt chunk id from the cast table, decoding the
  CASt chunk itself, and then, for variants that carry auxiliary data
  chunks (bitmap image data and thumbnail, styled text, palette), looking
  those up by parent id through the key table and decoding them too.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package director

import (
	"github.com/ausocean/director/errs"
	"github.com/ausocean/director/reader"
	"github.com/ausocean/director/tag"
)

// LoadCastMember resolves and fully decodes the cast member named by id,
// including any auxiliary chunks (BITD/THUM/STXT/CLUT) filed under the
// CASt chunk's id as parent.
func (c *Container) LoadCastMember(id CastMemberID) (CastMember, error) {
	chunkID, ok := c.castTable.CastMemberChunkID(id.ID)
	if !ok {
		return CastMember{}, errs.NewNotFound("cast member")
	}

	member, err := c.readCastMemberChunk(chunkID)
	if err != nil {
		return CastMember{}, errs.Wrapf(err, "director: reading cast member %d", id.ID)
	}

	switch member.Type {
	case CastMemberTypeBitmap:
		if payload, err := c.chunkPayloadByParent(tag.BITD, chunkID); err == nil {
			data, err := readBitmapData(payload)
			if err == nil {
				member.Bitmap.Data = &data
			}
		}
		if payload, err := c.chunkPayloadByParent(tag.THUM, chunkID); err == nil {
			thumb, err := readThumbnail(payload)
			if err == nil {
				member.Bitmap.Thumbnail = &thumb
			}
		}
	case CastMemberTypeText:
		if payload, err := c.chunkPayloadByParent(tag.STXT, chunkID); err == nil {
			st, err := readStyledText(payload)
			if err == nil {
				member.Text.StyledText = &st
			}
		}
	case CastMemberTypePalette:
		if payload, err := c.chunkPayloadByParent(tag.CLUT, chunkID); err == nil {
			clut, err := readColorLookupTable(payload)
			if err == nil {
				member.Palette.Clut = &clut
			}
		}
	}

	return member, nil
}

// chunkPayloadByParent looks up the chunk tagged t with the given parent
// id in the key table and returns a reader positioned at its payload.
func (c *Container) chunkPayloadByParent(t tag.Tag, parent uint32) (*reader.Reader, error) {
	id, ok := c.keyTable.FindIDOfChunkWithParent(t, parent)
	if !ok {
		return nil, errs.NewNotFound(t.String() + " chunk")
	}
	r, _, err := c.entryReader(id)
	if err != nil {
		return nil, err
	}
	return readChunkPayload(r, t)
}
