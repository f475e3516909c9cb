/*
NAME
  cast_member_type.go

DESCRIPTION
  cast_member_type.go defines the cast member type tag found at the start
  of every CASt chunk's data section.

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
	"github.com/ausocean/director/tag"
)

// CastMemberType identifies which variant a CASt chunk holds.
type CastMemberType uint8

const (
	CastMemberTypeNull CastMemberType = iota
	CastMemberTypeBitmap
	CastMemberTypeFilmLoop
	CastMemberTypeText
	CastMemberTypePalette
	CastMemberTypePicture
	CastMemberTypeSound
	CastMemberTypeButton
	CastMemberTypeShape
	CastMemberTypeMovie
	CastMemberTypeDigitalVideo
	CastMemberTypeScript
	CastMemberTypeRTE
)

func newCastMemberType(v uint8) (CastMemberType, error) {
	if v > uint8(CastMemberTypeRTE) {
		return 0, errs.NewInvalidData(tag.CASt.String(), 0, "unknown cast member type")
	}
	return CastMemberType(v), nil
}

// String names the cast member type, for diagnostic use.
func (t CastMemberType) String() string {
	switch t {
	case CastMemberTypeNull:
		return "null"
	case CastMemberTypeBitmap:
		return "bitmap"
	case CastMemberTypeFilmLoop:
		return "film loop"
	case CastMemberTypeText:
		return "text"
	case CastMemberTypePalette:
		return "palette"
	case CastMemberTypePicture:
		return "picture"
	case CastMemberTypeSound:
		return "sound"
	case CastMemberTypeButton:
		return "button"
	case CastMemberTypeShape:
		return "shape"
	case CastMemberTypeMovie:
		return "movie"
	case CastMemberTypeDigitalVideo:
		return "digital video"
	case CastMemberTypeScript:
		return "script"
	case CastMemberTypeRTE:
		return "rich text"
	default:
		return "unknown"
	}
}
