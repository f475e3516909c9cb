/*
NAME
  color_lookup_table.go

DESCRIPTION
  color_lookup_table.go decodes the CLUT chunk: a palette cast member's
  256-entry (or fewer) table of 48-bit RGB colors.

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
	"github.com/ausocean/director/gfx"
	"github.com/ausocean/director/reader"
	"github.com/ausocean/director/tag"
)

// ColorLookupTable is the CLUT chunk.
type ColorLookupTable struct {
	Colors []gfx.Rgb161616
}

func readColorLookupTable(payload *reader.Reader) (ColorLookupTable, error) {
	size := payload.Len()
	if size%6 != 0 {
		return ColorLookupTable{}, errs.NewInvalidData(tag.CLUT.String(), payload.Pos(), "CLUT size is not a multiple of 6")
	}
	count := size / 6
	if count > 256 {
		return ColorLookupTable{}, errs.NewInvalidData(tag.CLUT.String(), payload.Pos(), "CLUT has more than 256 entries")
	}

	colors := make([]gfx.Rgb161616, 0, count)
	for i := 0; i < count; i++ {
		r, err := payload.ReadBEU16()
		if err != nil {
			return ColorLookupTable{}, err
		}
		g, err := payload.ReadBEU16()
		if err != nil {
			return ColorLookupTable{}, err
		}
		b, err := payload.ReadBEU16()
		if err != nil {
			return ColorLookupTable{}, err
		}
		colors = append(colors, gfx.Rgb161616{R: r, G: g, B: b})
	}

	return ColorLookupTable{Colors: colors}, nil
}
