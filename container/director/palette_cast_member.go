/*
NAME
  palette_cast_member.go

DESCRIPTION
  palette_cast_member.go holds the Palette cast member variant: a
  reference to the CLUT chunk it supplies, loaded separately.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package director

// PaletteCastMember is a palette cast member. Clut is populated
// separately, by loading the cast member's CLUT chunk.
type PaletteCastMember struct {
	Clut *ColorLookupTable
}
