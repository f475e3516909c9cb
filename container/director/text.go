/*
NAME
  text.go

DESCRIPTION
  text.go holds the Text cast member variant: a reference to its styled
  text data, loaded separately from the STXT chunk.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package director

// Text is a text cast member. StyledText is populated separately, by
// loading the cast member's STXT chunk.
type Text struct {
	StyledText *StyledText
}

// StyledText is the STXT chunk: a run of plain text plus a set of style
// runs describing formatting changes within it.
type StyledText struct {
	Text      string
	StyleRuns []StyleRun
}

// StyleRun marks where a formatting change begins within StyledText.Text.
// Director stores 16 further bytes of font/size/color/justification per
// run that playback does not interpret.
type StyleRun struct {
	StartOffset int32
}
