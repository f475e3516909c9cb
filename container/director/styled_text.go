/*
NAME
  styled_text.go

DESCRIPTION
  styled_text.go decodes the STXT chunk: a text cast member's plain text
  plus its style run table.

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

func readStyledText(payload *reader.Reader) (StyledText, error) {
	headerSize, err := payload.ReadBEU32()
	if err != nil {
		return StyledText{}, err
	}
	if headerSize != 12 {
		return StyledText{}, errs.NewInvalidData(tag.STXT.String(), payload.Pos(), "STXT header size is not 12")
	}

	textSize, err := payload.ReadBEU32()
	if err != nil {
		return StyledText{}, err
	}
	styleSize, err := payload.ReadBEU32()
	if err != nil {
		return StyledText{}, err
	}

	textBytes, err := payload.ReadFixedString(int(textSize))
	if err != nil {
		return StyledText{}, err
	}

	styleRunCount, err := payload.ReadBEU16()
	if err != nil {
		return StyledText{}, err
	}
	if int(styleSize) != 20*int(styleRunCount)+2 {
		return StyledText{}, errs.NewInvalidData(tag.STXT.String(), payload.Pos(), "STXT style table size does not match run count")
	}

	runs := make([]StyleRun, 0, styleRunCount)
	for i := 0; i < int(styleRunCount); i++ {
		startOffset, err := payload.ReadBEI32()
		if err != nil {
			return StyledText{}, err
		}
		if _, err := payload.ReadBytes(16); err != nil {
			return StyledText{}, err
		}
		runs = append(runs, StyleRun{StartOffset: startOffset})
	}

	return StyledText{Text: textBytes, StyleRuns: runs}, nil
}
