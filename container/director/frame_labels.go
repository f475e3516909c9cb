/*
NAME
  frame_labels.go

DESCRIPTION
  frame_labels.go decodes the optional VWLB chunk: the mapping from frame
  number to an author-assigned marker label, used for Lingo frame
  navigation (go to frame "intro", etc).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package director

import (
	"fmt"
	"strings"

	"github.com/ausocean/director/errs"
	"github.com/ausocean/director/reader"
	"github.com/ausocean/director/tag"
)

// FrameLabel names a single frame marker.
type FrameLabel struct {
	Number uint16
	Text   string
}

// FrameLabels is the VWLB chunk.
type FrameLabels struct {
	Labels []FrameLabel
}

// IsEmpty reports whether the movie has no frame labels.
func (f *FrameLabels) IsEmpty() bool { return len(f.Labels) == 0 }

func readFrameLabels(payload *reader.Reader) (FrameLabels, error) {
	labelCount, err := payload.ReadBEU16()
	if err != nil {
		return FrameLabels{}, err
	}

	type offsetEntry struct {
		frameNumber uint16
		textOffset  uint16
	}
	offsets := make([]offsetEntry, 0, int(labelCount)+1)
	for i := 0; i < int(labelCount)+1; i++ {
		frameNumber, err := payload.ReadBEU16()
		if err != nil {
			return FrameLabels{}, err
		}
		textOffset, err := payload.ReadBEU16()
		if err != nil {
			return FrameLabels{}, err
		}
		offsets = append(offsets, offsetEntry{frameNumber, textOffset})
	}

	labels := make([]FrameLabel, 0, labelCount)
	for i := 0; i < int(labelCount); i++ {
		number := offsets[i].frameNumber
		off0 := offsets[i].textOffset
		off1 := offsets[i+1].textOffset
		if off1 < off0 {
			return FrameLabels{}, errs.NewInvalidData(tag.VWLB.String(), payload.Pos(), "frame label offsets are not increasing")
		}
		text, err := payload.ReadFixedString(int(off1 - off0))
		if err != nil {
			return FrameLabels{}, err
		}
		labels = append(labels, FrameLabel{Number: number, Text: text})
	}

	return FrameLabels{Labels: labels}, nil
}

// String renders the frame labels as a table, for diagnostic use.
func (f *FrameLabels) String() string {
	var sb strings.Builder
	sb.WriteString("Frame Labels:\n")
	for _, l := range f.Labels {
		fmt.Fprintf(&sb, "%5d | %s\n", l.Number, l.Text)
	}
	return sb.String()
}
