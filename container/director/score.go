/*
NAME
  score.go

DESCRIPTION
  score.go decodes the VWSC score chunk: the frame-by-frame sprite
  channel timeline. Each frame is stored as a delta against the previous
  one, applied to a persistent 1000-byte scratch buffer (50 channels of
  20 bytes each) that is snapshotted after every frame is applied.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package director

import (
	"sort"

	"github.com/ausocean/director/errs"
	"github.com/ausocean/director/gfx"
	"github.com/ausocean/director/reader"
	"github.com/ausocean/director/tag"
)

const (
	scoreChannelSize  = 20
	scoreChannelCount = 50
	scoreBufferSize   = scoreChannelSize * scoreChannelCount
)

// SpriteChannel is one sprite's state for a single frame, decoded from
// score channels 2 and above.
type SpriteChannel struct {
	ScriptID      uint8
	SpriteType    uint8
	ForeColor     uint8
	BackColor     uint8
	Thickness     uint8
	Ink           uint8
	CastMemberID  CastMemberID
	HasCastMember bool
	Position      gfx.Pos
	Size          gfx.Size
}

// SpriteChannelSlot pairs a sprite channel with its channel number, offset
// by 4 from the raw score channel index to match Director's own sprite
// channel numbering.
type SpriteChannelSlot struct {
	Channel       int
	SpriteChannel SpriteChannel
}

// Frame is one frame of the score.
type Frame struct {
	Index          uint16
	Tempo          Tempo
	HasTempo       bool
	PaletteID      CastMemberID
	HasPaletteID   bool
	SpriteChannels []SpriteChannelSlot
}

// Score is the VWSC chunk.
type Score struct {
	Frames []Frame
}

// GetFrame returns the frame at the given 0-based index, if present.
func (s *Score) GetFrame(index uint16) (*Frame, bool) {
	if int(index) >= len(s.Frames) {
		return nil, false
	}
	return &s.Frames[index], true
}

func readScore(payload *reader.Reader) (Score, error) {
	length, err := payload.ReadBEU32()
	if err != nil {
		return Score{}, err
	}
	if _, err := payload.ReadBEU32(); err != nil { // frames_offset, unused
		return Score{}, err
	}
	framesCount, err := payload.ReadBEU32()
	if err != nil {
		return Score{}, err
	}
	if _, err := payload.ReadBEU16(); err != nil { // frames_version, unused
		return Score{}, err
	}
	entrySize, err := payload.ReadBEU16()
	if err != nil {
		return Score{}, err
	}
	if entrySize != 20 {
		return Score{}, errs.NewInvalidData(tag.VWSC.String(), payload.Pos(), "score entry size is not 20")
	}
	entryCount, err := payload.ReadBEU16()
	if err != nil {
		return Score{}, err
	}
	if entryCount < 2 || entryCount > 50 {
		return Score{}, errs.NewInvalidData(tag.VWSC.String(), payload.Pos(), "score entry count out of range")
	}
	if _, err := payload.ReadBEU16(); err != nil { // flags, unused
		return Score{}, err
	}

	framesReader, err := payload.SubRange(payload.Pos(), int64(length)-20)
	if err != nil {
		return Score{}, err
	}

	var scratch [scoreBufferSize]byte
	frames := make([]Frame, 0, framesCount)

	for i := uint32(0); i < framesCount; i++ {
		if err := decompressFrame(framesReader, scratch[:]); err != nil {
			return Score{}, err
		}

		snapshot := make([]byte, scoreBufferSize)
		copy(snapshot, scratch[:])

		frame, err := decodeFrame(uint16(i), snapshot, int(entryCount))
		if err != nil {
			return Score{}, err
		}
		frames = append(frames, frame)
	}

	return Score{Frames: frames}, nil
}

// decompressFrame applies one frame's delta record, read from r, onto
// the persistent scratch buffer in place.
func decompressFrame(r *reader.Reader, scratch []byte) error {
	frameLength, err := r.ReadBEU16()
	if err != nil {
		return err
	}
	if frameLength < 2 {
		return errs.NewInvalidData(tag.VWSC.String(), r.Pos(), "score frame length too small")
	}
	dataLen := int(frameLength) - 2

	for dataLen > 0 {
		count, err := r.ReadBEU16()
		if err != nil {
			return err
		}
		begin, err := r.ReadBEU16()
		if err != nil {
			return err
		}
		dataLen -= 4

		if dataLen < int(count) {
			return errs.NewInvalidData(tag.VWSC.String(), r.Pos(), "score frame delta overruns its own record")
		}
		end := int(begin) + int(count)
		if end > scoreBufferSize {
			return errs.NewInvalidData(tag.VWSC.String(), r.Pos(), "score frame delta overruns channel buffer")
		}

		chunk, err := r.ReadBytes(int(count))
		if err != nil {
			return err
		}
		copy(scratch[begin:end], chunk)
		dataLen -= int(count)
	}

	return nil
}

// decodeFrame interprets a snapshot of the 50-channel scratch buffer into
// a Frame.
func decodeFrame(index uint16, buf []byte, entryCount int) (Frame, error) {
	frame := Frame{Index: index}

	for ch := 0; ch < entryCount; ch++ {
		channel := buf[ch*scoreChannelSize : (ch+1)*scoreChannelSize]
		cr := reader.New(channel)
		cr.SetByteOrder(reader.BigEndian)

		switch ch {
		case 0:
			if _, err := cr.ReadBytes(4); err != nil {
				return Frame{}, err
			}
			tempoByte, err := cr.ReadI8()
			if err != nil {
				return Frame{}, err
			}
			if tempoByte != 0 {
				t, err := NewTempo(tempoByte)
				if err != nil {
					return Frame{}, err
				}
				frame.Tempo = t
				frame.HasTempo = true
			}
		case 1:
			id, err := cr.ReadBEI16()
			if err != nil {
				return Frame{}, err
			}
			if id != 0 {
				frame.PaletteID = NewCastMemberID(id)
				frame.HasPaletteID = true
			}
		default:
			allZero := true
			for _, b := range channel {
				if b != 0 {
					allZero = false
					break
				}
			}
			if allZero {
				continue
			}

			var sc SpriteChannel
			var err error
			sc.ScriptID, err = cr.ReadU8()
			if err != nil {
				return Frame{}, err
			}
			sc.SpriteType, err = cr.ReadU8()
			if err != nil {
				return Frame{}, err
			}
			sc.ForeColor, err = cr.ReadU8()
			if err != nil {
				return Frame{}, err
			}
			sc.BackColor, err = cr.ReadU8()
			if err != nil {
				return Frame{}, err
			}
			sc.Thickness, err = cr.ReadU8()
			if err != nil {
				return Frame{}, err
			}
			sc.Ink, err = cr.ReadU8()
			if err != nil {
				return Frame{}, err
			}
			castID, err := cr.ReadBEI16()
			if err != nil {
				return Frame{}, err
			}
			if castID != 0 {
				sc.CastMemberID = NewCastMemberID(castID)
				sc.HasCastMember = true
			}
			posY, err := cr.ReadBEI16()
			if err != nil {
				return Frame{}, err
			}
			posX, err := cr.ReadBEI16()
			if err != nil {
				return Frame{}, err
			}
			sc.Position = gfx.Pos{Y: posY, X: posX}
			sizeH, err := cr.ReadBEI16()
			if err != nil {
				return Frame{}, err
			}
			sizeW, err := cr.ReadBEI16()
			if err != nil {
				return Frame{}, err
			}
			sc.Size = gfx.Size{H: sizeH, W: sizeW}

			frame.SpriteChannels = append(frame.SpriteChannels, SpriteChannelSlot{Channel: ch + 4, SpriteChannel: sc})
		}
	}

	sort.Slice(frame.SpriteChannels, func(i, j int) bool {
		return frame.SpriteChannels[i].Channel < frame.SpriteChannels[j].Channel
	})

	return frame, nil
}
