/*
NAME
  tempo.go

DESCRIPTION
  tempo.go decodes a score channel 0 tempo byte into the handful of
  distinct tempo behaviors Director supports: a fixed frame rate, or one
  of the three "wait" conditions (for the mouse, or for one of two sound
  channels to finish).

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

	"github.com/ausocean/director/errs"
	"github.com/ausocean/director/tag"
)

// TempoKind selects which of Tempo's behaviors applies.
type TempoKind int

const (
	TempoNone TempoKind = iota
	TempoFPS
	TempoWaitForSoundChannel1
	TempoWaitForSoundChannel2
	TempoWaitForMouse
)

// Tempo is a frame's playback pacing directive.
type Tempo struct {
	Kind TempoKind
	FPS  uint8
}

// NewTempo decodes a raw score tempo byte. Every value outside the ones
// Director itself ever emits is rejected, rather than silently treated
// as "no change": a new, unrecognized byte value most likely means the
// score chunk itself has been misread.
func NewTempo(raw int8) (Tempo, error) {
	switch {
	case raw == 0:
		return Tempo{Kind: TempoNone}, nil
	case raw > 0:
		return Tempo{Kind: TempoFPS, FPS: uint8(raw)}, nil
	case raw == -121:
		return Tempo{Kind: TempoWaitForSoundChannel1}, nil
	case raw == -122:
		return Tempo{Kind: TempoWaitForSoundChannel2}, nil
	case raw == -128:
		return Tempo{Kind: TempoWaitForMouse}, nil
	default:
		return Tempo{}, errs.NewInvalidData(tag.VWSC.String(), 0, fmt.Sprintf("invalid tempo byte %d", raw))
	}
}

// String renders the tempo, for diagnostic use.
func (t Tempo) String() string {
	switch t.Kind {
	case TempoNone:
		return "none"
	case TempoFPS:
		return fmt.Sprintf("%d fps", t.FPS)
	case TempoWaitForSoundChannel1:
		return "wait for sound channel 1"
	case TempoWaitForSoundChannel2:
		return "wait for sound channel 2"
	case TempoWaitForMouse:
		return "wait for mouse click"
	default:
		return "unknown"
	}
}
