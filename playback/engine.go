/*
NAME
  engine.go

DESCRIPTION
  engine.go implements Engine, a pull-model playback driver: advance to
  the next frame, apply any tempo or palette change it carries, preload
  the cast members it references, and hand back a display list for an
  external renderer to draw.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package playback

import (
	"time"

	"github.com/ausocean/director/container/director"
	"github.com/ausocean/director/errs"
	"github.com/ausocean/director/gfx"
	"github.com/ausocean/director/logging"
)

// DisplayObject is one item of a frame's display list. Only the Bitmap
// variant is populated today; other sprite types decode but do not yet
// produce display output, matching the read-only decoder's scope.
type DisplayObject struct {
	CastMemberID director.CastMemberID
	Rect         gfx.Rect
	Image        *gfx.IndexedImageBuffer
}

// DisplayList is everything a frame draws, already positioned in stage
// coordinates and ready for an external renderer to blit against the
// current palette.
type DisplayList struct {
	Frame   uint16
	Objects []DisplayObject
}

// Engine steps a decoded movie through its score one frame at a time. It
// holds all state playback needs between frames: the current palette,
// the current tempo, frame timing, and a cache of cast members already
// loaded this session.
type Engine struct {
	container *director.Container
	logger    logging.Logger
	strict    bool

	palette gfx.Palette
	tempo   director.Tempo

	currentFrameNumber uint16
	nextFrameNumber    uint16
	currentFrameTime   time.Time
	nextFrameTime      time.Time

	castCache map[director.CastMemberID]director.CastMember
}

// NewEngine builds an Engine over an already-opened container. The
// container must already have had ReadConfig, ReadCastTable, and
// ReadScore called on it.
func NewEngine(c *director.Container, cfg Config) *Engine {
	return &Engine{
		container: c,
		logger:    cfg.logger(),
		strict:    cfg.StrictChunks,
		tempo:     director.Tempo{Kind: director.TempoFPS, FPS: 1},
		castCache: make(map[director.CastMemberID]director.CastMember),
	}
}

// DefaultWindowSize returns the stage dimensions the movie's config
// chunk declares.
func (e *Engine) DefaultWindowSize() gfx.Size {
	cfg := e.container.Config()
	return gfx.Size{
		H: int16(cfg.MovieBottom - cfg.MovieTop),
		W: int16(cfg.MovieRight - cfg.MovieLeft),
	}
}

// Palette returns the engine's current palette.
func (e *Engine) Palette() *gfx.Palette { return &e.palette }

// Tempo returns the engine's current tempo.
func (e *Engine) Tempo() director.Tempo { return e.tempo }

// FrameDuration returns how long the current frame should be displayed
// before advancing, or false if the current tempo has no fixed
// duration (a wait-for-mouse or wait-for-sound tempo never expires on
// its own; an external driver must advance the frame itself).
func (e *Engine) FrameDuration() (time.Duration, bool) {
	if e.tempo.Kind != director.TempoFPS || e.tempo.FPS == 0 {
		return 0, false
	}
	return time.Second / time.Duration(e.tempo.FPS), true
}

// TimeForNewFrame reports whether enough time has passed to advance to
// the next frame.
func (e *Engine) TimeForNewFrame(now time.Time) bool {
	return !e.nextFrameTime.After(now)
}

// StepFrame advances to the next frame, applies its tempo and palette
// changes, preloads every cast member it references, and returns the
// resulting display list.
func (e *Engine) StepFrame(now time.Time) (DisplayList, error) {
	e.currentFrameNumber = e.nextFrameNumber
	e.currentFrameTime = now

	score := e.container.Score()
	frame, ok := score.GetFrame(e.currentFrameNumber)
	if !ok {
		return DisplayList{}, errs.NewNotFound("score frame")
	}

	if err := e.preloadCastMembersForFrame(frame); err != nil {
		return DisplayList{}, err
	}

	if frame.HasTempo {
		e.tempo = frame.Tempo
	}

	if frame.HasPaletteID {
		if member, ok := e.castCache[frame.PaletteID]; ok && member.Palette != nil && member.Palette.Clut != nil {
			for i, c := range member.Palette.Clut.Colors {
				e.palette.Set(uint8(i), c)
			}
		}
	}

	list := DisplayList{Frame: e.currentFrameNumber}
	for _, slot := range frame.SpriteChannels {
		sc := slot.SpriteChannel
		if sc.SpriteType != 1 || !sc.HasCastMember {
			continue
		}
		member, ok := e.castCache[sc.CastMemberID]
		if !ok || member.Bitmap == nil || member.Bitmap.Data == nil {
			continue
		}
		img, err := member.Bitmap.Data.Image(member.Bitmap.Info)
		if err != nil {
			e.logger.Log(logging.Warning, "failed to decode bitmap", "cast_member", sc.CastMemberID, "err", err)
			continue
		}
		rect := member.Bitmap.Info.Rect.Translate(member.Bitmap.Info.Reg.Neg()).Translate(sc.Position)
		list.Objects = append(list.Objects, DisplayObject{
			CastMemberID: sc.CastMemberID,
			Rect:         rect,
			Image:        img,
		})
	}

	e.nextFrameNumber = e.currentFrameNumber + 1
	if d, ok := e.FrameDuration(); ok {
		e.nextFrameTime = e.currentFrameTime.Add(d)
	} else {
		e.nextFrameTime = e.currentFrameTime
	}

	return list, nil
}

// preloadCastMembersForFrame loads every cast member the frame
// references (its palette and every sprite channel's cast member) that
// isn't already cached.
func (e *Engine) preloadCastMembersForFrame(frame *director.Frame) error {
	if frame.HasPaletteID {
		if err := e.preloadCastMember(frame.PaletteID); err != nil {
			return err
		}
	}
	for _, slot := range frame.SpriteChannels {
		if !slot.SpriteChannel.HasCastMember {
			continue
		}
		if err := e.preloadCastMember(slot.SpriteChannel.CastMemberID); err != nil {
			return err
		}
	}
	return nil
}

// preloadCastMember loads id into the cast cache if it isn't there
// already. A load failure is fatal under strict configuration; otherwise
// it is logged and the cast member is simply left uncached, matching
// how a projector tolerates a movie referencing a cast member it can't
// resolve.
func (e *Engine) preloadCastMember(id director.CastMemberID) error {
	if _, ok := e.castCache[id]; ok {
		return nil
	}
	member, err := e.container.LoadCastMember(id)
	if err != nil {
		if e.strict {
			return errs.Wrapf(err, "playback: loading cast member %v", id)
		}
		e.logger.Log(logging.Warning, "failed to load cast member", "cast_member", id, "err", err)
		return nil
	}
	e.castCache[id] = member
	return nil
}
