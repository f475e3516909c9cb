/*
NAME
  config.go

DESCRIPTION
  config.go defines Engine's construction-time configuration: logging and
  the strictness of chunk parsing.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package playback implements a pull-model engine that steps a decoded
// movie one frame at a time, tracking palette and tempo state and
// building the per-frame display list an external renderer composites.
// Windowing, compositing, Lingo execution, and sound/video/film-loop
// playback are all out of scope; Engine only derives what to draw.
package playback

import "github.com/ausocean/director/logging"

// Config holds Engine's construction-time settings.
type Config struct {
	// Logger receives diagnostic output. If nil, a no-op logger is used.
	Logger logging.Logger
	// LogLevel is the minimum level Logger emits.
	LogLevel int8
	// StrictChunks makes a failure to load a cast member the current
	// frame references (e.g. one absent from the cast table) fatal to
	// StepFrame instead of merely logged and skipped. Missing auxiliary
	// chunks (BITD, THUM, STXT, CLUT) are skipped in either mode. Off by
	// default.
	StrictChunks bool
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.NewNop()
	}
	c.Logger.SetLevel(c.LogLevel)
	return c.Logger
}
