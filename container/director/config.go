/*
NAME
  config.go

DESCRIPTION
  config.go decodes the VWCF (or, in older movies, DRCF) chunk: the
  movie-wide configuration record holding the stage rectangle, cast member
  number range, Director version, and default palette id.

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

	"github.com/ausocean/director/reader"
	"github.com/ausocean/director/tag"
)

// Config is the movie configuration chunk (VWCF/DRCF).
type Config struct {
	Len               uint16
	FileVersion       uint16
	MovieTop          uint16
	MovieLeft         uint16
	MovieBottom       uint16
	MovieRight        uint16
	MinMember         uint16
	MaxMember         uint16
	DirectorVersion   uint16
	HasDirectorVer    bool
	DefaultPaletteID  int32
	HasDefaultPalette bool
}

// readConfig decodes a VWCF/DRCF payload already carved out by the caller
// (the actual on-disk tag may be either, so the tag check happens at the
// call site rather than here).
func readConfig(payload *reader.Reader) (Config, error) {
	var c Config
	var err error

	c.Len, err = payload.ReadBEU16()
	if err != nil {
		return Config{}, err
	}
	c.FileVersion, err = payload.ReadBEU16()
	if err != nil {
		return Config{}, err
	}
	c.MovieTop, err = payload.ReadBEU16()
	if err != nil {
		return Config{}, err
	}
	c.MovieLeft, err = payload.ReadBEU16()
	if err != nil {
		return Config{}, err
	}
	c.MovieBottom, err = payload.ReadBEU16()
	if err != nil {
		return Config{}, err
	}
	c.MovieRight, err = payload.ReadBEU16()
	if err != nil {
		return Config{}, err
	}
	c.MinMember, err = payload.ReadBEU16()
	if err != nil {
		return Config{}, err
	}
	c.MaxMember, err = payload.ReadBEU16()
	if err != nil {
		return Config{}, err
	}

	// These two fields live past the header fields read above, at fixed
	// absolute offsets within the chunk. Movies produced by buggy or very
	// old authoring tools sometimes truncate the chunk before these
	// offsets; tolerate that by treating an out-of-range read as "absent"
	// rather than a parse failure.
	if v, err := payload.ReadBEU16At(36); err == nil {
		c.DirectorVersion = v
		c.HasDirectorVer = true
	}

	if v, err := payload.ReadBEI16At(0x46); err == nil {
		pal := int32(v)
		if pal <= 0 {
			pal--
		}
		c.DefaultPaletteID = pal
		c.HasDefaultPalette = true
	}

	return c, nil
}

func (c *Container) readConfig() error {
	if id, ok := c.keyTable.FindIDOfChunkWithParent(tag.VWCF, globalID); ok {
		return c.readConfigAt(id, tag.VWCF)
	}
	if id, ok := c.keyTable.FindIDOfChunkWithParent(tag.DRCF, globalID); ok {
		return c.readConfigAt(id, tag.DRCF)
	}
	return errNotFound("VWCF/DRCF config chunk")
}

func (c *Container) readConfigAt(id uint32, want tag.Tag) error {
	entry, ok := c.mmap.EntryByIndex(id)
	if !ok {
		return errNotFound(fmt.Sprintf("config chunk id %d", id))
	}

	r := c.readerAt(int64(entry.Pos))
	payload, err := readChunkPayload(r, want)
	if err != nil {
		return err
	}

	config, err := readConfig(payload)
	if err != nil {
		return err
	}
	c.config = config
	if config.HasDirectorVer {
		c.version = NewVersion(config.DirectorVersion)
	}
	return nil
}

// String renders the config record, for diagnostic use.
func (c Config) String() string {
	return fmt.Sprintf("Config{stage: (%d,%d)-(%d,%d), members: %d-%d, version: %d, palette: %d}",
		c.MovieTop, c.MovieLeft, c.MovieBottom, c.MovieRight, c.MinMember, c.MaxMember,
		c.DirectorVersion, c.DefaultPaletteID)
}
