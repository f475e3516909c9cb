/*
NAME
  container_chunks.go

DESCRIPTION
  container_chunks.go provides the container's movie-wide chunk readers:
  key table, cast table, score, frame labels, file info, and the Lingo
  chunks, all of which are filed under the fixed "global" chunk id.

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
	"github.com/ausocean/director/tag"
)

// ReadKeyTable parses the container's KEY* chunk. It is a prerequisite for
// ReadConfig, ReadCastTable, ReadScore, and the optional chunk readers
// below, all of which are looked up through the key table.
func (c *Container) ReadKeyTable() error {
	entry, ok := c.mmap.FirstEntryWithTag(tag.Key)
	if !ok {
		return errNotFound("KEY* key table chunk")
	}
	r := c.readerAt(int64(entry.Pos))
	kt, err := readKeyTable(r)
	if err != nil {
		return err
	}
	c.keyTable = kt
	c.haveKeys = true
	return nil
}

// KeyTable returns the parsed key table. Call ReadKeyTable first.
func (c *Container) KeyTable() *KeyTable { return &c.keyTable }

// ReadConfig parses the movie configuration chunk (VWCF, falling back to
// the older DRCF tag), required before playback can size its window.
func (c *Container) ReadConfig() error {
	if err := c.readConfig(); err != nil {
		return err
	}
	c.haveConfig = true
	return nil
}

// Config returns the parsed movie configuration. Call ReadConfig first.
func (c *Container) Config() *Config { return &c.config }

// ReadCastTable parses the CAS* cast table, mapping logical cast member
// numbers to CASt chunk ids.
func (c *Container) ReadCastTable() error {
	id, ok := c.keyTable.FindIDOfChunkWithParent(tag.CAS_, globalID)
	if !ok {
		return errNotFound("CAS* cast table chunk")
	}
	r, entry, err := c.entryReader(id)
	if err != nil {
		return err
	}
	payload, err := readChunkPayload(r, tag.CAS_)
	if err != nil {
		return err
	}
	ct, err := readCastTable(payload)
	if err != nil {
		return err
	}
	_ = entry
	c.castTable = ct
	c.haveCast = true
	return nil
}

// CastTable returns the parsed cast table. Call ReadCastTable first.
func (c *Container) CastTable() *CastTable { return &c.castTable }

// ReadScore parses the VWSC score chunk: the frame-by-frame sprite
// channel timeline that drives playback.
func (c *Container) ReadScore() error {
	id, ok := c.keyTable.FindIDOfChunkWithParent(tag.VWSC, globalID)
	if !ok {
		return errNotFound("VWSC score chunk")
	}
	r, _, err := c.entryReader(id)
	if err != nil {
		return err
	}
	payload, err := readChunkPayload(r, tag.VWSC)
	if err != nil {
		return err
	}
	score, err := readScore(payload)
	if err != nil {
		return err
	}
	c.score = score
	c.haveScore = true
	return nil
}

// Score returns the parsed score. Call ReadScore first.
func (c *Container) Score() *Score { return &c.score }

// ReadFrameLabels parses the optional VWLB frame-label chunk. A missing
// chunk is not an error; FrameLabels is simply left empty.
func (c *Container) ReadFrameLabels() error {
	id, ok := c.keyTable.FindIDOfChunkWithParent(tag.VWLB, globalID)
	if !ok {
		return nil
	}
	r, _, err := c.entryReader(id)
	if err != nil {
		return err
	}
	payload, err := readChunkPayload(r, tag.VWLB)
	if err != nil {
		return err
	}
	labels, err := readFrameLabels(payload)
	if err != nil {
		return err
	}
	c.frameLabels = labels
	return nil
}

// FrameLabels returns the parsed frame labels, empty if none were present.
func (c *Container) FrameLabels() *FrameLabels { return &c.frameLabels }

// ReadFileInfo parses the optional VWFI file-info chunk.
func (c *Container) ReadFileInfo() error {
	id, ok := c.keyTable.FindIDOfChunkWithParent(tag.VWFI, globalID)
	if !ok {
		return nil
	}
	r, _, err := c.entryReader(id)
	if err != nil {
		return err
	}
	payload, err := readChunkPayload(r, tag.VWFI)
	if err != nil {
		return err
	}
	info, err := readFileInfo(payload)
	if err != nil {
		return err
	}
	c.fileInfo = &info
	return nil
}

// FileInfo returns the parsed file-info chunk, or nil if absent.
func (c *Container) FileInfo() *FileInfo { return c.fileInfo }

// ReadLingoContext parses the optional Lctx Lingo context chunk.
func (c *Container) ReadLingoContext() error {
	id, ok := c.keyTable.FindIDOfChunkWithParent(tag.Lctx, globalID)
	if !ok {
		return nil
	}
	r, _, err := c.entryReader(id)
	if err != nil {
		return err
	}
	payload, err := readChunkPayload(r, tag.Lctx)
	if err != nil {
		return err
	}
	ctx, err := readLingoContext(payload)
	if err != nil {
		return err
	}
	c.lingoContext = &ctx
	return nil
}

// LingoContext returns the parsed Lingo context, or nil if absent.
func (c *Container) LingoContext() *LingoContext { return c.lingoContext }

// ReadLingoNames parses the Lnam names chunk referenced by the Lingo
// context. Call ReadLingoContext first; if there is no context, or the
// referenced names chunk is missing, this is a no-op.
func (c *Container) ReadLingoNames() error {
	if c.lingoContext == nil {
		return nil
	}
	r, _, err := c.entryReader(c.lingoContext.NamesChunkID)
	if err != nil {
		if errs.IsNotFound(err) {
			return nil
		}
		return err
	}
	payload, err := readChunkPayload(r, tag.Lnam)
	if err != nil {
		return err
	}
	names, err := readLingoNames(payload)
	if err != nil {
		return err
	}
	c.lingoNames = &names
	return nil
}

// LingoNames returns the parsed Lingo names, or nil if absent.
func (c *Container) LingoNames() *LingoNames { return c.lingoNames }

// ReadLingoScript parses the optional Lscr Lingo script chunk.
func (c *Container) ReadLingoScript() error {
	id, ok := c.keyTable.FindIDOfChunkWithParent(tag.Lscr, globalID)
	if !ok {
		return nil
	}
	r, _, err := c.entryReader(id)
	if err != nil {
		return err
	}
	payload, err := readChunkPayload(r, tag.Lscr)
	if err != nil {
		return err
	}
	script, err := readLingoScript(payload)
	if err != nil {
		return err
	}
	c.lingoScript = &script
	return nil
}

// LingoScript returns the parsed Lingo script, or nil if absent.
func (c *Container) LingoScript() *LingoScript { return c.lingoScript }
