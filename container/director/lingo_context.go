/*
NAME
  lingo_context.go

DESCRIPTION
  lingo_context.go decodes the Lctx chunk: the table mapping each script
  cast member to the compiled script chunk implementing it, plus a
  reference to the Lnam chunk holding the names those scripts use.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package director

import (
	"github.com/ausocean/director/reader"
)

// lingoContextAbsent is the sentinel script id meaning "this context slot
// has no associated script".
const lingoContextAbsent = 0xFFFFFFFF

// LingoContextEntry associates one script cast member with its compiled
// script chunk id.
type LingoContextEntry struct {
	Unknown0 uint32
	scriptID uint32
	Unknown1 uint16
	Unknown2 uint16
}

// ScriptID returns the entry's script chunk id, or false if the slot is
// unused.
func (e LingoContextEntry) ScriptID() (uint32, bool) {
	if e.scriptID == lingoContextAbsent {
		return 0, false
	}
	return e.scriptID, true
}

// LingoContext is the Lctx chunk.
type LingoContext struct {
	Unknown0     uint32
	Unknown1     uint32
	EntryCount   uint32
	EntryCount2  uint32
	NamesChunkID uint32
	ValidCount   uint16
	Flags        uint16
	FreePointer  uint16
	Entries      []LingoContextEntry
}

func readLingoContext(payload *reader.Reader) (LingoContext, error) {
	var c LingoContext
	var err error

	c.Unknown0, err = payload.ReadBEU32()
	if err != nil {
		return LingoContext{}, err
	}
	c.Unknown1, err = payload.ReadBEU32()
	if err != nil {
		return LingoContext{}, err
	}
	c.EntryCount, err = payload.ReadBEU32()
	if err != nil {
		return LingoContext{}, err
	}
	c.EntryCount2, err = payload.ReadBEU32()
	if err != nil {
		return LingoContext{}, err
	}
	entriesOffset, err := payload.ReadBEU16()
	if err != nil {
		return LingoContext{}, err
	}
	if _, err := payload.ReadBEU16(); err != nil { // entry size, fixed and unused
		return LingoContext{}, err
	}
	if _, err := payload.ReadBEU32(); err != nil { // unknown3
		return LingoContext{}, err
	}
	if _, err := payload.ReadBEU32(); err != nil { // unknown4
		return LingoContext{}, err
	}
	if _, err := payload.ReadBEU32(); err != nil { // unknown5
		return LingoContext{}, err
	}
	c.NamesChunkID, err = payload.ReadBEU32()
	if err != nil {
		return LingoContext{}, err
	}
	c.ValidCount, err = payload.ReadBEU16()
	if err != nil {
		return LingoContext{}, err
	}
	c.Flags, err = payload.ReadBEU16()
	if err != nil {
		return LingoContext{}, err
	}
	c.FreePointer, err = payload.ReadBEU16()
	if err != nil {
		return LingoContext{}, err
	}

	if err := payload.Seek(int64(entriesOffset)); err != nil {
		return LingoContext{}, err
	}

	entries := make([]LingoContextEntry, 0, c.EntryCount)
	for i := uint32(0); i < c.EntryCount; i++ {
		var e LingoContextEntry
		e.Unknown0, err = payload.ReadBEU32()
		if err != nil {
			return LingoContext{}, err
		}
		e.scriptID, err = payload.ReadBEU32()
		if err != nil {
			return LingoContext{}, err
		}
		e.Unknown1, err = payload.ReadBEU16()
		if err != nil {
			return LingoContext{}, err
		}
		e.Unknown2, err = payload.ReadBEU16()
		if err != nil {
			return LingoContext{}, err
		}
		entries = append(entries, e)
	}
	c.Entries = entries

	return c, nil
}
