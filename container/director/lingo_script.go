/*
NAME
  lingo_script.go

DESCRIPTION
  lingo_script.go decodes the Lscr chunk: one script's compiled-bytecode
  table of contents (handler, property, global, and literal tables).
  Playback parses this structure but does not interpret the bytecode it
  points to; Lingo execution is out of scope.

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

// LingoHandler describes one compiled handler (a Lingo procedure or
// method) within a script.
type LingoHandler struct {
	NameID          uint16
	VectorPos       uint16
	CompiledLen     uint32
	CompiledOffset  uint32
	ArgumentCount   uint16
	ArgumentOffset  uint32
	LocalsCount     uint16
	LocalsOffset    uint32
	GlobalsCount    uint16
	GlobalsOffset   uint32
	Unknown1        uint32
	Unknown2        uint16
	LineCount       uint16
	LineOffset      uint32
}

// LingoScript is the Lscr chunk: a script's table of contents, not its
// interpreted behavior.
type LingoScript struct {
	TotalLength   uint32
	TotalLength2  uint32
	HeaderLength  uint16
	ScriptNumber  uint16
	ParentNumber  uint16
	ScriptFlags   uint32
	CastID        uint32
	FactoryNameID uint16

	PropertyNameIDs []uint16
	GlobalNameIDs   []uint16
	Handlers        []LingoHandler
}

func readLingoScript(payload *reader.Reader) (LingoScript, error) {
	var s LingoScript

	if err := payload.Seek(8); err != nil {
		return LingoScript{}, err
	}

	var err error
	s.TotalLength, err = payload.ReadBEU32()
	if err != nil {
		return LingoScript{}, err
	}
	s.TotalLength2, err = payload.ReadBEU32()
	if err != nil {
		return LingoScript{}, err
	}
	s.HeaderLength, err = payload.ReadBEU16()
	if err != nil {
		return LingoScript{}, err
	}
	s.ScriptNumber, err = payload.ReadBEU16()
	if err != nil {
		return LingoScript{}, err
	}
	if _, err := payload.ReadBEU16(); err != nil { // unknown at offset 20
		return LingoScript{}, err
	}
	s.ParentNumber, err = payload.ReadBEU16()
	if err != nil {
		return LingoScript{}, err
	}

	if err := payload.Seek(38); err != nil {
		return LingoScript{}, err
	}

	s.ScriptFlags, err = payload.ReadBEU32()
	if err != nil {
		return LingoScript{}, err
	}
	if _, err := payload.ReadBEU16(); err != nil { // unknown at offset 42
		return LingoScript{}, err
	}
	s.CastID, err = payload.ReadBEU32()
	if err != nil {
		return LingoScript{}, err
	}
	s.FactoryNameID, err = payload.ReadBEU16()
	if err != nil {
		return LingoScript{}, err
	}

	handlerVectorsCount, err := payload.ReadBEU16()
	if err != nil {
		return LingoScript{}, err
	}
	if _, err := payload.ReadBEU32(); err != nil { // handler_vectors_offset, unused
		return LingoScript{}, err
	}
	if _, err := payload.ReadBEU32(); err != nil { // handler_vectors_size, unused
		return LingoScript{}, err
	}
	_ = handlerVectorsCount

	propertiesCount, err := payload.ReadBEU16()
	if err != nil {
		return LingoScript{}, err
	}
	propertiesOffset, err := payload.ReadBEU32()
	if err != nil {
		return LingoScript{}, err
	}

	globalsCount, err := payload.ReadBEU16()
	if err != nil {
		return LingoScript{}, err
	}
	globalsOffset, err := payload.ReadBEU32()
	if err != nil {
		return LingoScript{}, err
	}

	handlersCount, err := payload.ReadBEU16()
	if err != nil {
		return LingoScript{}, err
	}
	handlersOffset, err := payload.ReadBEU32()
	if err != nil {
		return LingoScript{}, err
	}

	if _, err := payload.ReadBEU16(); err != nil { // literals_count, unused
		return LingoScript{}, err
	}
	if _, err := payload.ReadBEU32(); err != nil { // literals_offset, unused
		return LingoScript{}, err
	}
	if _, err := payload.ReadBEU16(); err != nil { // literals_data_count, unused
		return LingoScript{}, err
	}
	if _, err := payload.ReadBEU32(); err != nil { // literals_data_offset, unused
		return LingoScript{}, err
	}

	if err := payload.Seek(int64(propertiesOffset)); err != nil {
		return LingoScript{}, err
	}
	props := make([]uint16, 0, propertiesCount)
	for i := 0; i < int(propertiesCount); i++ {
		v, err := payload.ReadBEU16()
		if err != nil {
			return LingoScript{}, err
		}
		props = append(props, v)
	}
	s.PropertyNameIDs = props

	if err := payload.Seek(int64(globalsOffset)); err != nil {
		return LingoScript{}, err
	}
	globals := make([]uint16, 0, globalsCount)
	for i := 0; i < int(globalsCount); i++ {
		v, err := payload.ReadBEU16()
		if err != nil {
			return LingoScript{}, err
		}
		globals = append(globals, v)
	}
	s.GlobalNameIDs = globals

	if err := payload.Seek(int64(handlersOffset)); err != nil {
		return LingoScript{}, err
	}
	handlers := make([]LingoHandler, 0, handlersCount)
	for i := 0; i < int(handlersCount); i++ {
		var h LingoHandler
		h.NameID, err = payload.ReadBEU16()
		if err != nil {
			return LingoScript{}, err
		}
		h.VectorPos, err = payload.ReadBEU16()
		if err != nil {
			return LingoScript{}, err
		}
		h.CompiledLen, err = payload.ReadBEU32()
		if err != nil {
			return LingoScript{}, err
		}
		h.CompiledOffset, err = payload.ReadBEU32()
		if err != nil {
			return LingoScript{}, err
		}
		h.ArgumentCount, err = payload.ReadBEU16()
		if err != nil {
			return LingoScript{}, err
		}
		h.ArgumentOffset, err = payload.ReadBEU32()
		if err != nil {
			return LingoScript{}, err
		}
		h.LocalsCount, err = payload.ReadBEU16()
		if err != nil {
			return LingoScript{}, err
		}
		h.LocalsOffset, err = payload.ReadBEU32()
		if err != nil {
			return LingoScript{}, err
		}
		h.GlobalsCount, err = payload.ReadBEU16()
		if err != nil {
			return LingoScript{}, err
		}
		h.GlobalsOffset, err = payload.ReadBEU32()
		if err != nil {
			return LingoScript{}, err
		}
		h.Unknown1, err = payload.ReadBEU32()
		if err != nil {
			return LingoScript{}, err
		}
		h.Unknown2, err = payload.ReadBEU16()
		if err != nil {
			return LingoScript{}, err
		}
		h.LineCount, err = payload.ReadBEU16()
		if err != nil {
			return LingoScript{}, err
		}
		h.LineOffset, err = payload.ReadBEU32()
		if err != nil {
			return LingoScript{}, err
		}
		handlers = append(handlers, h)
	}
	s.Handlers = handlers

	return s, nil
}
