/*
NAME
  file_info.go

DESCRIPTION
  file_info.go decodes the optional VWFI chunk, a variable-length-list
  record holding authoring metadata: who last changed and created the
  movie, the original authoring directory, and cast preload settings.

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

// FileInfo is the VWFI chunk.
type FileInfo struct {
	Unk0          uint32
	Unk1          uint32
	Flags         uint32
	ScriptID      uint32
	HasScriptID   bool
	ChangedBy     string
	CreatedBy     string
	OrigDirectory string
	Preload       uint16
	HasPreload    bool
}

func readFileInfo(payload *reader.Reader) (FileInfo, error) {
	vl, err := readVListU32(payload)
	if err != nil {
		return FileInfo{}, err
	}

	var info FileInfo
	info.Unk0, _ = vl.FixedNumber(0)
	info.Unk1, _ = vl.FixedNumber(1)
	info.Flags, _ = vl.FixedNumber(2)
	info.ScriptID, info.HasScriptID = vl.FixedNumber(3)

	if s, ok, err := vl.TryGetAsPascalString(1); err != nil {
		return FileInfo{}, err
	} else if ok {
		info.ChangedBy = s
	}
	if s, ok, err := vl.TryGetAsPascalString(2); err != nil {
		return FileInfo{}, err
	} else if ok {
		info.CreatedBy = s
	}
	if s, ok, err := vl.TryGetAsPascalString(3); err != nil {
		return FileInfo{}, err
	} else if ok {
		info.OrigDirectory = s
	}
	if r := vl.Get(4); r != nil {
		v, err := r.ReadU16()
		if err != nil {
			return FileInfo{}, err
		}
		info.Preload = v
		info.HasPreload = true
	}

	return info, nil
}
