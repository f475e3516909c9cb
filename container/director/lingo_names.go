/*
NAME
  lingo_names.go

DESCRIPTION
  lingo_names.go decodes the Lnam chunk: the table of identifier strings
  (handler names, global and property variable names) that scripts refer
  to by index rather than by spelling them out in the bytecode.

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

// LingoNames is the Lnam chunk.
type LingoNames struct {
	Unknown0 uint32
	Unknown1 uint32
	Len1     uint32
	Len2     uint32
	Names    []string
}

func readLingoNames(payload *reader.Reader) (LingoNames, error) {
	var n LingoNames
	var err error

	n.Unknown0, err = payload.ReadBEU32()
	if err != nil {
		return LingoNames{}, err
	}
	n.Unknown1, err = payload.ReadBEU32()
	if err != nil {
		return LingoNames{}, err
	}
	n.Len1, err = payload.ReadBEU32()
	if err != nil {
		return LingoNames{}, err
	}
	n.Len2, err = payload.ReadBEU32()
	if err != nil {
		return LingoNames{}, err
	}

	namesOffset, err := payload.ReadBEU16()
	if err != nil {
		return LingoNames{}, err
	}
	namesCount, err := payload.ReadBEU16()
	if err != nil {
		return LingoNames{}, err
	}

	if err := payload.Seek(int64(namesOffset)); err != nil {
		return LingoNames{}, err
	}

	names := make([]string, 0, namesCount)
	for i := 0; i < int(namesCount); i++ {
		s, err := payload.ReadPascalString()
		if err != nil {
			return LingoNames{}, err
		}
		names = append(names, s)
	}
	n.Names = names

	return n, nil
}

// Name returns the identifier string at index, if present.
func (n *LingoNames) Name(index uint16) (string, bool) {
	if int(index) >= len(n.Names) {
		return "", false
	}
	return n.Names[index], true
}
