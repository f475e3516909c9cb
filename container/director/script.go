/*
NAME
  script.go

DESCRIPTION
  script.go decodes a script cast member's small inline record: just the
  script type (score, movie, or parent). The behavior itself lives in the
  separate Lscr chunk, read through LingoScript.

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
	"github.com/ausocean/director/reader"
	"github.com/ausocean/director/tag"
)

// ScriptType classifies a script cast member.
type ScriptType uint16

const (
	ScriptTypeScore  ScriptType = 1
	ScriptTypeMovie  ScriptType = 3
	ScriptTypeParent ScriptType = 7
)

func newScriptType(v uint16) (ScriptType, error) {
	switch ScriptType(v) {
	case ScriptTypeScore, ScriptTypeMovie, ScriptTypeParent:
		return ScriptType(v), nil
	default:
		return 0, errs.NewInvalidData(tag.CASt.String(), 0, "unknown script type")
	}
}

// Script is a script cast member: a reference to the behavior held in the
// movie's Lscr/Lctx/Lnam chunks.
type Script struct {
	Type ScriptType
}

// readScript reads a script cast member record. Unlike the other cast
// member variants, this is read from the CASt chunk's outer reader rather
// than the data-section sub-reader: the type field sits just past the
// flags byte, outside the bounds the data_len field describes.
func readScript(r *reader.Reader) (Script, error) {
	v, err := r.ReadBEU16()
	if err != nil {
		return Script{}, err
	}
	t, err := newScriptType(v)
	if err != nil {
		return Script{}, err
	}
	return Script{Type: t}, nil
}
