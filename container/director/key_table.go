/*
NAME
  key_table.go

DESCRIPTION
  key_table.go decodes the KEY* chunk: the parent/child relationship index
  that lets a reader find, for example, the bitmap data chunk that belongs
  to a particular cast member chunk.

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
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/ausocean/director/errs"
	"github.com/ausocean/director/reader"
	"github.com/ausocean/director/tag"
)

// KeyTableEntry associates a chunk id with the id of its parent chunk and
// its own tag.
type KeyTableEntry struct {
	ID     uint32
	Parent uint32
	Tag    tag.Tag
}

// KeyTable is the KEY* chunk: a (parent, tag) -> id index, sorted by
// (parent, tag) so that lookups and parent-range scans can binary search.
type KeyTable struct {
	HeaderSize   uint16
	EntrySize    uint16
	MaxKeyCount  uint32
	UsedKeyCount uint32
	Entries      []KeyTableEntry
}

func readKeyTable(r *reader.Reader) (KeyTable, error) {
	payload, err := readChunkPayload(r, tag.Key)
	if err != nil {
		return KeyTable{}, err
	}

	var kt KeyTable
	kt.HeaderSize, err = payload.ReadU16()
	if err != nil {
		return KeyTable{}, err
	}
	kt.EntrySize, err = payload.ReadU16()
	if err != nil {
		return KeyTable{}, err
	}
	kt.MaxKeyCount, err = payload.ReadU32()
	if err != nil {
		return KeyTable{}, err
	}
	kt.UsedKeyCount, err = payload.ReadU32()
	if err != nil {
		return KeyTable{}, err
	}

	kt.Entries = make([]KeyTableEntry, 0, kt.UsedKeyCount)
	for i := uint32(0); i < kt.UsedKeyCount; i++ {
		id, err := payload.ReadU32()
		if err != nil {
			return KeyTable{}, err
		}
		parent, err := payload.ReadU32()
		if err != nil {
			return KeyTable{}, err
		}
		rawTag, err := payload.ReadU32()
		if err != nil {
			return KeyTable{}, err
		}
		kt.Entries = append(kt.Entries, KeyTableEntry{ID: id, Parent: parent, Tag: tag.Tag(rawTag)})
	}

	var violations error
	if !sort.SliceIsSorted(kt.Entries, func(i, j int) bool {
		a, b := kt.Entries[i], kt.Entries[j]
		if a.Parent != b.Parent {
			return a.Parent < b.Parent
		}
		return a.Tag < b.Tag
	}) {
		violations = multierr.Append(violations, fmt.Errorf("entries not sorted by (parent, tag)"))
	}
	for i, e := range kt.Entries {
		if e.ID == 0xFFFFFFFF || e.Parent == 0xFFFFFFFF {
			violations = multierr.Append(violations, fmt.Errorf("entry %d has sentinel id or parent", i))
		}
	}
	if violations != nil {
		return KeyTable{}, errs.NewInvalidData(tag.Key.String(), r.Pos(), violations.Error())
	}

	return kt, nil
}

// FindIDOfChunkWithParent returns the chunk id of the first entry whose
// (parent, tag) matches, if any.
func (kt *KeyTable) FindIDOfChunkWithParent(t tag.Tag, parent uint32) (uint32, bool) {
	i := sort.Search(len(kt.Entries), func(i int) bool {
		e := kt.Entries[i]
		if e.Parent != parent {
			return e.Parent > parent
		}
		return e.Tag >= t
	})
	if i < len(kt.Entries) && kt.Entries[i].Parent == parent && kt.Entries[i].Tag == t {
		return kt.Entries[i].ID, true
	}
	return 0, false
}

// ChunksWithParent returns every entry whose Parent equals parent, in
// (parent, tag) order.
func (kt *KeyTable) ChunksWithParent(parent uint32) []KeyTableEntry {
	begin := sort.Search(len(kt.Entries), func(i int) bool { return kt.Entries[i].Parent >= parent })
	end := sort.Search(len(kt.Entries), func(i int) bool { return kt.Entries[i].Parent >= parent+1 })
	return kt.Entries[begin:end]
}

// String renders the key table as a table, for diagnostic use.
func (kt *KeyTable) String() string {
	var sb strings.Builder
	sb.WriteString("Key Table:\n")
	fmt.Fprintf(&sb, "%8s | %8s | %6s | %4s\n", "#", "id", "parent", "tag")
	for i, e := range kt.Entries {
		fmt.Fprintf(&sb, "%8d | %8d | %6d | %4s\n", i, e.ID, e.Parent, e.Tag)
	}
	return sb.String()
}
