/*
NAME
  cast_table.go

DESCRIPTION
  cast_table.go decodes the CAS* chunk: the ordered list of CASt chunk ids
  for every logical cast member number in the movie.

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

	"github.com/ausocean/director/reader"
)

// castTableEntry associates a logical 1-based cast member number with the
// chunk id of its CASt chunk.
type castTableEntry struct {
	memberNumber int16
	chunkID      uint32
}

// CastTable is the CAS* chunk.
type CastTable struct {
	entries []castTableEntry
}

func readCastTable(payload *reader.Reader) (CastTable, error) {
	var entries []castTableEntry
	memberNumber := int16(1)

	for {
		chunkID, err := payload.ReadBEU32()
		if err != nil {
			break
		}
		if chunkID != 0 {
			entries = append(entries, castTableEntry{memberNumber: memberNumber, chunkID: chunkID})
		}
		memberNumber++
	}

	return CastTable{entries: entries}, nil
}

// CastMemberChunkID returns the CASt chunk id for the given logical
// member number, if a non-empty slot exists for it.
func (ct *CastTable) CastMemberChunkID(memberNumber int16) (uint32, bool) {
	i := sort.Search(len(ct.entries), func(i int) bool { return ct.entries[i].memberNumber >= memberNumber })
	if i < len(ct.entries) && ct.entries[i].memberNumber == memberNumber {
		return ct.entries[i].chunkID, true
	}
	return 0, false
}

// String renders the cast table as a table, for diagnostic use.
func (ct *CastTable) String() string {
	var sb strings.Builder
	sb.WriteString("Cast Table:\n")
	fmt.Fprintf(&sb, "%8s | %8s\n", "#", "id")
	for _, e := range ct.entries {
		fmt.Fprintf(&sb, "%8d | %8d\n", e.memberNumber, e.chunkID)
	}
	return sb.String()
}
