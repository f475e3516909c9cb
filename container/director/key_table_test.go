package director

import (
	"testing"

	"github.com/ausocean/director/reader"
	"github.com/ausocean/director/tag"
)

func buildKeyTableChunk(entries []KeyTableEntry) []byte {
	var body []byte
	body = append(body, leU16(12)...)
	body = append(body, leU16(12)...)
	body = append(body, leU32(uint32(len(entries)))...)
	body = append(body, leU32(uint32(len(entries)))...)

	for _, e := range entries {
		body = append(body, leU32(e.ID)...)
		body = append(body, leU32(e.Parent)...)
		body = append(body, leU32(uint32(e.Tag))...)
	}

	var chunk []byte
	chunk = append(chunk, leU32(uint32(tag.Key))...)
	chunk = append(chunk, leU32(uint32(len(body)))...)
	chunk = append(chunk, body...)
	return chunk
}

func TestKeyTableLookup(t *testing.T) {
	entries := []KeyTableEntry{
		{ID: 5, Parent: 10, Tag: tag.BITD},
		{ID: 3, Parent: 1024, Tag: tag.CAS_},
		{ID: 4, Parent: 1024, Tag: tag.VWCF},
	}
	buf := buildKeyTableChunk(entries)

	r := reader.New(buf)
	kt, err := readKeyTable(r)
	if err != nil {
		t.Fatalf("readKeyTable: %v", err)
	}

	id, ok := kt.FindIDOfChunkWithParent(tag.VWCF, 1024)
	if !ok || id != 4 {
		t.Errorf("FindIDOfChunkWithParent(VWCF, 1024) = %d, %v, want 4, true", id, ok)
	}
	if _, ok := kt.FindIDOfChunkWithParent(tag.VWSC, 1024); ok {
		t.Error("FindIDOfChunkWithParent(VWSC, 1024) should not find an entry")
	}

	withParent := kt.ChunksWithParent(1024)
	if len(withParent) != 2 {
		t.Errorf("ChunksWithParent(1024) returned %d entries, want 2", len(withParent))
	}
}

func TestKeyTableRejectsSentinelValues(t *testing.T) {
	entries := []KeyTableEntry{
		{ID: 0xFFFFFFFF, Parent: 1024, Tag: tag.CAS_},
	}
	buf := buildKeyTableChunk(entries)

	r := reader.New(buf)
	if _, err := readKeyTable(r); err == nil {
		t.Fatal("expected an error for a sentinel id, got nil")
	}
}

func TestKeyTableRejectsUnsortedEntries(t *testing.T) {
	entries := []KeyTableEntry{
		{ID: 1, Parent: 1024, Tag: tag.VWCF},
		{ID: 2, Parent: 10, Tag: tag.BITD}, // out of order: parent decreases
	}
	buf := buildKeyTableChunk(entries)

	r := reader.New(buf)
	if _, err := readKeyTable(r); err == nil {
		t.Fatal("expected an error for unsorted entries, got nil")
	}
}
