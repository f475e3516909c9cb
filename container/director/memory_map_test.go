package director

import (
	"encoding/binary"
	"testing"

	"github.com/ausocean/director/reader"
	"github.com/ausocean/director/tag"
)

func beU32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func leU32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func leU16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

// buildMemoryMapChunk assembles a native-order mmap chunk with the given
// entries, framed with its tag+length header.
func buildMemoryMapChunk(entries []MemoryMapEntry) []byte {
	var body []byte
	body = append(body, leU16(24)...)               // header size
	body = append(body, leU16(20)...)                // entry size
	body = append(body, leU32(uint32(len(entries)))...) // chunk count max
	body = append(body, leU32(uint32(len(entries)))...) // chunk count used
	body = append(body, leU32(0)...)                 // junk_head
	body = append(body, leU32(0)...)                 // junk_head2
	body = append(body, leU32(0xFFFFFFFF)...)        // free_head

	for _, e := range entries {
		body = append(body, leU32(uint32(e.Tag))...)
		body = append(body, leU32(e.Len)...)
		body = append(body, leU32(e.Pos)...)
		body = append(body, leU16(e.Flags)...)
		body = append(body, leU16(0)...) // unused
		body = append(body, leU32(0)...) // next free, unused
	}

	var chunk []byte
	chunk = append(chunk, leU32(uint32(tag.Mmap))...)
	chunk = append(chunk, leU32(uint32(len(body)))...)
	chunk = append(chunk, body...)
	return chunk
}

func TestReadMemoryMapRoundTrips(t *testing.T) {
	entries := []MemoryMapEntry{
		{ID: 0, Tag: tag.Free, Len: 0, Pos: 0, Flags: 0},
		{ID: 1, Tag: tag.VWCF, Len: 100, Pos: 12, Flags: 0},
		{ID: 2, Tag: tag.CAS_, Len: 40, Pos: 112, Flags: 0},
	}
	buf := buildMemoryMapChunk(entries)

	r := reader.New(buf)
	mm, err := readMemoryMap(r)
	if err != nil {
		t.Fatalf("readMemoryMap: %v", err)
	}

	if len(mm.Entries) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(mm.Entries), len(entries))
	}
	for i, want := range entries {
		got := mm.Entries[i]
		if got != want {
			t.Errorf("entry %d = %+v, want %+v", i, got, want)
		}
	}

	if e, ok := mm.FirstEntryWithTag(tag.CAS_); !ok || e.ID != 2 {
		t.Errorf("FirstEntryWithTag(CAS_) = %+v, %v", e, ok)
	}
	if _, ok := mm.FirstEntryWithTag(tag.VWSC); ok {
		t.Errorf("FirstEntryWithTag(VWSC) found an entry that doesn't exist")
	}
}

func TestReadMemoryMapRejectsIDMismatch(t *testing.T) {
	entries := []MemoryMapEntry{
		{ID: 0, Tag: tag.Free},
		{ID: 5, Tag: tag.VWCF}, // wrong: should be ID 1
	}
	buf := buildMemoryMapChunk(entries)

	r := reader.New(buf)
	if _, err := readMemoryMap(r); err == nil {
		t.Fatal("expected an error for an id/index mismatch, got nil")
	}
}

func TestEntryByIndexOutOfRange(t *testing.T) {
	mm := MemoryMap{Entries: []MemoryMapEntry{{ID: 0}}}
	if _, ok := mm.EntryByIndex(5); ok {
		t.Error("EntryByIndex(5) should report false for an out-of-range id")
	}
}
