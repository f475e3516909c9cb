package director

import (
	"testing"

	"github.com/ausocean/director/reader"
)

func beU16(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

// buildLingoContextChunk assembles a big-endian Lctx payload with the given
// entries, placing the entry table immediately after the fixed header.
func buildLingoContextChunk(entries []LingoContextEntry) []byte {
	const headerSize = 42

	var buf []byte
	buf = append(buf, beU32(0)...)                       // unknown0
	buf = append(buf, beU32(0)...)                       // unknown1
	buf = append(buf, beU32(uint32(len(entries)))...)    // entry_count
	buf = append(buf, beU32(uint32(len(entries)))...)    // entry_count_2
	buf = append(buf, beU16(headerSize)...)               // entries_offset
	buf = append(buf, beU16(0)...)                       // unknown2
	buf = append(buf, beU32(0)...)                       // unknown3
	buf = append(buf, beU32(0)...)                       // unknown4
	buf = append(buf, beU32(0)...)                       // unknown5
	buf = append(buf, beU32(99)...)                      // names_chunk_id
	buf = append(buf, beU16(uint16(len(entries)))...)    // valid_count
	buf = append(buf, beU16(0)...)                       // flags
	buf = append(buf, beU16(0xABCD)...)                  // free_pointer

	for _, e := range entries {
		buf = append(buf, beU32(e.Unknown0)...)
		buf = append(buf, beU32(e.scriptID)...)
		buf = append(buf, beU16(e.Unknown1)...)
		buf = append(buf, beU16(e.Unknown2)...)
	}

	return buf
}

func TestReadLingoContextFieldsSurviveReservedGap(t *testing.T) {
	entries := []LingoContextEntry{
		{Unknown0: 1, scriptID: 5, Unknown1: 2, Unknown2: 3},
		{Unknown0: 0, scriptID: lingoContextAbsent, Unknown1: 0, Unknown2: 0},
	}
	buf := buildLingoContextChunk(entries)

	r := reader.New(buf)
	r.SetByteOrder(reader.BigEndian)
	c, err := readLingoContext(r)
	if err != nil {
		t.Fatalf("readLingoContext: %v", err)
	}

	if c.NamesChunkID != 99 {
		t.Errorf("NamesChunkID = %d, want 99 (reserved gap misread would corrupt this)", c.NamesChunkID)
	}
	if c.ValidCount != uint16(len(entries)) {
		t.Errorf("ValidCount = %d, want %d", c.ValidCount, len(entries))
	}
	if c.FreePointer != 0xABCD {
		t.Errorf("FreePointer = %#x, want 0xabcd", c.FreePointer)
	}
	if len(c.Entries) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(c.Entries), len(entries))
	}

	if id, ok := c.Entries[0].ScriptID(); !ok || id != 5 {
		t.Errorf("Entries[0].ScriptID() = %d, %v, want 5, true", id, ok)
	}
	if _, ok := c.Entries[1].ScriptID(); ok {
		t.Error("Entries[1].ScriptID() should report false for the sentinel value")
	}
}
