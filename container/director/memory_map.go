/*
NAME
  memory_map.go

DESCRIPTION
  memory_map.go decodes the imap and mmap chunks: the container-wide index
  from chunk id to its on-disk tag, offset, and length.

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
	"strings"

	"go.uber.org/multierr"

	"github.com/ausocean/director/errs"
	"github.com/ausocean/director/reader"
	"github.com/ausocean/director/tag"
)

// InitialMap is the imap chunk: a pointer to the mmap chunk.
type InitialMap struct {
	MmapVersion uint32
	MmapOffset  uint32
}

func readInitialMap(r *reader.Reader) (InitialMap, error) {
	payload, err := readChunkPayload(r, tag.Imap)
	if err != nil {
		return InitialMap{}, err
	}

	var m InitialMap
	m.MmapVersion, err = payload.ReadU32()
	if err != nil {
		return InitialMap{}, err
	}
	m.MmapOffset, err = payload.ReadU32()
	if err != nil {
		return InitialMap{}, err
	}
	return m, nil
}

// MemoryMapEntry describes one slot in the memory map: the chunk's tag,
// on-disk position, and length.
type MemoryMapEntry struct {
	ID    uint32
	Tag   tag.Tag
	Len   uint32
	Pos   uint32
	Flags uint16
}

func readMemoryMapEntry(r *reader.Reader, id uint32) (MemoryMapEntry, error) {
	rawTag, err := r.ReadU32()
	if err != nil {
		return MemoryMapEntry{}, err
	}
	length, err := r.ReadU32()
	if err != nil {
		return MemoryMapEntry{}, err
	}
	pos, err := r.ReadU32()
	if err != nil {
		return MemoryMapEntry{}, err
	}
	flags, err := r.ReadU16()
	if err != nil {
		return MemoryMapEntry{}, err
	}
	if _, err := r.ReadU16(); err != nil { // unused
		return MemoryMapEntry{}, err
	}
	if _, err := r.ReadU32(); err != nil { // next free entry, unused here
		return MemoryMapEntry{}, err
	}

	return MemoryMapEntry{ID: id, Tag: tag.Tag(rawTag), Len: length, Pos: pos, Flags: flags}, nil
}

// MemoryMap is the mmap chunk: the dense array of every chunk slot in the
// container, indexed by chunk id.
type MemoryMap struct {
	HeaderSize     uint16
	EntrySize      uint16
	ChunkCountMax  uint32
	ChunkCountUsed uint32
	Entries        []MemoryMapEntry
}

func readMemoryMap(r *reader.Reader) (MemoryMap, error) {
	payload, err := readChunkPayload(r, tag.Mmap)
	if err != nil {
		return MemoryMap{}, err
	}

	var m MemoryMap
	m.HeaderSize, err = payload.ReadU16()
	if err != nil {
		return MemoryMap{}, err
	}
	m.EntrySize, err = payload.ReadU16()
	if err != nil {
		return MemoryMap{}, err
	}
	m.ChunkCountMax, err = payload.ReadU32()
	if err != nil {
		return MemoryMap{}, err
	}
	m.ChunkCountUsed, err = payload.ReadU32()
	if err != nil {
		return MemoryMap{}, err
	}
	if _, err := payload.ReadU32(); err != nil { // junk_head
		return MemoryMap{}, err
	}
	if _, err := payload.ReadU32(); err != nil { // junk_head2
		return MemoryMap{}, err
	}
	if _, err := payload.ReadU32(); err != nil { // free_head
		return MemoryMap{}, err
	}

	m.Entries = make([]MemoryMapEntry, 0, m.ChunkCountUsed)
	for id := uint32(0); id < m.ChunkCountUsed; id++ {
		entry, err := readMemoryMapEntry(payload, id)
		if err != nil {
			return MemoryMap{}, err
		}
		m.Entries = append(m.Entries, entry)
	}

	var violations error
	for i, e := range m.Entries {
		if uint32(i) != e.ID {
			violations = multierr.Append(violations, fmt.Errorf("entry %d has id %d", i, e.ID))
		}
	}
	if violations != nil {
		return MemoryMap{}, errs.NewInvalidData(tag.Mmap.String(), r.Pos(), violations.Error())
	}

	return m, nil
}

// EntryByIndex returns the memory-map entry for the given chunk id.
func (m *MemoryMap) EntryByIndex(id uint32) (MemoryMapEntry, bool) {
	if int(id) >= len(m.Entries) {
		return MemoryMapEntry{}, false
	}
	return m.Entries[id], true
}

// FirstEntryWithTag returns the first memory-map entry whose tag matches.
func (m *MemoryMap) FirstEntryWithTag(t tag.Tag) (MemoryMapEntry, bool) {
	for _, e := range m.Entries {
		if e.Tag == t {
			return e, true
		}
	}
	return MemoryMapEntry{}, false
}

// String renders the memory map as a table, for diagnostic use.
func (m *MemoryMap) String() string {
	var sb strings.Builder
	sb.WriteString("Memory Map:\n")
	fmt.Fprintf(&sb, "%8s | %4s | %11s | %11s\n", "id", "tag", "offset", "length")
	for _, e := range m.Entries {
		fmt.Fprintf(&sb, "%8d | %4s | %11d | %11d\n", e.ID, e.Tag, e.Pos, e.Len)
	}
	return sb.String()
}
