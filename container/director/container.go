/*
NAME
  container.go

DESCRIPTION
  container.go implements the RIFX/XFIR container open sequence: detecting
  byte order from the magic, following imap to mmap, and the lazy
  by-id/by-tag/by-parent chunk readers that every other chunk type is
  fetched through.

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

// globalID is the chunk id that "movie-wide" chunks such as the cast
// table, score, and config are filed under in the key table.
const globalID = 1024

func errNotFound(what string) error { return errs.NewNotFound(what) }

// Container is an opened RIFX/XFIR movie: a shallow parse of the imap/mmap
// indices plus whatever chunks have been explicitly requested so far.
// Requesting a chunk never mutates the backing buffer; Container itself
// only accumulates parsed copies of chunks it has already read.
type Container struct {
	buf []byte

	size       uint32
	typeTag    tag.Tag
	byteOrder  reader.ByteOrder
	version    Version
	imap       InitialMap
	mmap       MemoryMap
	keyTable   KeyTable
	haveKeys   bool
	config     Config
	haveConfig bool
	castTable  CastTable
	haveCast   bool
	score      Score
	haveScore  bool

	frameLabels  FrameLabels
	lingoContext *LingoContext
	lingoNames   *LingoNames
	lingoScript  *LingoScript
	fileInfo     *FileInfo
}

// Open parses the imap and mmap indices of a RIFX/XFIR container backed by
// buf. buf is never copied or mutated.
func Open(buf []byte) (*Container, error) {
	r := reader.New(buf)

	rawMagic, err := r.ReadBEU32()
	if err != nil {
		return nil, errs.Wrapf(err, "director: reading container magic")
	}
	magic := tag.Tag(rawMagic)

	var order reader.ByteOrder
	switch magic {
	case tag.RIFX:
		order = reader.BigEndian
	case tag.XFIR:
		order = reader.LittleEndian
	default:
		return nil, errs.NewInvalidData(magic.String(), 0, "not a RIFX or XFIR container")
	}
	r.SetByteOrder(order)

	size, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	rawType, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	imap, err := readInitialMap(r)
	if err != nil {
		return nil, err
	}

	if err := r.Seek(int64(imap.MmapOffset)); err != nil {
		return nil, err
	}
	mmap, err := readMemoryMap(r)
	if err != nil {
		return nil, err
	}

	return &Container{
		buf:       buf,
		size:      size,
		typeTag:   tag.Tag(rawType),
		byteOrder: order,
		version:   NewVersion(300),
		imap:      imap,
		mmap:      mmap,
	}, nil
}

// readerAt returns a fresh reader over the whole backing buffer, seeked to
// pos and carrying the container's byte order.
func (c *Container) readerAt(pos int64) *reader.Reader {
	r := reader.New(c.buf)
	r.SetByteOrder(c.byteOrder)
	// Seek cannot fail for a position within [0, len(buf)]; chunk entries
	// are validated against the memory map before this is called.
	_ = r.Seek(pos)
	return r
}

// TypeTag returns the container's type tag (e.g. MV93 for a movie).
func (c *Container) TypeTag() tag.Tag { return c.typeTag }

// Version returns the Director version the container reports.
func (c *Container) Version() Version { return c.version }

// Mmap returns the container's memory map.
func (c *Container) Mmap() *MemoryMap { return &c.mmap }

// Imap returns the container's initial map.
func (c *Container) Imap() InitialMap { return c.imap }

// entryReader seeks a fresh reader to the memory-map entry for id.
func (c *Container) entryReader(id uint32) (*reader.Reader, MemoryMapEntry, error) {
	entry, ok := c.mmap.EntryByIndex(id)
	if !ok {
		return nil, MemoryMapEntry{}, errNotFound("chunk id")
	}
	return c.readerAt(int64(entry.Pos)), entry, nil
}
