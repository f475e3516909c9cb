/*
NAME
  vlist.go

DESCRIPTION
  vlist.go decodes the variable-length-list encoding shared by the VWFI
  and CASt chunks: a fixed run of numeric header fields followed by a
  monotonically increasing offset table and a sequence of variable-length
  entries.

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
)

// vlistItemKind selects the width of the fixed numeric header entries that
// precede a VList's offset table.
type vlistItemKind int

const (
	vlistU16 vlistItemKind = iota
	vlistU32
)

// vlist is a decoded variable-length list: a handful of fixed numeric
// fields followed by a sequence of variable-length byte ranges, each
// addressable as a sub-reader.
type vlist struct {
	numbers    []uint32
	entryStart int64
	offsets    []uint32
	r          *reader.Reader
}

func readVListU16(r *reader.Reader) (*vlist, error) { return readVList(r, vlistU16) }
func readVListU32(r *reader.Reader) (*vlist, error) { return readVList(r, vlistU32) }

func readVList(r *reader.Reader, kind vlistItemKind) (*vlist, error) {
	offset, err := r.ReadBEU32()
	if err != nil {
		return nil, errs.Wrapf(err, "vlist: reading table offset")
	}
	if offset < 4 {
		return nil, errs.NewInvalidData("vlist", r.Pos(), "table offset less than 4")
	}

	itemSize := uint32(2)
	if kind == vlistU32 {
		itemSize = 4
	}
	if offset%itemSize != 0 {
		return nil, errs.NewInvalidData("vlist", r.Pos(), "table offset not a multiple of the item size")
	}

	numbersCount := (offset - 4) / itemSize
	numbers := make([]uint32, 0, numbersCount)
	for i := uint32(0); i < numbersCount; i++ {
		var v uint32
		var err error
		if kind == vlistU16 {
			var v16 uint16
			v16, err = r.ReadBEU16()
			v = uint32(v16)
		} else {
			v, err = r.ReadBEU32()
		}
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, v)
	}

	entryCount, err := r.ReadBEU16()
	if err != nil {
		return nil, err
	}

	offsets := make([]uint32, 0, int(entryCount)+1)
	for i := 0; i < int(entryCount)+1; i++ {
		off, err := r.ReadBEU32()
		if err != nil {
			return nil, err
		}
		offsets = append(offsets, off)
	}

	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, errs.NewInvalidData("vlist", r.Pos(), "offset table is not monotonically increasing")
		}
	}

	entryStart := r.Pos()

	return &vlist{numbers: numbers, entryStart: entryStart, offsets: offsets, r: r}, nil
}

// FixedNumber returns the index-th fixed numeric header field, if present.
func (v *vlist) FixedNumber(index int) (uint32, bool) {
	if index < 0 || index >= len(v.numbers) {
		return 0, false
	}
	return v.numbers[index], true
}

// Get returns a sub-reader over the index-th variable-length entry, or nil
// if the index is out of range or the entry is zero length.
func (v *vlist) Get(index int) *reader.Reader {
	if index+1 >= len(v.offsets) {
		return nil
	}
	start := v.offsets[index]
	size := v.offsets[index+1] - start
	if size == 0 {
		return nil
	}
	sub, err := v.r.SubRange(v.entryStart+int64(start), int64(size))
	if err != nil {
		return nil
	}
	return sub
}

// TryGetAsPascalString returns the index-th entry decoded as a Pascal
// string, or "", false if the entry is absent.
func (v *vlist) TryGetAsPascalString(index int) (string, bool, error) {
	r := v.Get(index)
	if r == nil {
		return "", false, nil
	}
	s, err := r.ReadPascalString()
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// Len returns the number of variable-length entries.
func (v *vlist) Len() int {
	if len(v.offsets) == 0 {
		return 0
	}
	return len(v.offsets) - 1
}
