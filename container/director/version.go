/*
NAME
  version.go

DESCRIPTION
  version.go translates a movie's raw on-disk version word into the
  human-readable "major.minor" Director release it corresponds to, using
  the same lookup table Director itself has used since version 3.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package director

import "fmt"

// versionTableEntry maps a raw on-disk version threshold to the human
// "major*100+minor" release number current as of that threshold.
type versionTableEntry struct {
	raw   uint16
	human uint16
}

// versionTable is ordered ascending by raw version. NewVersion keeps the
// last (highest) entry whose raw threshold is met.
var versionTable = []versionTableEntry{
	{0x404, 300},
	{0x405, 310},
	{0x45B, 400},
	{0x45D, 404},
	{0x4B1, 500},
	{0x4C2, 600},
	{0x4C8, 700},
	{0x582, 800},
	{0x6A4, 850},
	{0x73B, 1000},
	{0x781, 1100},
	{0x782, 1150},
	{0x79F, 1200},
}

// Version is a movie or projector's Director release, as derived from its
// raw on-disk version word.
type Version struct {
	raw   uint16
	human uint16
}

// NewVersion builds a Version from a raw on-disk version word.
func NewVersion(raw uint16) Version {
	v := Version{raw: raw, human: versionTable[0].human}
	for _, e := range versionTable {
		if raw >= e.raw {
			v.human = e.human
		}
	}
	return v
}

// Major returns the release's major version number, e.g. 12 for Director 12.
func (v Version) Major() uint16 { return v.human / 100 }

// Minor returns the release's minor version number.
func (v Version) Minor() uint16 { return v.human % 100 }

// Raw returns the raw on-disk version word Version was built from.
func (v Version) Raw() uint16 { return v.raw }

// String renders the version as e.g. "12.00 (0x79f)".
func (v Version) String() string {
	return fmt.Sprintf("%d.%02d (0x%x)", v.Major(), v.Minor(), v.raw)
}
