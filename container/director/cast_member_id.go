/*
NAME
  cast_member_id.go

DESCRIPTION
  cast_member_id.go defines CastMemberID, the reference by which sprite
  channels and palette frames name a cast member: a logical member number
  plus an optional cast library number for movies with more than one
  internal cast.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package director

import "fmt"

// CastMemberID identifies a cast member by its logical member number and,
// for movies with multiple internal casts, the cast library it belongs
// to.
type CastMemberID struct {
	ID   int16
	Cast uint16
	// HasCast reports whether Cast is meaningful. Most movies have a
	// single implicit cast and never set it.
	HasCast bool
}

// NewCastMemberID builds a CastMemberID with no explicit cast library.
func NewCastMemberID(id int16) CastMemberID {
	return CastMemberID{ID: id}
}

// NewCastMemberIDWithCast builds a CastMemberID naming an explicit cast
// library.
func NewCastMemberIDWithCast(id int16, cast uint16) CastMemberID {
	return CastMemberID{ID: id, Cast: cast, HasCast: true}
}

// String renders the id, e.g. "   12 (3)" or "   12 (none)".
func (c CastMemberID) String() string {
	if c.HasCast {
		return fmt.Sprintf("%5d (%d)", c.ID, c.Cast)
	}
	return fmt.Sprintf("%5d (none)", c.ID)
}
