package models

import "time"

// CandidateFilter is the coarse pre-filter handed to the offer store.
// The exact distance and time predicate runs after it.
type CandidateFilter struct {
	PickupCells  []string
	DropoffCells []string
	Seats        int
	RiderID      string
	// DepartsBy bounds the offer departure. No stop can be reached before the
	// offer departs, so offers leaving after trip departure + window never match.
	DepartsBy time.Time
	// After continues a scan below the last row of the previous page
	After *CandidateCursor
	Limit int
}

// CandidateCursor is a keyset position in created_at DESC, id DESC order
type CandidateCursor struct {
	CreatedAt time.Time
	ID        string
}
