package domain

// PendingClearanceForPlace marks a place whose latest revision still awaits
// clearance by an authorized organization.
type PendingClearanceForPlace struct {
	PlaceID             ID
	CreatedAt           TimestampMs
	LastClearedRevision *Revision
}

// ClearanceForPlace clears a place up to the given revision. A nil revision
// clears the current one.
type ClearanceForPlace struct {
	PlaceID         ID
	ClearedRevision *Revision
}
