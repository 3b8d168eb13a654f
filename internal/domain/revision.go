package domain

// Revision is a monotonically increasing version number of a place.
type Revision uint64

// InitialRevision is the revision assigned on creation.
const InitialRevision Revision = 0

// Next returns the succeeding revision.
func (r Revision) Next() Revision { return r + 1 }
