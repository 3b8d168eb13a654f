package domain

import "time"

// PlaceRoot is the immutable identity of a place; everything else lives on
// its revisions.
type PlaceRoot struct {
	ID      ID
	License string
}

// PlaceRevision is one versioned snapshot of a place.
type PlaceRevision struct {
	Revision     Revision
	Created      Activity
	Title        string
	Description  string
	Location     Location
	Contact      *Contact
	OpeningHours *string
	FoundedOn    *time.Time
	Links        *Links
	Tags         []string
}

// Place is the merged view of a root with its current revision, the shape
// most callers work with.
type Place struct {
	ID           ID
	License      string
	Revision     Revision
	Created      Activity
	Title        string
	Description  string
	Location     Location
	Contact      *Contact
	OpeningHours *string
	FoundedOn    *time.Time
	Links        *Links
	Tags         []string
}

// CurrentRevision extracts the revision snapshot from the merged view.
func (p Place) CurrentRevision() PlaceRevision {
	return PlaceRevision{
		Revision:     p.Revision,
		Created:      p.Created,
		Title:        p.Title,
		Description:  p.Description,
		Location:     p.Location,
		Contact:      p.Contact,
		OpeningHours: p.OpeningHours,
		FoundedOn:    p.FoundedOn,
		Links:        p.Links,
		Tags:         p.Tags,
	}
}

// Merge combines a root with one of its revisions.
func Merge(root PlaceRoot, rev PlaceRevision) Place {
	return Place{
		ID:           root.ID,
		License:      root.License,
		Revision:     rev.Revision,
		Created:      rev.Created,
		Title:        rev.Title,
		Description:  rev.Description,
		Location:     rev.Location,
		Contact:      rev.Contact,
		OpeningHours: rev.OpeningHours,
		FoundedOn:    rev.FoundedOn,
		Links:        rev.Links,
		Tags:         rev.Tags,
	}
}

// RevisionLog pairs a revision with its moderation history.
type RevisionLog struct {
	Revision   PlaceRevision
	StatusLogs []ReviewStatusLog
}

// PlaceHistory is the full audit trail of a place, newest revision first.
type PlaceHistory struct {
	Place     PlaceRoot
	Revisions []RevisionLog
}
