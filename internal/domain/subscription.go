package domain

// BboxSubscription notifies a user about changes within a map area.
type BboxSubscription struct {
	ID        ID
	UserEmail Email
	Bbox      MapBbox
}
