package storage

import (
	"context"

	"openfairdb/internal/domain"
)

// Stores are interface-driven to keep the handlers testable and to allow
// swapping in-memory, file-based, or external persistence without rewiring
// business code.

// PlaceStore keeps places with their full revision and moderation history.
type PlaceStore interface {
	// Create adds a new place with an initial revision and status log.
	Create(ctx context.Context, place domain.Place, activity domain.ActivityLog) error
	// Update appends a new revision. The revision number must follow the
	// stored one or ErrVersionConflict is returned.
	Update(ctx context.Context, place domain.Place, activity domain.ActivityLog) error
	// Get returns the current merged view and its moderation status.
	Get(ctx context.Context, id domain.ID) (domain.Place, domain.ReviewStatus, error)
	// History returns the full audit trail, newest revision first.
	History(ctx context.Context, id domain.ID) (domain.PlaceHistory, error)
	// Review applies a status to the current revisions of the given places
	// and reports how many were changed.
	Review(ctx context.Context, ids []domain.ID, status domain.ReviewStatus, activity domain.ActivityLog) (int, error)
	// All returns the current revisions of every place that still exists.
	All(ctx context.Context) ([]domain.Place, error)
	// Count returns the number of places that still exist.
	Count(ctx context.Context) (uint64, error)
	// TagFrequencies counts tag occurrences across current revisions.
	TagFrequencies(ctx context.Context) ([]domain.TagFrequency, error)
}

// EventStore keeps events; unlike places they are mutable in place.
type EventStore interface {
	Save(ctx context.Context, event domain.Event) error
	Get(ctx context.Context, id domain.ID) (domain.Event, error)
	Delete(ctx context.Context, id domain.ID) error
	All(ctx context.Context) ([]domain.Event, error)
}

// UserStore keeps accounts keyed by email. The numeric id exists for the
// legacy login cookie only.
type UserStore interface {
	Save(ctx context.Context, user domain.User) error
	FindByEmail(ctx context.Context, email domain.Email) (domain.User, error)
	// FindByID resolves the legacy numeric id of the login cookie.
	FindByID(ctx context.Context, id int64) (domain.User, error)
	// NumericID returns the legacy numeric id for an email.
	NumericID(ctx context.Context, email domain.Email) (int64, error)
	Delete(ctx context.Context, email domain.Email) error
}

// RatingStore keeps ratings and their comments.
type RatingStore interface {
	SaveRating(ctx context.Context, rating domain.Rating) error
	SaveComment(ctx context.Context, comment domain.Comment) error
	FindRating(ctx context.Context, id domain.ID) (domain.Rating, error)
	RatingsForPlace(ctx context.Context, placeID domain.ID) ([]domain.Rating, error)
	CommentsForRating(ctx context.Context, ratingID domain.ID) ([]domain.Comment, error)
}

// SubscriptionStore keeps bbox subscriptions keyed by user email.
type SubscriptionStore interface {
	Save(ctx context.Context, sub domain.BboxSubscription) error
	ListByEmail(ctx context.Context, email domain.Email) ([]domain.BboxSubscription, error)
	DeleteByEmail(ctx context.Context, email domain.Email) error
}

// ClearanceStore tracks places whose latest revisions await clearance by an
// authorized organization.
type ClearanceStore interface {
	Add(ctx context.Context, pending domain.PendingClearanceForPlace) error
	ListPending(ctx context.Context) ([]domain.PendingClearanceForPlace, error)
	// Clear removes the pending entries for the given places and reports how
	// many were cleared.
	Clear(ctx context.Context, clearances []domain.ClearanceForPlace) (int, error)
}
