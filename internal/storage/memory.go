package storage

import (
	"context"
	"sync"

	"openfairdb/internal/domain"
	pkgerrors "openfairdb/pkg/errors"
)

// In-memory stores keep the initial implementation lightweight and testable.
// They intentionally favor clarity over performance.

type placeRecord struct {
	root      domain.PlaceRoot
	revisions []domain.RevisionLog // oldest first
}

func (r *placeRecord) current() *domain.RevisionLog {
	return &r.revisions[len(r.revisions)-1]
}

func (r *placeRecord) currentStatus() domain.ReviewStatus {
	logs := r.current().StatusLogs
	return logs[len(logs)-1].Status
}

type InMemoryPlaceStore struct {
	mu     sync.RWMutex
	places map[domain.ID]*placeRecord
}

func NewInMemoryPlaceStore() *InMemoryPlaceStore {
	return &InMemoryPlaceStore{places: make(map[domain.ID]*placeRecord)}
}

func (s *InMemoryPlaceStore) Create(_ context.Context, place domain.Place, activity domain.ActivityLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.places[place.ID]; ok {
		return pkgerrors.Newf(pkgerrors.CodeConflict, "place %s already exists", place.ID)
	}
	rev := place.CurrentRevision()
	s.places[place.ID] = &placeRecord{
		root: domain.PlaceRoot{ID: place.ID, License: place.License},
		revisions: []domain.RevisionLog{{
			Revision: rev,
			StatusLogs: []domain.ReviewStatusLog{{
				Revision: rev.Revision,
				Activity: activity,
				Status:   domain.ReviewStatusCreated,
			}},
		}},
	}
	return nil
}

func (s *InMemoryPlaceStore) Update(_ context.Context, place domain.Place, activity domain.ActivityLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.places[place.ID]
	if !ok {
		return ErrNotFound
	}
	if place.Revision != record.current().Revision.Revision.Next() {
		return ErrVersionConflict
	}
	rev := place.CurrentRevision()
	record.revisions = append(record.revisions, domain.RevisionLog{
		Revision: rev,
		StatusLogs: []domain.ReviewStatusLog{{
			Revision: rev.Revision,
			Activity: activity,
			Status:   domain.ReviewStatusCreated,
		}},
	})
	return nil
}

func (s *InMemoryPlaceStore) Get(_ context.Context, id domain.ID) (domain.Place, domain.ReviewStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.places[id]
	if !ok {
		return domain.Place{}, "", ErrNotFound
	}
	return domain.Merge(record.root, record.current().Revision), record.currentStatus(), nil
}

func (s *InMemoryPlaceStore) History(_ context.Context, id domain.ID) (domain.PlaceHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.places[id]
	if !ok {
		return domain.PlaceHistory{}, ErrNotFound
	}
	revisions := make([]domain.RevisionLog, 0, len(record.revisions))
	for i := len(record.revisions) - 1; i >= 0; i-- {
		revisions = append(revisions, record.revisions[i])
	}
	return domain.PlaceHistory{Place: record.root, Revisions: revisions}, nil
}

func (s *InMemoryPlaceStore) Review(_ context.Context, ids []domain.ID, status domain.ReviewStatus, activity domain.ActivityLog) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := 0
	for _, id := range ids {
		record, ok := s.places[id]
		if !ok {
			continue
		}
		current := record.current()
		if record.currentStatus() == status {
			continue
		}
		current.StatusLogs = append(current.StatusLogs, domain.ReviewStatusLog{
			Revision: current.Revision.Revision,
			Activity: activity,
			Status:   status,
		})
		changed++
	}
	return changed, nil
}

func (s *InMemoryPlaceStore) All(_ context.Context) ([]domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	places := make([]domain.Place, 0, len(s.places))
	for _, record := range s.places {
		if !record.currentStatus().Exists() {
			continue
		}
		places = append(places, domain.Merge(record.root, record.current().Revision))
	}
	return places, nil
}

func (s *InMemoryPlaceStore) Count(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count uint64
	for _, record := range s.places {
		if record.currentStatus().Exists() {
			count++
		}
	}
	return count, nil
}

func (s *InMemoryPlaceStore) TagFrequencies(_ context.Context) ([]domain.TagFrequency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]uint64)
	for _, record := range s.places {
		if !record.currentStatus().Exists() {
			continue
		}
		for _, tag := range record.current().Revision.Tags {
			counts[tag]++
		}
	}
	frequencies := make([]domain.TagFrequency, 0, len(counts))
	for tag, count := range counts {
		frequencies = append(frequencies, domain.TagFrequency{Tag: tag, Count: count})
	}
	return frequencies, nil
}

type InMemoryEventStore struct {
	mu     sync.RWMutex
	events map[domain.ID]domain.Event
}

func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{events: make(map[domain.ID]domain.Event)}
}

func (s *InMemoryEventStore) Save(_ context.Context, event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.ID] = event
	return nil
}

func (s *InMemoryEventStore) Get(_ context.Context, id domain.ID) (domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if event, ok := s.events[id]; ok {
		return event, nil
	}
	return domain.Event{}, ErrNotFound
}

func (s *InMemoryEventStore) Delete(_ context.Context, id domain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return ErrNotFound
	}
	delete(s.events, id)
	return nil
}

func (s *InMemoryEventStore) All(_ context.Context) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]domain.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, event)
	}
	return events, nil
}

type InMemoryUserStore struct {
	mu     sync.RWMutex
	users  map[domain.Email]domain.User
	ids    map[domain.Email]int64
	emails map[int64]domain.Email
	nextID int64
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		users:  make(map[domain.Email]domain.User),
		ids:    make(map[domain.Email]int64),
		emails: make(map[int64]domain.Email),
		nextID: 1,
	}
}

func (s *InMemoryUserStore) Save(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[user.Email]; !ok {
		s.ids[user.Email] = s.nextID
		s.emails[s.nextID] = user.Email
		s.nextID++
	}
	s.users[user.Email] = user
	return nil
}

func (s *InMemoryUserStore) FindByEmail(_ context.Context, email domain.Email) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[email]; ok {
		return user, nil
	}
	return domain.User{}, ErrNotFound
}

func (s *InMemoryUserStore) FindByID(_ context.Context, id int64) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email, ok := s.emails[id]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	return s.users[email], nil
}

func (s *InMemoryUserStore) NumericID(_ context.Context, email domain.Email) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id, ok := s.ids[email]; ok {
		return id, nil
	}
	return 0, ErrNotFound
}

func (s *InMemoryUserStore) Delete(_ context.Context, email domain.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[email]; !ok {
		return ErrNotFound
	}
	delete(s.users, email)
	if id, ok := s.ids[email]; ok {
		delete(s.emails, id)
		delete(s.ids, email)
	}
	return nil
}

type InMemoryRatingStore struct {
	mu       sync.RWMutex
	ratings  map[domain.ID]domain.Rating
	byPlace  map[domain.ID][]domain.ID
	comments map[domain.ID][]domain.Comment
}

func NewInMemoryRatingStore() *InMemoryRatingStore {
	return &InMemoryRatingStore{
		ratings:  make(map[domain.ID]domain.Rating),
		byPlace:  make(map[domain.ID][]domain.ID),
		comments: make(map[domain.ID][]domain.Comment),
	}
}

func (s *InMemoryRatingStore) SaveRating(_ context.Context, rating domain.Rating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ratings[rating.ID]; !ok {
		s.byPlace[rating.PlaceID] = append(s.byPlace[rating.PlaceID], rating.ID)
	}
	s.ratings[rating.ID] = rating
	return nil
}

func (s *InMemoryRatingStore) SaveComment(_ context.Context, comment domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ratings[comment.RatingID]; !ok {
		return ErrNotFound
	}
	s.comments[comment.RatingID] = append(s.comments[comment.RatingID], comment)
	return nil
}

func (s *InMemoryRatingStore) FindRating(_ context.Context, id domain.ID) (domain.Rating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rating, ok := s.ratings[id]; ok {
		return rating, nil
	}
	return domain.Rating{}, ErrNotFound
}

func (s *InMemoryRatingStore) RatingsForPlace(_ context.Context, placeID domain.ID) ([]domain.Rating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byPlace[placeID]
	ratings := make([]domain.Rating, 0, len(ids))
	for _, id := range ids {
		ratings = append(ratings, s.ratings[id])
	}
	return ratings, nil
}

func (s *InMemoryRatingStore) CommentsForRating(_ context.Context, ratingID domain.ID) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Comment(nil), s.comments[ratingID]...), nil
}

type InMemorySubscriptionStore struct {
	mu   sync.RWMutex
	subs map[domain.ID]domain.BboxSubscription
}

func NewInMemorySubscriptionStore() *InMemorySubscriptionStore {
	return &InMemorySubscriptionStore{subs: make(map[domain.ID]domain.BboxSubscription)}
}

func (s *InMemorySubscriptionStore) Save(_ context.Context, sub domain.BboxSubscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[sub.ID] = sub
	return nil
}

func (s *InMemorySubscriptionStore) ListByEmail(_ context.Context, email domain.Email) ([]domain.BboxSubscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var subs []domain.BboxSubscription
	for _, sub := range s.subs {
		if sub.UserEmail == email {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

func (s *InMemorySubscriptionStore) DeleteByEmail(_ context.Context, email domain.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sub := range s.subs {
		if sub.UserEmail == email {
			delete(s.subs, id)
		}
	}
	return nil
}

type InMemoryClearanceStore struct {
	mu      sync.RWMutex
	pending map[domain.ID]domain.PendingClearanceForPlace
}

func NewInMemoryClearanceStore() *InMemoryClearanceStore {
	return &InMemoryClearanceStore{pending: make(map[domain.ID]domain.PendingClearanceForPlace)}
}

func (s *InMemoryClearanceStore) Add(_ context.Context, pending domain.PendingClearanceForPlace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// A later revision replaces the pending entry but keeps the original
	// creation time and last cleared revision.
	if existing, ok := s.pending[pending.PlaceID]; ok {
		pending.CreatedAt = existing.CreatedAt
		pending.LastClearedRevision = existing.LastClearedRevision
	}
	s.pending[pending.PlaceID] = pending
	return nil
}

func (s *InMemoryClearanceStore) ListPending(_ context.Context) ([]domain.PendingClearanceForPlace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pending := make([]domain.PendingClearanceForPlace, 0, len(s.pending))
	for _, p := range s.pending {
		pending = append(pending, p)
	}
	return pending, nil
}

func (s *InMemoryClearanceStore) Clear(_ context.Context, clearances []domain.ClearanceForPlace) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cleared := 0
	for _, c := range clearances {
		if _, ok := s.pending[c.PlaceID]; !ok {
			continue
		}
		delete(s.pending, c.PlaceID)
		cleared++
	}
	return cleared, nil
}
