package domain

import pkgerrors "openfairdb/pkg/errors"

// ReviewStatus is the moderation state of a place revision.
//
// Usage: construct via ParseReviewStatus at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type ReviewStatus string

const (
	ReviewStatusArchived  ReviewStatus = "archived"
	ReviewStatusConfirmed ReviewStatus = "confirmed"
	ReviewStatusCreated   ReviewStatus = "created"
	ReviewStatusRejected  ReviewStatus = "rejected"
)

var validReviewStatuses = map[ReviewStatus]bool{
	ReviewStatusArchived:  true,
	ReviewStatusConfirmed: true,
	ReviewStatusCreated:   true,
	ReviewStatusRejected:  true,
}

// ParseReviewStatus constructs a ReviewStatus from external input.
func ParseReviewStatus(s string) (ReviewStatus, error) {
	st := ReviewStatus(s)
	if !st.IsValid() {
		return "", pkgerrors.Newf(pkgerrors.CodeBadRequest, "invalid review status %q", s)
	}
	return st, nil
}

// IsValid checks membership in the enumerated set.
func (s ReviewStatus) IsValid() bool { return validReviewStatuses[s] }

func (s ReviewStatus) String() string { return string(s) }

// Exists reports whether a place with this status is still present (archived
// and rejected places are hidden from regular search).
func (s ReviewStatus) Exists() bool {
	return s == ReviewStatusCreated || s == ReviewStatusConfirmed
}

// ReviewStatusLog is one entry in the moderation history of a place.
type ReviewStatusLog struct {
	Revision Revision
	Activity ActivityLog
	Status   ReviewStatus
}
