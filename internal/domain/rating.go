package domain

import pkgerrors "openfairdb/pkg/errors"

// RatingValue is a single rating score. Wrapping is a type-level discipline;
// any value is accepted on construction.
type RatingValue int8

// Rating scores range from -1 (strong disagreement) to 2 (strong
// endorsement).
const (
	MinRatingValue RatingValue = -1
	MaxRatingValue RatingValue = 2
)

// ParseRatingValue constructs a RatingValue from external input.
func ParseRatingValue(v int8) (RatingValue, error) {
	r := RatingValue(v)
	if r < MinRatingValue || r > MaxRatingValue {
		return 0, pkgerrors.Newf(pkgerrors.CodeBadRequest, "rating value %d out of range", v)
	}
	return r, nil
}

// AvgRatingValue is an aggregated rating score.
type AvgRatingValue float64

// RatingContext is the aspect of a place a rating refers to.
//
// Usage: construct via ParseRatingContext at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type RatingContext string

const (
	RatingContextDiversity    RatingContext = "diversity"
	RatingContextRenewable    RatingContext = "renewable"
	RatingContextFairness     RatingContext = "fairness"
	RatingContextHumanity     RatingContext = "humanity"
	RatingContextTransparency RatingContext = "transparency"
	RatingContextSolidarity   RatingContext = "solidarity"
)

var validRatingContexts = map[RatingContext]bool{
	RatingContextDiversity:    true,
	RatingContextRenewable:    true,
	RatingContextFairness:     true,
	RatingContextHumanity:     true,
	RatingContextTransparency: true,
	RatingContextSolidarity:   true,
}

// ParseRatingContext constructs a RatingContext from external input.
func ParseRatingContext(s string) (RatingContext, error) {
	c := RatingContext(s)
	if !validRatingContexts[c] {
		return "", pkgerrors.Newf(pkgerrors.CodeBadRequest, "invalid rating context %q", s)
	}
	return c, nil
}

func (c RatingContext) String() string { return string(c) }

// Rating is one user's score for a place in one context.
type Rating struct {
	ID      ID
	PlaceID ID
	Created TimestampMs
	Title   string
	Value   RatingValue
	Context RatingContext
	Source  *string
}

// Comment is a textual justification attached to a rating.
type Comment struct {
	ID       ID
	RatingID ID
	Created  TimestampMs
	Text     string
}

// AvgRatings aggregates the per-context averages of a place.
type AvgRatings struct {
	Total        AvgRatingValue
	Diversity    AvgRatingValue
	Fairness     AvgRatingValue
	Humanity     AvgRatingValue
	Renewable    AvgRatingValue
	Solidarity   AvgRatingValue
	Transparency AvgRatingValue
}

// AvgRatingsOf computes the per-context averages of a set of ratings. Total
// is the mean over all ratings regardless of context; contexts without any
// rating average to zero.
func AvgRatingsOf(ratings []Rating) AvgRatings {
	if len(ratings) == 0 {
		return AvgRatings{}
	}
	sums := make(map[RatingContext]float64)
	counts := make(map[RatingContext]int)
	var total float64
	for _, r := range ratings {
		sums[r.Context] += float64(r.Value)
		counts[r.Context]++
		total += float64(r.Value)
	}
	avg := func(c RatingContext) AvgRatingValue {
		if counts[c] == 0 {
			return 0
		}
		return AvgRatingValue(sums[c] / float64(counts[c]))
	}
	return AvgRatings{
		Total:        AvgRatingValue(total / float64(len(ratings))),
		Diversity:    avg(RatingContextDiversity),
		Fairness:     avg(RatingContextFairness),
		Humanity:     avg(RatingContextHumanity),
		Renewable:    avg(RatingContextRenewable),
		Solidarity:   avg(RatingContextSolidarity),
		Transparency: avg(RatingContextTransparency),
	}
}
