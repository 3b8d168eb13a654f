package boundary

import (
	"encoding/json"
	"fmt"

	"openfairdb/internal/domain"
)

// RatingValue serializes transparently as its underlying integer.
type RatingValue int8

// AvgRatingValue serializes transparently as its underlying float.
type AvgRatingValue float64

// RatingContext with its fixed snake_case wire spellings.
type RatingContext string

const (
	RatingContextDiversity    RatingContext = "diversity"
	RatingContextRenewable    RatingContext = "renewable"
	RatingContextFairness     RatingContext = "fairness"
	RatingContextHumanity     RatingContext = "humanity"
	RatingContextTransparency RatingContext = "transparency"
	RatingContextSolidarity   RatingContext = "solidarity"
)

// UnmarshalJSON rejects tokens outside the enumerated set.
func (c *RatingContext) UnmarshalJSON(b []byte) error {
	var tok string
	if err := json.Unmarshal(b, &tok); err != nil {
		return err
	}
	switch RatingContext(tok) {
	case RatingContextDiversity, RatingContextRenewable, RatingContextFairness,
		RatingContextHumanity, RatingContextTransparency, RatingContextSolidarity:
		*c = RatingContext(tok)
		return nil
	}
	return fmt.Errorf("unknown rating context %q", tok)
}

// RatingContextFromDomain converts a context for output.
func RatingContextFromDomain(c domain.RatingContext) RatingContext {
	return RatingContext(c.String())
}

// ToDomain converts back; total for the enumerated set.
func (c RatingContext) ToDomain() domain.RatingContext {
	return domain.RatingContext(c)
}

// Comment is a textual justification attached to a rating. Created is a
// second-precision timestamp like the other legacy fields.
type Comment struct {
	ID      string `json:"id"`
	Created int64  `json:"created"`
	Text    string `json:"text"`
}

// CommentFromDomain converts a comment for output.
func CommentFromDomain(c domain.Comment) Comment {
	return Comment{
		ID:      c.ID.String(),
		Created: c.Created.Seconds(),
		Text:    c.Text,
	}
}

// Rating is one score for a place with its comments embedded.
type Rating struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Created  int64         `json:"created"`
	Value    RatingValue   `json:"value"`
	Context  RatingContext `json:"context"`
	Comments []Comment     `json:"comments"`
	Source   string        `json:"source"`
}

// RatingFromDomain combines a rating with its comments for output.
func RatingFromDomain(r domain.Rating, comments []domain.Comment) Rating {
	wireComments := make([]Comment, 0, len(comments))
	for _, c := range comments {
		wireComments = append(wireComments, CommentFromDomain(c))
	}
	var source string
	if r.Source != nil {
		source = *r.Source
	}
	return Rating{
		ID:       r.ID.String(),
		Title:    r.Title,
		Created:  r.Created.Seconds(),
		Value:    RatingValue(r.Value),
		Context:  RatingContextFromDomain(r.Context),
		Comments: wireComments,
		Source:   source,
	}
}

// NewPlaceRating is the payload for rating a place, optionally with an
// initial comment.
type NewPlaceRating struct {
	Entry   string        `json:"entry"`
	Title   string        `json:"title"`
	Value   RatingValue   `json:"value"`
	Context RatingContext `json:"context"`
	Comment string        `json:"comment"`
	Source  *string       `json:"source,omitempty"`
}

// EntrySearchRatings aggregates the per-context averages of a search hit.
type EntrySearchRatings struct {
	Total        AvgRatingValue `json:"total"`
	Diversity    AvgRatingValue `json:"diversity"`
	Fairness     AvgRatingValue `json:"fairness"`
	Humanity     AvgRatingValue `json:"humanity"`
	Renewable    AvgRatingValue `json:"renewable"`
	Solidarity   AvgRatingValue `json:"solidarity"`
	Transparency AvgRatingValue `json:"transparency"`
}

// EntrySearchRatingsFromDomain converts aggregated ratings for output.
func EntrySearchRatingsFromDomain(a domain.AvgRatings) EntrySearchRatings {
	return EntrySearchRatings{
		Total:        AvgRatingValue(a.Total),
		Diversity:    AvgRatingValue(a.Diversity),
		Fairness:     AvgRatingValue(a.Fairness),
		Humanity:     AvgRatingValue(a.Humanity),
		Renewable:    AvgRatingValue(a.Renewable),
		Solidarity:   AvgRatingValue(a.Solidarity),
		Transparency: AvgRatingValue(a.Transparency),
	}
}

// ToDomain converts back; this direction is total.
func (r EntrySearchRatings) ToDomain() domain.AvgRatings {
	return domain.AvgRatings{
		Total:        domain.AvgRatingValue(r.Total),
		Diversity:    domain.AvgRatingValue(r.Diversity),
		Fairness:     domain.AvgRatingValue(r.Fairness),
		Humanity:     domain.AvgRatingValue(r.Humanity),
		Renewable:    domain.AvgRatingValue(r.Renewable),
		Solidarity:   domain.AvgRatingValue(r.Solidarity),
		Transparency: domain.AvgRatingValue(r.Transparency),
	}
}
