package boundary

import (
	"encoding/json"
	"fmt"

	"openfairdb/internal/domain"
)

// Address is a postal address; serialized only with the parts that are set.
type Address struct {
	Street  *string `json:"street,omitempty"`
	Zip     *string `json:"zip,omitempty"`
	City    *string `json:"city,omitempty"`
	Country *string `json:"country,omitempty"`
	State   *string `json:"state,omitempty"`
}

// IsZero reports whether every part is absent; empty addresses are omitted
// from enclosing documents.
func (a Address) IsZero() bool {
	return a.Street == nil && a.Zip == nil && a.City == nil && a.Country == nil && a.State == nil
}

// AddressFromDomain converts an address for output.
func AddressFromDomain(a domain.Address) Address {
	return Address{
		Street:  a.Street,
		Zip:     a.Zip,
		City:    a.City,
		Country: a.Country,
		State:   a.State,
	}
}

// ToDomain converts back; this direction is total.
func (a Address) ToDomain() domain.Address {
	return domain.Address{
		Street:  a.Street,
		Zip:     a.Zip,
		City:    a.City,
		Country: a.Country,
		State:   a.State,
	}
}

// Contact holds contact details. The name does not count towards emptiness,
// so a name-only contact is still serialized inline.
type Contact struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

func (c Contact) IsZero() bool {
	return c.Email == nil && c.Phone == nil
}

// ContactFromDomain converts a contact for output.
func ContactFromDomain(c domain.Contact) Contact {
	return Contact{
		Name:  c.Name,
		Email: emailToString(c.Email),
		Phone: c.Phone,
	}
}

// ToDomain converts back; this direction is total.
func (c Contact) ToDomain() domain.Contact {
	return domain.Contact{
		Name:  c.Name,
		Email: stringToEmail(c.Email),
		Phone: c.Phone,
	}
}

// CustomLink is a user-provided link. The URL travels as a string and is
// parsed on ingestion.
type CustomLink struct {
	URL         string  `json:"url"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CustomLinkFromDomain converts a link for output.
func CustomLinkFromDomain(l domain.CustomLink) CustomLink {
	var u string
	if l.URL != nil {
		u = l.URL.String()
	}
	return CustomLink{URL: u, Title: l.Title, Description: l.Description}
}

// ToDomain parses the URL; malformed input is a bad-request error.
func (l CustomLink) ToDomain() (domain.CustomLink, error) {
	u, err := parseURL(l.URL, "custom link")
	if err != nil {
		return domain.CustomLink{}, err
	}
	return domain.CustomLink{URL: u, Title: l.Title, Description: l.Description}, nil
}

func customLinksFromDomain(links []domain.CustomLink) []CustomLink {
	if len(links) == 0 {
		return nil
	}
	out := make([]CustomLink, 0, len(links))
	for _, l := range links {
		out = append(out, CustomLinkFromDomain(l))
	}
	return out
}

func customLinksToDomain(links []CustomLink) ([]domain.CustomLink, error) {
	if len(links) == 0 {
		return nil, nil
	}
	out := make([]domain.CustomLink, 0, len(links))
	for _, l := range links {
		dl, err := l.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, dl)
	}
	return out, nil
}

// Links collects the web links of a place under their compact wire keys.
type Links struct {
	Homepage  *string      `json:"www,omitempty"`
	Image     *string      `json:"img,omitempty"`
	ImageHref *string      `json:"img_href,omitempty"`
	Custom    []CustomLink `json:"custom,omitempty"`
}

func (l Links) IsZero() bool {
	return l.Homepage == nil && l.Image == nil && l.ImageHref == nil && len(l.Custom) == 0
}

// LinksFromDomain converts links for output.
func LinksFromDomain(l domain.Links) Links {
	return Links{
		Homepage:  urlToString(l.Homepage),
		Image:     urlToString(l.Image),
		ImageHref: urlToString(l.ImageHref),
		Custom:    customLinksFromDomain(l.Custom),
	}
}

// ToDomain parses all URLs; any malformed one fails the conversion.
func (l Links) ToDomain() (domain.Links, error) {
	homepage, err := parseOptURL(l.Homepage, "www")
	if err != nil {
		return domain.Links{}, err
	}
	image, err := parseOptURL(l.Image, "img")
	if err != nil {
		return domain.Links{}, err
	}
	imageHref, err := parseOptURL(l.ImageHref, "img_href")
	if err != nil {
		return domain.Links{}, err
	}
	custom, err := customLinksToDomain(l.Custom)
	if err != nil {
		return domain.Links{}, err
	}
	return domain.Links{
		Homepage:  homepage,
		Image:     image,
		ImageHref: imageHref,
		Custom:    custom,
	}, nil
}

// Location nests the positional pair with an optional address.
type Location struct {
	LatLon  LatLonDegrees `json:"deg"`
	Address Address       `json:"adr,omitzero"`
}

// LocationFromDomain converts a location for output.
func LocationFromDomain(l domain.Location) Location {
	loc := Location{LatLon: LatLonDegreesFromMapPoint(l.Pos)}
	if l.Address != nil {
		loc.Address = AddressFromDomain(*l.Address)
	}
	return loc
}

// ToDomain validates the positional pair; an out-of-range pair yields the
// coordinate range error.
func (l Location) ToDomain() (domain.Location, error) {
	pos, err := l.LatLon.ToMapPoint()
	if err != nil {
		return domain.Location{}, err
	}
	addr := l.Address.ToDomain()
	return domain.Location{Pos: pos, Address: &addr}, nil
}

// Activity records a millisecond timestamp plus the acting user.
type Activity struct {
	At int64   `json:"at"`
	By *string `json:"by,omitempty"`
}

// ActivityFromDomain converts an activity for output.
func ActivityFromDomain(a domain.Activity) Activity {
	return Activity{At: a.At.IntoInner(), By: emailToString(a.By)}
}

// ToDomain converts back; the raw integer passes through unchanged.
func (a Activity) ToDomain() domain.Activity {
	return domain.Activity{
		At: domain.TimestampMsFromInner(a.At),
		By: stringToEmail(a.By),
	}
}

// ActivityLog is an Activity with free-form context and comment.
type ActivityLog struct {
	At      int64   `json:"at"`
	By      *string `json:"by,omitempty"`
	Ctx     *string `json:"ctx,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

// ActivityLogFromDomain converts a log entry for output.
func ActivityLogFromDomain(l domain.ActivityLog) ActivityLog {
	return ActivityLog{
		At:      l.Activity.At.IntoInner(),
		By:      emailToString(l.Activity.By),
		Ctx:     l.Context,
		Comment: l.Comment,
	}
}

// ToDomain converts back; this direction is total.
func (l ActivityLog) ToDomain() domain.ActivityLog {
	return domain.ActivityLog{
		Activity: domain.Activity{
			At: domain.TimestampMsFromInner(l.At),
			By: stringToEmail(l.By),
		},
		Context: l.Ctx,
		Comment: l.Comment,
	}
}

// ReviewStatus is the moderation state with its fixed lowercase spellings.
type ReviewStatus string

const (
	ReviewStatusArchived  ReviewStatus = "archived"
	ReviewStatusConfirmed ReviewStatus = "confirmed"
	ReviewStatusCreated   ReviewStatus = "created"
	ReviewStatusRejected  ReviewStatus = "rejected"
)

// UnmarshalJSON rejects tokens outside the enumerated set.
func (s *ReviewStatus) UnmarshalJSON(b []byte) error {
	var tok string
	if err := json.Unmarshal(b, &tok); err != nil {
		return err
	}
	switch ReviewStatus(tok) {
	case ReviewStatusArchived, ReviewStatusConfirmed, ReviewStatusCreated, ReviewStatusRejected:
		*s = ReviewStatus(tok)
		return nil
	}
	return fmt.Errorf("unknown review status %q", tok)
}

// ReviewStatusFromDomain converts a status for output.
func ReviewStatusFromDomain(s domain.ReviewStatus) ReviewStatus {
	return ReviewStatus(s.String())
}

// ToDomain converts back; total for the enumerated set, which UnmarshalJSON
// already enforced.
func (s ReviewStatus) ToDomain() domain.ReviewStatus {
	return domain.ReviewStatus(s)
}

// ReviewStatusLog is one entry of the moderation history.
type ReviewStatusLog struct {
	Rev    uint64       `json:"rev"`
	Act    ActivityLog  `json:"act"`
	Status ReviewStatus `json:"status"`
}

// ReviewStatusLogFromDomain converts a log entry for output.
func ReviewStatusLogFromDomain(l domain.ReviewStatusLog) ReviewStatusLog {
	return ReviewStatusLog{
		Rev:    uint64(l.Revision),
		Act:    ActivityLogFromDomain(l.Activity),
		Status: ReviewStatusFromDomain(l.Status),
	}
}

// ToDomain converts back; this direction is total.
func (l ReviewStatusLog) ToDomain() domain.ReviewStatusLog {
	return domain.ReviewStatusLog{
		Revision: domain.Revision(l.Rev),
		Activity: l.Act.ToDomain(),
		Status:   l.Status.ToDomain(),
	}
}

// PlaceRoot is the immutable identity of a place.
type PlaceRoot struct {
	ID      string `json:"id"`
	License string `json:"lic"`
}

// PlaceRootFromDomain converts a root for output.
func PlaceRootFromDomain(r domain.PlaceRoot) PlaceRoot {
	return PlaceRoot{ID: r.ID.String(), License: r.License}
}

// ToDomain converts back; this direction is total.
func (r PlaceRoot) ToDomain() domain.PlaceRoot {
	return domain.PlaceRoot{ID: domain.ID(r.ID), License: r.License}
}

// PlaceRevision is one versioned snapshot of a place under its compact wire
// keys. Empty contact/links blocks are omitted.
type PlaceRevision struct {
	Revision     uint64   `json:"rev"`
	Created      Activity `json:"created"`
	Title        string   `json:"tit"`
	Description  string   `json:"dsc"`
	Location     Location `json:"loc"`
	Contact      Contact  `json:"cnt,omitzero"`
	OpeningHours *string  `json:"hrs,omitempty"`
	FoundedOn    *string  `json:"fnd,omitempty"`
	Links        Links    `json:"lnk,omitzero"`
	Tags         []string `json:"tag,omitempty"`
}

// PlaceRevisionFromDomain converts a revision for output.
func PlaceRevisionFromDomain(r domain.PlaceRevision) PlaceRevision {
	rev := PlaceRevision{
		Revision:     uint64(r.Revision),
		Created:      ActivityFromDomain(r.Created),
		Title:        r.Title,
		Description:  r.Description,
		Location:     LocationFromDomain(r.Location),
		OpeningHours: r.OpeningHours,
		FoundedOn:    formatDate(r.FoundedOn),
	}
	if r.Contact != nil {
		rev.Contact = ContactFromDomain(*r.Contact)
	}
	if r.Links != nil {
		rev.Links = LinksFromDomain(*r.Links)
	}
	if len(r.Tags) > 0 {
		rev.Tags = r.Tags
	}
	return rev
}

// ToDomain converts back. Failure points: coordinate range, URL parsing and
// the founded_on date format.
func (r PlaceRevision) ToDomain() (domain.PlaceRevision, error) {
	location, err := r.Location.ToDomain()
	if err != nil {
		return domain.PlaceRevision{}, err
	}
	links, err := r.Links.ToDomain()
	if err != nil {
		return domain.PlaceRevision{}, err
	}
	foundedOn, err := parseDate(r.FoundedOn, "fnd")
	if err != nil {
		return domain.PlaceRevision{}, err
	}
	contact := r.Contact.ToDomain()
	return domain.PlaceRevision{
		Revision:     domain.Revision(r.Revision),
		Created:      r.Created.ToDomain(),
		Title:        r.Title,
		Description:  r.Description,
		Location:     location,
		Contact:      &contact,
		OpeningHours: r.OpeningHours,
		FoundedOn:    foundedOn,
		Links:        &links,
		Tags:         r.Tags,
	}, nil
}

// RevisionLog pairs a revision with its review logs, serialized as a
// positional two-element array for compatibility.
type RevisionLog struct {
	Revision   PlaceRevision
	StatusLogs []ReviewStatusLog
}

func (l RevisionLog) MarshalJSON() ([]byte, error) {
	logs := l.StatusLogs
	if logs == nil {
		logs = []ReviewStatusLog{}
	}
	return json.Marshal([2]any{l.Revision, logs})
}

func (l *RevisionLog) UnmarshalJSON(b []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(b, &parts); err != nil {
		return err
	}
	if len(parts) != 2 {
		return fmt.Errorf("expected [revision, status logs] pair, got %d elements", len(parts))
	}
	if err := json.Unmarshal(parts[0], &l.Revision); err != nil {
		return err
	}
	return json.Unmarshal(parts[1], &l.StatusLogs)
}

// PlaceHistory is the full audit trail of a place.
type PlaceHistory struct {
	Place     PlaceRoot     `json:"place"`
	Revisions []RevisionLog `json:"revisions"`
}

// PlaceHistoryFromDomain converts a history for output.
func PlaceHistoryFromDomain(h domain.PlaceHistory) PlaceHistory {
	revisions := make([]RevisionLog, 0, len(h.Revisions))
	for _, entry := range h.Revisions {
		logs := make([]ReviewStatusLog, 0, len(entry.StatusLogs))
		for _, l := range entry.StatusLogs {
			logs = append(logs, ReviewStatusLogFromDomain(l))
		}
		revisions = append(revisions, RevisionLog{
			Revision:   PlaceRevisionFromDomain(entry.Revision),
			StatusLogs: logs,
		})
	}
	return PlaceHistory{Place: PlaceRootFromDomain(h.Place), Revisions: revisions}
}

// ToDomain converts back, propagating the per-revision failure points.
func (h PlaceHistory) ToDomain() (domain.PlaceHistory, error) {
	revisions := make([]domain.RevisionLog, 0, len(h.Revisions))
	for _, entry := range h.Revisions {
		rev, err := entry.Revision.ToDomain()
		if err != nil {
			return domain.PlaceHistory{}, err
		}
		logs := make([]domain.ReviewStatusLog, 0, len(entry.StatusLogs))
		for _, l := range entry.StatusLogs {
			logs = append(logs, l.ToDomain())
		}
		revisions = append(revisions, domain.RevisionLog{Revision: rev, StatusLogs: logs})
	}
	return domain.PlaceHistory{Place: h.Place.ToDomain(), Revisions: revisions}, nil
}
