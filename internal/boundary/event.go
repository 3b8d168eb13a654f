package boundary

import (
	"time"

	"openfairdb/internal/domain"
	pkgerrors "openfairdb/pkg/errors"
	"openfairdb/pkg/strutil"
)

// Registration tokens on the wire. Note "telephone", not "phone".
const (
	registrationTokenEmail     = "email"
	registrationTokenTelephone = "telephone"
	registrationTokenHomepage  = "homepage"
)

// Event is the flattened wire representation of an event. Start and end are
// second-precision unix timestamps, unlike the millisecond activity fields.
type Event struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  *string  `json:"description,omitempty"`
	Start        int64    `json:"start"`
	End          *int64   `json:"end,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
	Street       *string  `json:"street,omitempty"`
	Zip          *string  `json:"zip,omitempty"`
	City         *string  `json:"city,omitempty"`
	Country      *string  `json:"country,omitempty"`
	State        *string  `json:"state,omitempty"`
	Email        *string  `json:"email,omitempty"`
	Telephone    *string  `json:"telephone,omitempty"`
	Homepage     *string  `json:"homepage,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Registration *string  `json:"registration,omitempty"`
	Organizer    *string  `json:"organizer,omitempty"`
	ImageURL     *string  `json:"image_url,omitempty"`
	ImageLinkURL *string  `json:"image_link_url,omitempty"`
}

// EventFromDomain flattens an event for output. This direction is total: the
// contact name becomes the organizer and the registration type its lowercase
// token.
func EventFromDomain(e domain.Event) Event {
	ev := Event{
		ID:           e.ID.String(),
		Title:        e.Title,
		Description:  e.Description,
		Start:        e.Start.Unix(),
		Homepage:     urlToString(e.Homepage),
		Tags:         e.Tags,
		ImageURL:     urlToString(e.ImageURL),
		ImageLinkURL: urlToString(e.ImageLinkURL),
	}
	if e.End != nil {
		end := e.End.Unix()
		ev.End = &end
	}
	if e.Location != nil {
		lat := e.Location.Pos.LatDeg()
		lng := e.Location.Pos.LngDeg()
		ev.Lat = &lat
		ev.Lng = &lng
		if e.Location.Address != nil {
			a := *e.Location.Address
			ev.Street, ev.Zip, ev.City, ev.Country, ev.State = a.Street, a.Zip, a.City, a.Country, a.State
		}
	}
	if e.Contact != nil {
		ev.Organizer = e.Contact.Name
		ev.Email = emailToString(e.Contact.Email)
		ev.Telephone = e.Contact.Phone
	}
	if e.Registration != nil {
		ev.Registration = strPtr(registrationTokenFromDomain(*e.Registration))
	}
	return ev
}

// ToDomain unflattens the event. Failure points: registration token,
// coordinate range and URL parsing.
func (e Event) ToDomain() (domain.Event, error) {
	ev := domain.Event{
		ID:          domain.ID(e.ID),
		Title:       e.Title,
		Description: e.Description,
		Start:       time.Unix(e.Start, 0).UTC(),
		Tags:        strutil.NormalizeTags(e.Tags),
	}
	if e.End != nil {
		end := time.Unix(*e.End, 0).UTC()
		ev.End = &end
	}

	if e.Lat != nil || e.Lng != nil {
		if e.Lat == nil || e.Lng == nil {
			return domain.Event{}, pkgerrors.New(pkgerrors.CodeBadRequest, "lat and lng must be given together")
		}
		pos, err := domain.MapPointFromLatLngDeg(*e.Lat, *e.Lng)
		if err != nil {
			return domain.Event{}, pkgerrors.Wrap(err, pkgerrors.CodeBadRequest, "invalid coordinate")
		}
		ev.Location = &domain.Location{Pos: pos}
	}
	addr := domain.Address{Street: e.Street, Zip: e.Zip, City: e.City, Country: e.Country, State: e.State}
	if !addr.IsEmpty() {
		if ev.Location == nil {
			ev.Location = &domain.Location{}
		}
		ev.Location.Address = &addr
	}

	if e.Organizer != nil || e.Email != nil || e.Telephone != nil {
		ev.Contact = &domain.Contact{
			Name:  e.Organizer,
			Email: stringToEmail(e.Email),
			Phone: e.Telephone,
		}
	}

	homepage, err := parseOptURL(e.Homepage, "homepage")
	if err != nil {
		return domain.Event{}, err
	}
	ev.Homepage = homepage
	imageURL, err := parseOptURL(e.ImageURL, "image_url")
	if err != nil {
		return domain.Event{}, err
	}
	ev.ImageURL = imageURL
	imageLinkURL, err := parseOptURL(e.ImageLinkURL, "image_link_url")
	if err != nil {
		return domain.Event{}, err
	}
	ev.ImageLinkURL = imageLinkURL

	if e.Registration != nil {
		reg, err := registrationTokenToDomain(*e.Registration)
		if err != nil {
			return domain.Event{}, err
		}
		ev.Registration = &reg
	}
	return ev, nil
}

func registrationTokenFromDomain(r domain.RegistrationType) string {
	switch r {
	case domain.RegistrationPhone:
		return registrationTokenTelephone
	case domain.RegistrationHomepage:
		return registrationTokenHomepage
	default:
		return registrationTokenEmail
	}
}

func registrationTokenToDomain(tok string) (domain.RegistrationType, error) {
	switch tok {
	case registrationTokenEmail:
		return domain.RegistrationEmail, nil
	case registrationTokenTelephone:
		return domain.RegistrationPhone, nil
	case registrationTokenHomepage:
		return domain.RegistrationHomepage, nil
	}
	return "", pkgerrors.Newf(pkgerrors.CodeBadRequest, "unknown registration type %q", tok)
}
