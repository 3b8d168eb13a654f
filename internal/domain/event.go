package domain

import (
	"net/url"
	"time"

	pkgerrors "openfairdb/pkg/errors"
)

// RegistrationType states how attendees sign up for an event.
type RegistrationType string

const (
	RegistrationEmail    RegistrationType = "email"
	RegistrationPhone    RegistrationType = "phone"
	RegistrationHomepage RegistrationType = "homepage"
)

var validRegistrationTypes = map[RegistrationType]bool{
	RegistrationEmail:    true,
	RegistrationPhone:    true,
	RegistrationHomepage: true,
}

// ParseRegistrationType constructs a RegistrationType from external input.
func ParseRegistrationType(s string) (RegistrationType, error) {
	r := RegistrationType(s)
	if !validRegistrationTypes[r] {
		return "", pkgerrors.Newf(pkgerrors.CodeBadRequest, "invalid registration type %q", s)
	}
	return r, nil
}

func (r RegistrationType) String() string { return string(r) }

// Event is a dated happening, optionally located and with contact details.
// The contact name doubles as the organizer.
type Event struct {
	ID           ID
	Title        string
	Description  *string
	Start        time.Time
	End          *time.Time
	Location     *Location
	Contact      *Contact
	Homepage     *url.URL
	Tags         []string
	Registration *RegistrationType
	ImageURL     *url.URL
	ImageLinkURL *url.URL
	Created      *Activity
}
