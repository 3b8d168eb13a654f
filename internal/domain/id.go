package domain

import (
	"strings"

	"github.com/google/uuid"

	pkgerrors "openfairdb/pkg/errors"
)

// ID is an opaque entity identifier. New ids are hyphen-less UUIDs to match
// the historic database format.
type ID string

// NewID mints a fresh identifier.
func NewID() ID {
	return ID(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

func (id ID) String() string { return string(id) }

// IsNil reports whether the id is empty.
func (id ID) IsNil() bool { return id == "" }

// Email is an e-mail address used as the primary user identifier.
//
// Usage: construct via ParseEmail at trust boundaries; direct casting
// bypasses validation.
type Email string

// ParseEmail validates an address from external input. The check is
// deliberately shallow; deliverability is the mailer's problem.
func ParseEmail(s string) (Email, error) {
	at := strings.IndexByte(s, '@')
	if at < 1 || at == len(s)-1 {
		return "", pkgerrors.New(pkgerrors.CodeBadRequest, "invalid email address")
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }
