package boundary

import (
	"net/url"
	"time"

	"openfairdb/internal/domain"
	pkgerrors "openfairdb/pkg/errors"
)

// dateLayout is the wire format of calendar dates (founded_on).
const dateLayout = "2006-01-02"

func strPtr(s string) *string { return &s }

func urlToString(u *url.URL) *string {
	if u == nil {
		return nil
	}
	return strPtr(u.String())
}

// parseURL turns an externally supplied string into a URL, rejecting
// malformed or scheme-less input with a bad-request error.
func parseURL(s string, field string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, pkgerrors.Newf(pkgerrors.CodeBadRequest, "invalid url in %s", field)
	}
	return u, nil
}

func parseOptURL(s *string, field string) (*url.URL, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	return parseURL(*s, field)
}

func emailToString(e *domain.Email) *string {
	if e == nil {
		return nil
	}
	return strPtr(e.String())
}

func stringToEmail(s *string) *domain.Email {
	if s == nil {
		return nil
	}
	e := domain.Email(*s)
	return &e
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return strPtr(t.Format(dateLayout))
}

func parseDate(s *string, field string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, pkgerrors.Newf(pkgerrors.CodeBadRequest, "invalid date in %s, expected YYYY-MM-DD", field)
	}
	return &t, nil
}
