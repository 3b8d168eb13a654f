package boundary

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}

func TestParseURLRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "not a url", "/relative/only", "example.org/no-scheme"} {
		_, err := parseURL(bad, "field")
		require.Error(t, err, "expected %q to be rejected", bad)
	}

	u, err := parseURL("https://example.org/x", "field")
	require.NoError(t, err)
	require.Equal(t, "https://example.org/x", u.String())
}

func TestParseDate(t *testing.T) {
	d, err := parseDate(strPtr("2020-02-29"), "founded_on")
	require.NoError(t, err)
	require.Equal(t, "2020-02-29", d.Format(dateLayout))

	_, err = parseDate(strPtr("29.02.2020"), "founded_on")
	require.Error(t, err)

	d, err = parseDate(nil, "founded_on")
	require.NoError(t, err)
	require.Nil(t, d)
}
