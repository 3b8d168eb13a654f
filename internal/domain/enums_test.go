package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "openfairdb/pkg/errors"
)

func TestParseRole(t *testing.T) {
	for _, tok := range []string{"guest", "user", "scout", "admin"} {
		r, err := ParseRole(tok)
		require.NoError(t, err)
		assert.Equal(t, tok, r.String())
	}

	t.Run("rejects unknown token", func(t *testing.T) {
		_, err := ParseRole("owner")
		require.Error(t, err)
		assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeBadRequest))
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseRole("")
		require.Error(t, err)
	})
}

func TestRoleOrdering(t *testing.T) {
	assert.True(t, RoleAdmin.IsAtLeast(RoleScout))
	assert.True(t, RoleScout.IsAtLeast(RoleScout))
	assert.False(t, RoleUser.IsAtLeast(RoleScout))
	assert.False(t, RoleGuest.IsAtLeast(RoleUser))
}

func TestParseReviewStatus(t *testing.T) {
	for _, tok := range []string{"archived", "confirmed", "created", "rejected"} {
		st, err := ParseReviewStatus(tok)
		require.NoError(t, err)
		assert.Equal(t, tok, st.String())
	}

	_, err := ParseReviewStatus("pending")
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeBadRequest))
}

func TestReviewStatusExists(t *testing.T) {
	assert.True(t, ReviewStatusCreated.Exists())
	assert.True(t, ReviewStatusConfirmed.Exists())
	assert.False(t, ReviewStatusArchived.Exists())
	assert.False(t, ReviewStatusRejected.Exists())
}

func TestParseRatingContext(t *testing.T) {
	for _, tok := range []string{
		"diversity", "renewable", "fairness", "humanity", "transparency", "solidarity",
	} {
		c, err := ParseRatingContext(tok)
		require.NoError(t, err)
		assert.Equal(t, tok, c.String())
	}

	_, err := ParseRatingContext("sustainability")
	require.Error(t, err)
}

func TestParseRegistrationType(t *testing.T) {
	for _, tok := range []string{"email", "phone", "homepage"} {
		r, err := ParseRegistrationType(tok)
		require.NoError(t, err)
		assert.Equal(t, tok, r.String())
	}

	// "telephone" is the wire spelling, not the domain one.
	_, err := ParseRegistrationType("telephone")
	require.Error(t, err)
}
