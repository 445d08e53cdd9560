package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/taskforge/taskforge/errors"
)

func TestIssueAndParse(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Issue(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestParseExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Issue(42, "alice")
	require.NoError(t, err)

	_, err = tm.Parse(token)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestParseWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(42, "alice")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestParseGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tm.Parse(token)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
	}
}

func TestFailureModesAreIndistinguishable(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)
	other := NewTokenManager("other-secret", time.Hour)

	expired, err := tm.Issue(1, "alice")
	require.NoError(t, err)
	foreign, err := other.Issue(1, "alice")
	require.NoError(t, err)

	_, expiredErr := tm.Parse(expired)
	_, foreignErr := tm.Parse(foreign)
	_, garbageErr := tm.Parse("garbage")

	require.Error(t, expiredErr)
	assert.Equal(t, expiredErr.Error(), foreignErr.Error())
	assert.Equal(t, expiredErr.Error(), garbageErr.Error())
}
