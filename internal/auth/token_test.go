package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, algorithm string) *TokenManager {
	t.Helper()
	tm, err := NewTokenManager("test-secret", algorithm, 15)
	require.NoError(t, err)
	return tm
}

func TestNewTokenManager_ConfigurationFaults(t *testing.T) {
	_, err := NewTokenManager("", "HS256", 15)
	assert.Error(t, err)

	_, err = NewTokenManager("secret", "RS256", 15)
	assert.Error(t, err)

	_, err = NewTokenManager("secret", "", 15)
	assert.Error(t, err)
}

func TestTokenManager_IssueParseRoundTrip(t *testing.T) {
	tm := newTestManager(t, "HS256")

	token, expiresAt, err := tm.Issue("alice", time.Minute)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Minute), expiresAt, 5*time.Second)

	subject, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestTokenManager_DefaultTTL(t *testing.T) {
	tm := newTestManager(t, "HS256")

	_, expiresAt, err := tm.Issue("alice", 0)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), expiresAt, 5*time.Second)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := newTestManager(t, "HS256")

	token, _, err := tm.Issue("alice", -time.Minute)
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenManager_TamperedToken(t *testing.T) {
	tm := newTestManager(t, "HS256")

	token, _, err := tm.Issue("alice", time.Minute)
	require.NoError(t, err)

	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = tm.Parse(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenManager_AlgorithmMismatch(t *testing.T) {
	issuer := newTestManager(t, "HS256")
	verifier := newTestManager(t, "HS512")

	token, _, err := issuer.Issue("alice", time.Minute)
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenManager_MissingSubject(t *testing.T) {
	tm := newTestManager(t, "HS256")

	token, _, err := tm.Issue("", time.Minute)
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenManager_GarbageInput(t *testing.T) {
	tm := newTestManager(t, "HS256")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := tm.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}
