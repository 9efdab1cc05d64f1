package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, "user-42"))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	userID, err := m.UserID(req)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestSession_MissingCookie(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := m.UserID(req)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSession_TamperedSecret(t *testing.T) {
	issuer := NewSessionManager("secret-a", time.Hour)
	verifier := NewSessionManager("secret-b", time.Hour)

	rec := httptest.NewRecorder()
	require.NoError(t, issuer.Issue(rec, "user-42"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	_, err := verifier.UserID(req)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSession_Expired(t *testing.T) {
	m := NewSessionManager("test-secret", -time.Minute)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, "user-42"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	_, err := m.UserID(req)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestOAuthState(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	rec := httptest.NewRecorder()
	state := m.IssueState(rec)
	require.NotEmpty(t, state)

	req := httptest.NewRequest(http.MethodGet, "/auth/github/callback?state="+state, nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	assert.True(t, m.VerifyState(httptest.NewRecorder(), req, state))
	assert.False(t, m.VerifyState(httptest.NewRecorder(), req, "forged"))
}
