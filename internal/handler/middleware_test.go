package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureAuthenticated(t *testing.T) {
	sessions := auth.NewSessionManager("test-secret", time.Hour)

	var seenUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	protected := EnsureAuthenticated(sessions, testLogger())(next)

	// без сессии — 401
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// с корректной сессией — запрос проходит, id пользователя в контексте
	issued := httptest.NewRecorder()
	require.NoError(t, sessions.Issue(issued, "user-42"))

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	for _, c := range issued.Result().Cookies() {
		req.AddCookie(c)
	}

	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", seenUserID)
}
