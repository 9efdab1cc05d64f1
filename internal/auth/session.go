package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// SessionCookieName — cookie с подписанной JWT-сессией.
	SessionCookieName = "catalog_session"
	// StateCookieName — короткоживущий anti-CSRF state для OAuth-редиректа.
	StateCookieName = "oauth_state"
)

// ErrNoSession возвращается, когда в запросе нет корректной сессии.
var ErrNoSession = errors.New("no valid session")

// SessionManager выпускает и проверяет cookie-сессии на базе HMAC-подписанных JWT.
// Состояние сессии на сервере не хранится: подписи и TTL достаточно.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionManager создает новый менеджер сессий
func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{secret: []byte(secret), ttl: ttl}
}

// Issue выпускает сессию для пользователя и ставит cookie
func (m *SessionManager) Issue(w http.ResponseWriter, userID string) error {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("не удалось подписать сессию: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.ttl.Seconds()),
	})
	return nil
}

// UserID извлекает id пользователя из cookie-сессии запроса.
// Отсутствующая, просроченная или подделанная сессия — ErrNoSession.
func (m *SessionManager) UserID(r *http.Request) (string, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return "", ErrNoSession
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrNoSession
	}
	return claims.Subject, nil
}

// Clear завершает сессию, затирая cookie
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// IssueState выпускает одноразовый state и дублирует его в cookie для проверки callback
func (m *SessionManager) IssueState(w http.ResponseWriter) string {
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     StateCookieName,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int((10 * time.Minute).Seconds()),
	})
	return state
}

// VerifyState сверяет state из callback с cookie и гасит её
func (m *SessionManager) VerifyState(w http.ResponseWriter, r *http.Request, state string) bool {
	cookie, err := r.Cookie(StateCookieName)
	if err != nil || state == "" || cookie.Value != state {
		return false
	}
	http.SetCookie(w, &http.Cookie{
		Name:   StateCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	return true
}
