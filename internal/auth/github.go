package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/config"
)

// GitHub использует чистый OAuth 2.0 без id token: после обмена кода
// информацию о пользователе приходится забирать отдельным запросом к API.
const (
	githubAuthEndpoint  = "https://github.com/login/oauth/authorize"
	githubTokenEndpoint = "https://github.com/login/oauth/access_token"
	githubUserEndpoint  = "https://api.github.com/user"
)

// GithubClient — клиент GitHub OAuth 2.0.
type GithubClient struct {
	clientID     string
	clientSecret string
	redirectURL  string
	scopes       []string

	http *http.Client
}

// NewGithubClient создает новый клиент GitHub OAuth
func NewGithubClient(cfg *config.Config) *GithubClient {
	return &GithubClient{
		clientID:     cfg.GithubClientID,
		clientSecret: cfg.GithubClientSecret,
		redirectURL:  cfg.GithubRedirectURL,
		scopes:       []string{"user:email", "read:user"},
		http:         &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthURL собирает URL авторизации GitHub с анти-CSRF state
func (c *GithubClient) AuthURL(state string) string {
	u, _ := url.Parse(githubAuthEndpoint)
	q := u.Query()
	q.Set("client_id", c.clientID)
	q.Set("redirect_uri", c.redirectURL)
	q.Set("scope", strings.Join(c.scopes, " "))
	q.Set("state", state)
	u.RawQuery = q.Encode()
	return u.String()
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
	Error       string `json:"error,omitempty"`
	ErrorDesc   string `json:"error_description,omitempty"`
}

// ExchangeCode обменивает authorization code на access token
func (c *GithubClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("code", code)
	form.Set("redirect_uri", c.redirectURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, githubTokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("запрос обмена кода не удался: %w", err)
	}
	defer resp.Body.Close()

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("не удалось разобрать ответ token endpoint: %w", err)
	}
	if tr.Error != "" {
		return "", fmt.Errorf("github oauth error: %s - %s", tr.Error, tr.ErrorDesc)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("в ответе нет access_token")
	}
	return tr.AccessToken, nil
}

// GithubUser — информация о пользователе из GitHub API.
type GithubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// ExternalID возвращает githubId в том виде, в котором он хранится в бд
func (u *GithubUser) ExternalID() string {
	return strconv.FormatInt(u.ID, 10)
}

// FetchUser получает профиль пользователя по access token
func (c *GithubClient) FetchUser(ctx context.Context, accessToken string) (*GithubUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, githubUserEndpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("запрос профиля GitHub не удался: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github user endpoint вернул статус %s", resp.Status)
	}

	var user GithubUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("не удалось разобрать профиль GitHub: %w", err)
	}
	return &user, nil
}
