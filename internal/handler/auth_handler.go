package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/CatalogApp/internal/auth"
	"github.com/GoArmGo/CatalogApp/internal/usecase"
)

// AuthHandler — обработчик OAuth-потока GitHub и cookie-сессий.
type AuthHandler struct {
	github      *auth.GithubClient
	sessions    *auth.SessionManager
	userUseCase usecase.UserUseCase
	logger      *slog.Logger
}

// NewAuthHandler создаёт новый экземпляр AuthHandler.
func NewAuthHandler(
	github *auth.GithubClient,
	sessions *auth.SessionManager,
	uc usecase.UserUseCase,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		github:      github,
		sessions:    sessions,
		userUseCase: uc,
		logger:      logger,
	}
}

// Login — редиректит пользователя на страницу авторизации GitHub.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	state := h.sessions.IssueState(w)
	http.Redirect(w, r, h.github.AuthURL(state), http.StatusFound)
}

// Callback — завершает OAuth-поток: обменивает код, забирает профиль,
// выполняет upsert пользователя и выпускает сессию.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if !h.sessions.VerifyState(w, r, state) {
		h.logger.Warn("oauth state mismatch")
		respondWithError(w, http.StatusBadRequest, "Некорректный state", h.logger)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		respondWithError(w, http.StatusBadRequest, "Не указан code", h.logger)
		return
	}

	accessToken, err := h.github.ExchangeCode(r.Context(), code)
	if err != nil {
		h.logger.Error("failed to exchange oauth code", "error", err)
		respondWithError(w, http.StatusBadGateway, "Ошибка обмена кода авторизации", h.logger)
		return
	}

	ghUser, err := h.github.FetchUser(r.Context(), accessToken)
	if err != nil {
		h.logger.Error("failed to fetch github profile", "error", err)
		respondWithError(w, http.StatusBadGateway, "Ошибка получения профиля GitHub", h.logger)
		return
	}

	// Повторный вход тем же пользователем обновит только access token
	user, err := h.userUseCase.CreateUser(r.Context(), map[string]any{
		"githubId":    ghUser.ExternalID(),
		"username":    ghUser.Login,
		"email":       ghUser.Email,
		"avatarUrl":   ghUser.AvatarURL,
		"accessToken": accessToken,
	})
	if err != nil {
		h.logger.Error("failed to upsert user", "github_id", ghUser.ExternalID(), "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}

	if err := h.sessions.Issue(w, user.ID.String()); err != nil {
		h.logger.Error("failed to issue session", "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Ошибка создания сессии", h.logger)
		return
	}

	h.logger.Info("user logged in", "user_id", user.ID, "github_id", user.GithubID)
	respondWithJSON(w, http.StatusOK, user, h.logger)
}

// Me — отдаёт профиль текущего пользователя по сессии.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Требуется авторизация", h.logger)
		return
	}

	user, err := h.userUseCase.GetUserByID(r.Context(), userID)
	if err != nil {
		h.logger.Warn("failed to load current user", "user_id", userID, "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, user, h.logger)
}

// Logout — завершает сессию.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Сессия завершена"}, h.logger)
}
