package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/CatalogApp/internal/core/ports"
	"github.com/GoArmGo/CatalogApp/internal/domain"
	"github.com/GoArmGo/CatalogApp/internal/validation"
)

// userUseCase implements UserUseCase — координатор upsert по githubId.
type userUseCase struct {
	users  ports.UserRepository
	logger *slog.Logger
}

// NewUserUseCase создает новый экземпляр UserUseCase
func NewUserUseCase(users ports.UserRepository, logger *slog.Logger) UserUseCase {
	return &userUseCase{users: users, logger: logger}
}

// CreateUser — upsert по githubId.
// Существующий пользователь: обновляется ТОЛЬКО access token, возвращается
// существующая запись с уже новым токеном (перечитывание из бд не требуется:
// кроме токена мы ничего не меняли). Новый пользователь: вставляется полная
// запись с присвоенным id. Гонка двух одновременных вызовов с новым githubId
// разрешается уникальным индексом хранилища: проигравший insert получает
// ErrDuplicate и переигрывается как update, наружу гонка не видна.
func (uc *userUseCase) CreateUser(ctx context.Context, input map[string]any) (*domain.User, error) {
	record, violations := validation.Validate(input, validation.UserSchema)
	if violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	user := &domain.User{
		GithubID: record["githubId"].(string),
		Username: record["username"].(string),
		Email:    record["email"].(string),
	}
	if avatar, ok := record["avatarUrl"].(string); ok {
		user.AvatarURL = avatar
	}
	if token, ok := record["accessToken"].(string); ok {
		user.AccessToken = token
	}

	existing, err := uc.users.FindByGithubID(ctx, user.GithubID)
	if err != nil {
		return nil, fmt.Errorf("usecase: поиск пользователя по githubId: %w", err)
	}
	if existing != nil {
		return uc.refreshToken(ctx, existing, user.AccessToken)
	}

	err = uc.users.Insert(ctx, user)
	if errors.Is(err, domain.ErrDuplicate) {
		// Проигравшая сторона гонки: строка уже есть, переигрываем как update
		uc.logger.Warn("concurrent user insert lost the race, retrying as update",
			"github_id", user.GithubID,
		)
		existing, err = uc.users.FindByGithubID(ctx, user.GithubID)
		if err != nil {
			return nil, fmt.Errorf("usecase: повторный поиск пользователя по githubId: %w", err)
		}
		if existing == nil {
			return nil, fmt.Errorf("usecase: пользователь %s исчез между insert и повторным поиском", user.GithubID)
		}
		return uc.refreshToken(ctx, existing, user.AccessToken)
	}
	if err != nil {
		return nil, fmt.Errorf("usecase: не удалось сохранить пользователя: %w", err)
	}

	uc.logger.Info("user created", "user_id", user.ID, "github_id", user.GithubID)
	return user, nil
}

// refreshToken — ветка Update координатора: в хранилище меняется только токен,
// остальные поля возвращаются из уже известной записи.
func (uc *userUseCase) refreshToken(ctx context.Context, existing *domain.User, token string) (*domain.User, error) {
	if err := uc.users.UpdateAccessToken(ctx, existing.GithubID, token); err != nil {
		return nil, fmt.Errorf("usecase: не удалось обновить access token: %w", err)
	}

	updated := *existing
	updated.AccessToken = token

	uc.logger.Info("user access token refreshed",
		"user_id", existing.ID,
		"github_id", existing.GithubID,
	)
	return &updated, nil
}

// GetUserByID получает пользователя по внутреннему id; отсутствие записи — domain.ErrNotFound
func (uc *userUseCase) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}
