package usecase

import (
	"context"
	"sync"

	"github.com/GoArmGo/CatalogApp/internal/domain"
	"github.com/GoArmGo/CatalogApp/internal/messaging/payloads"
	"github.com/google/uuid"
)

// In-memory doubles mirroring the repository contracts
// (id coercion, normalization, duplicate detection).

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]domain.Product

	ratingName  string
	ratingAvg   float64
	ratingCount int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]domain.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, p *domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.products[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[parsed]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProductRepo) GetAll(_ context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, id string, fields map[string]any) (*domain.Product, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[parsed]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if v, ok := fields["name"].(string); ok {
		p.Name = v
	}
	if v, ok := fields["description"].(string); ok {
		p.Description = v
	}
	if v, ok := fields["price"].(float64); ok {
		p.Price = v
	}
	if v, ok := fields["stock"].(int); ok {
		p.Stock = v
	}
	f.products[parsed] = p
	return &p, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) (bool, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false, domain.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[parsed]; !ok {
		return false, nil
	}
	delete(f.products, parsed)
	return true, nil
}

func (f *fakeProductRepo) UpdateRatingSummary(_ context.Context, name string, avg float64, count int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ratingName = name
	f.ratingAvg = avg
	f.ratingCount = count
	return nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews []domain.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, r *domain.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.Name = domain.NormalizeProductKey(r.Name)
	f.reviews = append(f.reviews, *r)
	return nil
}

func (f *fakeReviewRepo) GetAll(_ context.Context) ([]domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Review(nil), f.reviews...), nil
}

func (f *fakeReviewRepo) GetByProductName(_ context.Context, name string) ([]domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	normalized := domain.NormalizeProductKey(name)
	var out []domain.Review
	for _, r := range f.reviews {
		if r.Name == normalized {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) RatingSummary(_ context.Context, name string) (int64, float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	normalized := domain.NormalizeProductKey(name)
	var count int64
	var sum int
	for _, r := range f.reviews {
		if r.Name == normalized {
			count++
			sum += r.Rating
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return count, float64(sum) / float64(count), nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User

	// raceUser имитирует конкурирующую вставку: Insert падает с ErrDuplicate,
	// а строка "другого писателя" появляется в хранилище.
	raceUser *domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (f *fakeUserRepo) FindByGithubID(_ context.Context, githubID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[githubID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == parsed {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, u *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.raceUser != nil {
		f.users[f.raceUser.GithubID] = *f.raceUser
		f.raceUser = nil
		return domain.ErrDuplicate
	}
	if _, ok := f.users[u.GithubID]; ok {
		return domain.ErrDuplicate
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.users[u.GithubID] = *u
	return nil
}

func (f *fakeUserRepo) UpdateAccessToken(_ context.Context, githubID, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[githubID]
	if !ok {
		return domain.ErrNotFound
	}
	u.AccessToken = token
	f.users[githubID] = u
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []payloads.CatalogEventPayload
}

func (f *fakePublisher) PublishCatalogEvent(_ context.Context, p payloads.CatalogEventPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, p)
	return nil
}
