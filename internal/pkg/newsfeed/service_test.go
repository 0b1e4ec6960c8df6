package newsfeed

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/carlimendez/aulareserva/app/models"
	"github.com/carlimendez/aulareserva/internal/pkg/apperr"
)

type memNewsRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*models.News
}

func newMemNewsRepo() *memNewsRepo {
	return &memNewsRepo{nextID: 1, items: make(map[uint]*models.News)}
}

func (r *memNewsRepo) Create(news *models.News) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	news.ID = r.nextID
	r.nextID++
	stored := *news
	r.items[news.ID] = &stored
	return nil
}

func (r *memNewsRepo) GetByID(id uint) (*models.News, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *memNewsRepo) GetActive(now time.Time, limit int) ([]models.News, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.News
	for _, item := range r.items {
		if item.ExpiresAt.After(now) {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memNewsRepo) GetAll() ([]models.News, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.News
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *memNewsRepo) GetExpired(now time.Time) ([]models.News, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.News
	for _, item := range r.items {
		if item.ExpiresAt.Before(now) {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *memNewsRepo) Update(news *models.News) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[news.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *news
	r.items[news.ID] = &stored
	return nil
}

func (r *memNewsRepo) UpdateFields(id uint, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "title":
			item.Title = value.(string)
		case "summary":
			item.Summary = value.(string)
		case "content":
			item.Content = value.(string)
		case "expires_at":
			item.ExpiresAt = value.(time.Time)
		}
	}
	return nil
}

func (r *memNewsRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memNewsRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func newTestService() (*Service, *memNewsRepo, time.Time) {
	repo := newMemNewsRepo()
	service := NewService(repo)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	service.SetClock(func() time.Time { return now })
	return service, repo, now
}

func validCreateInput() CreateInput {
	return CreateInput{
		Title:        "Library closed",
		Summary:      "The library closes early on Friday.",
		Content:      "Due to maintenance work the library will close at noon.",
		Duration:     2,
		DurationUnit: UnitDays,
		AuthorID:     3,
	}
}

func TestServiceCreate(t *testing.T) {
	service, _, now := newTestService()

	news, err := service.Create(validCreateInput())
	require.NoError(t, err)
	assert.NotZero(t, news.ID)
	assert.Equal(t, models.MEDIA_NONE, news.MediaKind)
	assert.Equal(t, now.Add(48*time.Hour), news.ExpiresAt)
}

func TestServiceCreateValidation(t *testing.T) {
	service, _, _ := newTestService()

	tests := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"missing title", func(in *CreateInput) { in.Title = "" }},
		{"missing summary", func(in *CreateInput) { in.Summary = "" }},
		{"missing content", func(in *CreateInput) { in.Content = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreateInput()
			tt.mutate(&in)
			_, err := service.Create(in)
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestServiceCreateWithMedia(t *testing.T) {
	service, _, _ := newTestService()

	in := validCreateInput()
	in.Media = Media{Kind: models.MEDIA_IMAGE, Data: "data:image/png;base64,AAAA", Preview: "data:image/jpeg;base64,BBBB"}
	news, err := service.Create(in)
	require.NoError(t, err)
	assert.Equal(t, models.MEDIA_IMAGE, news.MediaKind)
	assert.Equal(t, in.Media.Data, news.MediaData)
	assert.Equal(t, in.Media.Preview, news.MediaPreview)
}

func TestServiceEdit(t *testing.T) {
	service, _, now := newTestService()

	news, err := service.Create(validCreateInput())
	require.NoError(t, err)
	originalExpiry := news.ExpiresAt

	// Without a duration the expiry stays untouched.
	edited, err := service.Edit(news.ID, EditInput{
		Title:   "Library closed all day",
		Summary: news.Summary,
		Content: news.Content,
	})
	require.NoError(t, err)
	assert.Equal(t, "Library closed all day", edited.Title)
	assert.Equal(t, originalExpiry, edited.ExpiresAt)

	// Supplying a duration recomputes expiry from the edit time.
	edited, err = service.Edit(news.ID, EditInput{
		Title:        edited.Title,
		Summary:      edited.Summary,
		Content:      edited.Content,
		HasDuration:  true,
		Duration:     1,
		DurationUnit: UnitWeeks,
	})
	require.NoError(t, err)
	assert.Equal(t, now.Add(7*24*time.Hour), edited.ExpiresAt)

	// A duration value without a unit leaves expiry alone.
	edited, err = service.Edit(news.ID, EditInput{
		Title:       edited.Title,
		Summary:     edited.Summary,
		Content:     edited.Content,
		HasDuration: true,
		Duration:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, now.Add(7*24*time.Hour), edited.ExpiresAt)
}

func TestServiceEditNotFound(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Edit(404, EditInput{Title: "a", Summary: "b", Content: "c"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestServiceListActive(t *testing.T) {
	service, repo, now := newTestService()

	require.NoError(t, repo.Create(&models.News{
		Title: "fresh", Summary: "s", Content: "c",
		ExpiresAt: now.Add(time.Hour), CreatedAt: now.Add(-time.Minute),
	}))
	require.NoError(t, repo.Create(&models.News{
		Title: "stale", Summary: "s", Content: "c",
		ExpiresAt: now.Add(-time.Second), CreatedAt: now.Add(-2 * time.Hour),
	}))

	active, err := service.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "fresh", active[0].Title)
}

func TestServiceListActiveCap(t *testing.T) {
	service, repo, now := newTestService()

	for i := 0; i < ActiveFeedLimit+5; i++ {
		require.NoError(t, repo.Create(&models.News{
			Title: "post", Summary: "s", Content: "c",
			ExpiresAt: now.Add(time.Hour), CreatedAt: now.Add(time.Duration(-i) * time.Minute),
		}))
	}

	active, err := service.ListActive()
	require.NoError(t, err)
	assert.Len(t, active, ActiveFeedLimit)
}

func TestServiceDelete(t *testing.T) {
	service, repo, _ := newTestService()

	news, err := service.Create(validCreateInput())
	require.NoError(t, err)

	require.NoError(t, service.Delete(news.ID))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	err = service.Delete(news.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestServiceSweepExpired(t *testing.T) {
	service, repo, now := newTestService()

	require.NoError(t, repo.Create(&models.News{
		Title: "expired", Summary: "s", Content: "c", ExpiresAt: now.Add(-time.Hour),
	}))
	require.NoError(t, repo.Create(&models.News{
		Title: "boundary", Summary: "s", Content: "c", ExpiresAt: now,
	}))
	require.NoError(t, repo.Create(&models.News{
		Title: "alive", Summary: "s", Content: "c", ExpiresAt: now.Add(time.Hour),
	}))

	// Only items strictly past their expiry are removed; one expiring at
	// exactly now survives until the next tick.
	deleted, err := service.SweepExpired(now)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// A second sweep with no newly expired items deletes nothing.
	deleted, err = service.SweepExpired(now)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	// Once the boundary item is in the past it goes too.
	deleted, err = service.SweepExpired(now.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}
