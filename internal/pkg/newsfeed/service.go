package newsfeed

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/carlimendez/aulareserva/app/models"
	"github.com/carlimendez/aulareserva/app/repository"
	"github.com/carlimendez/aulareserva/internal/pkg/apperr"
)

// ActiveFeedLimit caps the dashboard feed.
const ActiveFeedLimit = 20

// Service manages time-limited news posts: expiry computation at create and
// edit time, the active feed, and the recurring purge of expired items.
type Service struct {
	news repository.NewsRepository
	now  func() time.Time
}

// NewService creates a news service backed by the given repository.
func NewService(news repository.NewsRepository) *Service {
	return &Service{news: news, now: time.Now}
}

// SetClock overrides the wall clock, for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// CreateInput carries the raw fields of a news post.
type CreateInput struct {
	Title        string
	Summary      string
	Content      string
	Duration     int
	DurationUnit string
	AuthorID     uint
	Media        Media
}

// Create validates the post, computes its expiry from the current time and
// persists it.
func (s *Service) Create(in CreateInput) (*models.News, error) {
	if in.Title == "" || in.Summary == "" || in.Content == "" {
		return nil, apperr.New(apperr.KindValidation, "title, summary and content are required")
	}

	news := &models.News{
		Title:     in.Title,
		Summary:   in.Summary,
		Content:   in.Content,
		MediaKind: models.MEDIA_NONE,
		AuthorID:  in.AuthorID,
		ExpiresAt: ComputeExpiry(s.now(), in.Duration, in.DurationUnit),
	}
	applyMedia(news, in.Media)

	if err := s.news.Create(news); err != nil {
		return nil, apperr.Wrap(apperr.KindInfrastructure, "failed to save news", err)
	}
	return news, nil
}

// EditInput carries a wholesale field replacement. Expiry is recomputed from
// the edit time only when both Duration and DurationUnit are supplied.
type EditInput struct {
	Title        string
	Summary      string
	Content      string
	HasDuration  bool
	Duration     int
	DurationUnit string
	Media        *Media
}

// Edit replaces the stored fields of an existing post.
func (s *Service) Edit(id uint, in EditInput) (*models.News, error) {
	if in.Title == "" || in.Summary == "" || in.Content == "" {
		return nil, apperr.New(apperr.KindValidation, "title, summary and content are required")
	}

	news, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	news.Title = in.Title
	news.Summary = in.Summary
	news.Content = in.Content
	if in.HasDuration && in.DurationUnit != "" {
		news.ExpiresAt = ComputeExpiry(s.now(), in.Duration, in.DurationUnit)
	}
	if in.Media != nil {
		applyMedia(news, *in.Media)
	}

	if err := s.news.Update(news); err != nil {
		return nil, apperr.Wrap(apperr.KindInfrastructure, "failed to update news", err)
	}
	return news, nil
}

// Get loads a single post by id.
func (s *Service) Get(id uint) (*models.News, error) {
	news, err := s.news.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "news not found")
		}
		return nil, apperr.Wrap(apperr.KindInfrastructure, "failed to load news", err)
	}
	return news, nil
}

// ListActive returns the dashboard feed: unexpired posts, newest first,
// capped at ActiveFeedLimit.
func (s *Service) ListActive() ([]models.News, error) {
	news, err := s.news.GetActive(s.now(), ActiveFeedLimit)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInfrastructure, "failed to load news", err)
	}
	return news, nil
}

// ListAll returns every post regardless of expiry, newest first.
func (s *Service) ListAll() ([]models.News, error) {
	news, err := s.news.GetAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInfrastructure, "failed to load news", err)
	}
	return news, nil
}

// Delete removes a post permanently.
func (s *Service) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.news.Delete(id); err != nil {
		return apperr.Wrap(apperr.KindInfrastructure, "failed to delete news", err)
	}
	return nil
}

// SweepExpired permanently deletes every post past its expiry and returns
// the count deleted. Items vanishing mid-sweep count as already gone, other
// per-item failures are logged and skipped; re-running with nothing newly
// expired deletes zero.
func (s *Service) SweepExpired(now time.Time) (int, error) {
	expired, err := s.news.GetExpired(now)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindInfrastructure, "failed to load expired news", err)
	}

	deleted := 0
	for _, item := range expired {
		if err := s.news.Delete(item.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			log.Errorf("[Newsfeed] deleting expired news %d failed: %v", item.ID, err)
			continue
		}
		deleted++
	}
	return deleted, nil
}

func applyMedia(news *models.News, media Media) {
	if media.Kind == "" || media.Kind == models.MEDIA_NONE {
		return
	}
	news.MediaKind = media.Kind
	news.MediaData = media.Data
	news.MediaPreview = media.Preview
}
