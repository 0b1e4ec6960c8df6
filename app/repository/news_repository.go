package repository

import (
	"time"

	"github.com/carlimendez/aulareserva/app/models"
	"gorm.io/gorm"
)

// newsRepository implements the NewsRepository interface
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository instance
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create creates a new news item in the database
func (r *newsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

// GetByID retrieves a news item by its ID
func (r *newsRepository) GetByID(id uint) (*models.News, error) {
	var news models.News
	err := r.db.Preload("Author").First(&news, id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// GetActive retrieves unexpired news items, newest first, capped at limit
func (r *newsRepository) GetActive(now time.Time, limit int) ([]models.News, error) {
	var news []models.News
	err := r.db.Preload("Author").Where("expires_at > ?", now).
		Order("created_at DESC").Limit(limit).Find(&news).Error
	return news, err
}

// GetAll retrieves every news item regardless of expiry, newest first
func (r *newsRepository) GetAll() ([]models.News, error) {
	var news []models.News
	err := r.db.Preload("Author").Order("created_at DESC").Find(&news).Error
	return news, err
}

// GetExpired retrieves news items strictly past their expiry
func (r *newsRepository) GetExpired(now time.Time) ([]models.News, error) {
	var news []models.News
	err := r.db.Where("expires_at < ?", now).Find(&news).Error
	return news, err
}

// Update updates an existing news item in the database
func (r *newsRepository) Update(news *models.News) error {
	return r.db.Save(news).Error
}

// UpdateFields applies a partial column update to a news item
func (r *newsRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.News{}).Where("id = ?", id).Updates(fields).Error
}

// Delete permanently removes a news item; the expiry sweep must not leave
// soft-deleted rows behind
func (r *newsRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.News{}, id).Error
}

// Count returns the total number of news items
func (r *newsRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.News{}).Count(&count).Error
	return count, err
}
