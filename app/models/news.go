package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	MEDIA_NONE  = "none"
	MEDIA_IMAGE = "image"
	MEDIA_VIDEO = "video"
)

// News is a time-limited post shown on the dashboard feed. It disappears from
// the active feed once ExpiresAt has passed and is purged permanently by the
// hourly expiry sweep.
type News struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"type:varchar(200)" json:"title" validate:"required,min=3,max=200"`
	Summary      string         `gorm:"type:varchar(500)" json:"summary" validate:"required,max=500"`
	Content      string         `gorm:"type:text" json:"content" validate:"required"`
	MediaKind    string         `gorm:"type:varchar(10);default:'none'" json:"media_kind" validate:"oneof=none image video"`
	MediaData    string         `gorm:"type:longtext" json:"media_data"`
	MediaPreview string         `gorm:"type:mediumtext" json:"media_preview"`
	AuthorID     uint           `gorm:"index" json:"author_id"`
	Author       User           `gorm:"foreignKey:AuthorID" json:"author"`
	ViewCount    int64          `gorm:"default:0" json:"view_count"`
	ExpiresAt    time.Time      `gorm:"index" json:"expires_at"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the News model
func (News) TableName() string {
	return "news"
}

func (n *News) Validate() error {
	v := validator.New()

	return v.Struct(n)
}

// HasMedia reports whether an attachment is present.
func (n *News) HasMedia() bool {
	return n.MediaKind == MEDIA_IMAGE || n.MediaKind == MEDIA_VIDEO
}

// IsExpired reports whether the item is past its expiry at the given time.
func (n *News) IsExpired(now time.Time) bool {
	return !n.ExpiresAt.After(now)
}
