package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RESERVATION_PENDING   = "pending"
	RESERVATION_CONFIRMED = "confirmed"
	RESERVATION_ENDED     = "ended"
	RESERVATION_CANCELLED = "cancelled"
)

// Reservation is a booked classroom time slot for a teacher. EntryTime and
// ExitTime are clock strings drawn from the fixed daily slot grid and compare
// correctly as strings (zero-padded HH:MM).
type Reservation struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UUID       string         `gorm:"type:varchar(36);uniqueIndex" json:"uuid"`
	TeacherID  uint           `gorm:"index" json:"teacher_id" validate:"required"`
	Teacher    User           `gorm:"foreignKey:TeacherID" json:"teacher"`
	GroupGrade string         `gorm:"type:varchar(100)" json:"group_grade" validate:"required,max=100"`
	Date       time.Time      `gorm:"type:date;index" json:"date" validate:"required"`
	EntryTime  string         `gorm:"type:varchar(5)" json:"entry_time" validate:"required"`
	ExitTime   string         `gorm:"type:varchar(5)" json:"exit_time" validate:"required"`
	Motive     string         `gorm:"type:text" json:"motive" validate:"required"`
	Status     string         `gorm:"type:varchar(20);default:'pending';index" json:"status" validate:"oneof=pending confirmed ended cancelled"`
	CreatedBy  uint           `gorm:"index" json:"created_by"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Reservation model
func (Reservation) TableName() string {
	return "reservations"
}

// BeforeCreate assigns the public identifier.
func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.UUID == "" {
		r.UUID = uuid.New().String()
	}
	return nil
}

func (r *Reservation) Validate() error {
	v := validator.New()

	return v.Struct(r)
}

// IsActive reports whether the reservation still occupies its slot, meaning
// it has not reached a terminal status.
func (r *Reservation) IsActive() bool {
	return r.Status == RESERVATION_PENDING || r.Status == RESERVATION_CONFIRMED
}

// SlotWindow is the entry/exit projection returned by date queries for
// client-side availability rendering.
type SlotWindow struct {
	EntryTime string `json:"entry_time"`
	ExitTime  string `json:"exit_time"`
}
