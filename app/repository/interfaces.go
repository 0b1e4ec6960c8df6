package repository

import (
	"time"

	"github.com/carlimendez/aulareserva/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByRole(role string) ([]models.User, error)
	GetAll() ([]models.User, error)
	GetAllExcludingRole(role string) ([]models.User, error)
	EmailExists(email string) (bool, error)
	Update(user *models.User) error
	Delete(id uint) error
	Count() (int64, error)
}

// ReservationRepository defines the interface for reservation-related database operations
type ReservationRepository interface {
	Create(reservation *models.Reservation) error
	GetByID(id uint) (*models.Reservation, error)
	GetByUUID(uuid string) (*models.Reservation, error)
	GetByTeacherID(teacherID uint) ([]models.Reservation, error)
	GetByDate(date time.Time) ([]models.Reservation, error)
	GetActive() ([]models.Reservation, error)
	GetAll() ([]models.Reservation, error)
	Update(reservation *models.Reservation) error
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	Count() (int64, error)
}

// NewsRepository defines the interface for news-related database operations
type NewsRepository interface {
	Create(news *models.News) error
	GetByID(id uint) (*models.News, error)
	GetActive(now time.Time, limit int) ([]models.News, error)
	GetAll() ([]models.News, error)
	GetExpired(now time.Time) ([]models.News, error)
	Update(news *models.News) error
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	Count() (int64, error)
}

// Repositories holds all repository instances
type Repositories struct {
	User        UserRepository
	Reservation ReservationRepository
	News        NewsRepository
}

// NewRepositories creates all repository instances with the given database connection
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Reservation: NewReservationRepository(db),
		News:        NewNewsRepository(db),
	}
}
