package repository

import (
	"time"

	"github.com/carlimendez/aulareserva/app/models"
	"gorm.io/gorm"
)

// reservationRepository implements the ReservationRepository interface
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository instance
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

// Create creates a new reservation in the database
func (r *reservationRepository) Create(reservation *models.Reservation) error {
	return r.db.Create(reservation).Error
}

// GetByID retrieves a reservation by its ID
func (r *reservationRepository) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.Preload("Teacher").First(&reservation, id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// GetByUUID retrieves a reservation by its public identifier
func (r *reservationRepository) GetByUUID(uuid string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.Preload("Teacher").Where("uuid = ?", uuid).First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// GetByTeacherID retrieves all reservations booked for a teacher
func (r *reservationRepository) GetByTeacherID(teacherID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Preload("Teacher").Where("teacher_id = ?", teacherID).Find(&reservations).Error
	return reservations, err
}

// GetByDate retrieves all reservations on the given calendar date
func (r *reservationRepository) GetByDate(date time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Where("date = ?", date.Format("2006-01-02")).Find(&reservations).Error
	return reservations, err
}

// GetActive retrieves all reservations in a non-terminal status
func (r *reservationRepository) GetActive() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Where("status IN ?", []string{models.RESERVATION_PENDING, models.RESERVATION_CONFIRMED}).
		Find(&reservations).Error
	return reservations, err
}

// GetAll retrieves every reservation
func (r *reservationRepository) GetAll() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Preload("Teacher").Find(&reservations).Error
	return reservations, err
}

// Update updates an existing reservation in the database
func (r *reservationRepository) Update(reservation *models.Reservation) error {
	return r.db.Save(reservation).Error
}

// UpdateFields applies a partial column update to a reservation
func (r *reservationRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Reservation{}).Where("id = ?", id).Updates(fields).Error
}

// Delete soft deletes a reservation by its ID
func (r *reservationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Reservation{}, id).Error
}

// Count returns the total number of reservations
func (r *reservationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Reservation{}).Count(&count).Error
	return count, err
}
