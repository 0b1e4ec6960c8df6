package schedule

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/carlimendez/aulareserva/app/models"
	"github.com/carlimendez/aulareserva/app/repository"
	"github.com/carlimendez/aulareserva/internal/pkg/apperr"
)

// EndGracePeriod is how long past a reservation's exit time the auto-end
// sweep waits before transitioning it to ended.
const EndGracePeriod = 5 * time.Minute

// Allocator validates requested time slots against the fixed daily grid and
// existing bookings, and drives the reservation status lifecycle. The overlap
// check and the subsequent insert are serialized per date so two concurrent
// creates cannot both pass the check for the same window.
type Allocator struct {
	reservations repository.ReservationRepository
	users        repository.UserRepository
	now          func() time.Time

	mu        sync.Mutex
	dateLocks map[string]*sync.Mutex
}

// NewAllocator creates an allocator backed by the given repositories.
func NewAllocator(reservations repository.ReservationRepository, users repository.UserRepository) *Allocator {
	return &Allocator{
		reservations: reservations,
		users:        users,
		now:          time.Now,
		dateLocks:    make(map[string]*sync.Mutex),
	}
}

// SetClock overrides the wall clock, for tests.
func (a *Allocator) SetClock(now func() time.Time) {
	a.now = now
}

func (a *Allocator) lockDate(date time.Time) *sync.Mutex {
	key := DateOnly(date).Format("2006-01-02")
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.dateLocks[key]; !ok {
		a.dateLocks[key] = &sync.Mutex{}
	}
	return a.dateLocks[key]
}

// CreateInput carries the raw fields of a reservation request.
type CreateInput struct {
	TeacherID  uint
	GroupGrade string
	Date       time.Time
	EntryTime  string
	ExitTime   string
	Motive     string
	CreatedBy  uint
}

// Create validates the request against the slot grid and existing bookings
// for that date, then persists a pending reservation.
func (a *Allocator) Create(in CreateInput) (*models.Reservation, error) {
	if in.TeacherID == 0 || in.GroupGrade == "" || in.Date.IsZero() || in.EntryTime == "" || in.ExitTime == "" || in.Motive == "" {
		return nil, apperr.New(apperr.KindValidation, "all fields are required")
	}
	if !ValidEntryTime(in.EntryTime) || !ValidExitTime(in.ExitTime) {
		return nil, apperr.New(apperr.KindValidation, "time is not on the slot grid")
	}
	if in.EntryTime >= in.ExitTime {
		return nil, apperr.New(apperr.KindValidation, "entry time must be before exit time")
	}
	if DateOnly(in.Date).Before(DateOnly(a.now())) {
		return nil, apperr.New(apperr.KindValidation, "date cannot be in the past")
	}

	teacher, err := a.users.GetByID(in.TeacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindInvalidReference, "teacher not found")
		}
		return nil, apperr.Wrap(apperr.KindInfrastructure, "failed to load teacher", err)
	}
	if !teacher.IsTeacher() {
		return nil, apperr.New(apperr.KindInvalidReference, "user is not a teacher")
	}

	lock := a.lockDate(in.Date)
	lock.Lock()
	defer lock.Unlock()

	existing, err := a.reservations.GetByDate(DateOnly(in.Date))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInfrastructure, "failed to load reservations", err)
	}
	for _, ex := range existing {
		if Overlaps(in.EntryTime, in.ExitTime, ex.EntryTime, ex.ExitTime) {
			return nil, apperr.Newf(apperr.KindConflict, "slot overlaps existing reservation %s-%s", ex.EntryTime, ex.ExitTime)
		}
	}

	reservation := &models.Reservation{
		TeacherID:  in.TeacherID,
		GroupGrade: in.GroupGrade,
		Date:       DateOnly(in.Date),
		EntryTime:  in.EntryTime,
		ExitTime:   in.ExitTime,
		Motive:     in.Motive,
		Status:     models.RESERVATION_PENDING,
		CreatedBy:  in.CreatedBy,
	}
	if err := a.reservations.Create(reservation); err != nil {
		return nil, apperr.Wrap(apperr.KindInfrastructure, "failed to save reservation", err)
	}
	return reservation, nil
}

// ListFor returns the reservations visible to the requesting user: teachers
// see only their own, admins and superadmins see everything.
func (a *Allocator) ListFor(userID uint, role string) ([]models.Reservation, error) {
	var (
		reservations []models.Reservation
		err          error
	)
	if role == models.ROLE_TEACHER {
		reservations, err = a.reservations.GetByTeacherID(userID)
	} else {
		reservations, err = a.reservations.GetAll()
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInfrastructure, "failed to load reservations", err)
	}
	return reservations, nil
}

// ListByDate returns the entry/exit windows booked on the given date.
func (a *Allocator) ListByDate(date time.Time) ([]models.SlotWindow, error) {
	reservations, err := a.reservations.GetByDate(DateOnly(date))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInfrastructure, "failed to load reservations", err)
	}
	windows := make([]models.SlotWindow, 0, len(reservations))
	for _, r := range reservations {
		windows = append(windows, models.SlotWindow{EntryTime: r.EntryTime, ExitTime: r.ExitTime})
	}
	return windows, nil
}

// Get loads a single reservation by id.
func (a *Allocator) Get(id uint) (*models.Reservation, error) {
	reservation, err := a.reservations.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "reservation not found")
		}
		return nil, apperr.Wrap(apperr.KindInfrastructure, "failed to load reservation", err)
	}
	return reservation, nil
}

// Edit applies a direct field replacement. Slot and overlap constraints are
// deliberately not re-checked here, matching the admin edit semantics.
func (a *Allocator) Edit(id uint, fields map[string]interface{}) error {
	if _, err := a.Get(id); err != nil {
		return err
	}
	if err := a.reservations.UpdateFields(id, fields); err != nil {
		return apperr.Wrap(apperr.KindInfrastructure, "failed to update reservation", err)
	}
	return nil
}

// Cancel transitions a pending or confirmed reservation to cancelled.
func (a *Allocator) Cancel(id uint) error {
	reservation, err := a.Get(id)
	if err != nil {
		return err
	}
	if !CanTransition(reservation.Status, models.RESERVATION_CANCELLED) {
		return apperr.New(apperr.KindInvalidState, "reservation is already cancelled or finished")
	}
	reservation.Status = models.RESERVATION_CANCELLED
	if err := a.reservations.Update(reservation); err != nil {
		return apperr.Wrap(apperr.KindInfrastructure, "failed to update reservation", err)
	}
	return nil
}

// ConfirmEnd transitions a pending or confirmed reservation to ended. A
// teacher may only end their own reservation; admins may end any.
func (a *Allocator) ConfirmEnd(id uint, requesterID uint, requesterRole string) error {
	reservation, err := a.Get(id)
	if err != nil {
		return err
	}
	if !CanTransition(reservation.Status, models.RESERVATION_ENDED) {
		return apperr.New(apperr.KindInvalidState, "reservation is already cancelled or finished")
	}
	if requesterRole == models.ROLE_TEACHER && reservation.TeacherID != requesterID {
		return apperr.New(apperr.KindAuthorization, "not allowed to end this reservation")
	}
	reservation.Status = models.RESERVATION_ENDED
	if err := a.reservations.Update(reservation); err != nil {
		return apperr.Wrap(apperr.KindInfrastructure, "failed to update reservation", err)
	}
	return nil
}

// Delete removes a reservation permanently.
func (a *Allocator) Delete(id uint) error {
	if _, err := a.Get(id); err != nil {
		return err
	}
	if err := a.reservations.Delete(id); err != nil {
		return apperr.Wrap(apperr.KindInfrastructure, "failed to delete reservation", err)
	}
	return nil
}

// pruneDateLocks drops the create-serialization mutexes of past dates. A
// create for a past date is rejected before it ever takes the lock, so the
// entries cannot be re-acquired and the map would otherwise grow forever.
func (a *Allocator) pruneDateLocks(now time.Time) {
	today := DateOnly(now).Format("2006-01-02")
	a.mu.Lock()
	defer a.mu.Unlock()
	for key := range a.dateLocks {
		if key < today {
			delete(a.dateLocks, key)
		}
	}
}

// AutoEndOverdue ends every active reservation whose exit time plus the
// grace period has passed. It runs on a timer, continues past individual
// failures and returns how many reservations it ended.
func (a *Allocator) AutoEndOverdue(now time.Time) (int, error) {
	a.pruneDateLocks(now)

	active, err := a.reservations.GetActive()
	if err != nil {
		return 0, apperr.Wrap(apperr.KindInfrastructure, "failed to load active reservations", err)
	}

	ended := 0
	for i := range active {
		reservation := &active[i]
		deadline := SlotEnd(reservation.Date, reservation.ExitTime).Add(EndGracePeriod)
		if now.Before(deadline) {
			continue
		}
		reservation.Status = models.RESERVATION_ENDED
		if err := a.reservations.Update(reservation); err != nil {
			log.Errorf("[Schedule] auto-end of reservation %d failed: %v", reservation.ID, err)
			continue
		}
		ended++
	}
	return ended, nil
}
