package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carlimendez/aulareserva/internal/pkg/apperr"
	"github.com/carlimendez/aulareserva/internal/pkg/schedule"
	"github.com/carlimendez/aulareserva/internal/pkg/usercontext"
)

// ReservationController handles reservation HTTP requests on top of the
// slot allocator.
type ReservationController struct {
	allocator *schedule.Allocator
}

// NewReservationController creates a reservation controller.
func NewReservationController(allocator *schedule.Allocator) *ReservationController {
	return &ReservationController{allocator: allocator}
}

type reservationRequest struct {
	TeacherID  uint   `json:"teacherId"`
	GroupGrade string `json:"groupGrade"`
	Date       string `json:"date"`
	EntryTime  string `json:"entryTime"`
	ExitTime   string `json:"exitTime"`
	Motive     string `json:"motive"`
}

// HandleCreate books a new time slot for a teacher.
func (rc *ReservationController) HandleCreate(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var body reservationRequest
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, apperr.New(apperr.KindValidation, "invalid request body"))
	}

	date, err := parseDateValue(body.Date)
	if err != nil {
		return respondError(c, err)
	}

	reservation, err := rc.allocator.Create(schedule.CreateInput{
		TeacherID:  body.TeacherID,
		GroupGrade: body.GroupGrade,
		Date:       date,
		EntryTime:  body.EntryTime,
		ExitTime:   body.ExitTime,
		Motive:     body.Motive,
		CreatedBy:  userCtx.UserID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "reservation created",
		"reservation": reservation,
	})
}

// HandleList returns the reservations visible to the requester: teachers see
// their own, admins see everything.
func (rc *ReservationController) HandleList(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	reservations, err := rc.allocator.ListFor(userCtx.UserID, userCtx.Role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reservations)
}

// HandleListByDate returns the booked entry/exit windows on a date, used for
// slot-availability rendering.
func (rc *ReservationController) HandleListByDate(c *fiber.Ctx) error {
	date, err := parseDateValue(c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}

	windows, err := rc.allocator.ListByDate(date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(windows)
}

// HandleGet returns a single reservation for the edit form.
func (rc *ReservationController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	reservation, err := rc.allocator.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reservation)
}

// HandleEdit applies a direct field replacement to a reservation.
func (rc *ReservationController) HandleEdit(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var body reservationRequest
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, apperr.New(apperr.KindValidation, "invalid request body"))
	}

	fields := map[string]interface{}{}
	if body.TeacherID != 0 {
		fields["teacher_id"] = body.TeacherID
	}
	if body.GroupGrade != "" {
		fields["group_grade"] = body.GroupGrade
	}
	if body.Date != "" {
		date, err := parseDateValue(body.Date)
		if err != nil {
			return respondError(c, err)
		}
		fields["date"] = schedule.DateOnly(date)
	}
	if body.EntryTime != "" {
		fields["entry_time"] = body.EntryTime
	}
	if body.ExitTime != "" {
		fields["exit_time"] = body.ExitTime
	}
	if body.Motive != "" {
		fields["motive"] = body.Motive
	}

	if err := rc.allocator.Edit(id, fields); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "reservation updated"})
}

// HandleCancel transitions a reservation to cancelled.
func (rc *ReservationController) HandleCancel(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := rc.allocator.Cancel(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "reservation cancelled"})
}

// HandleConfirmEnd transitions a reservation to ended. Teachers may only end
// their own reservation.
func (rc *ReservationController) HandleConfirmEnd(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := rc.allocator.ConfirmEnd(id, userCtx.UserID, userCtx.Role); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "reservation ended"})
}

// HandleDelete removes a reservation.
func (rc *ReservationController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := rc.allocator.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "reservation deleted"})
}

// HandleSlotGrid returns the fixed entry/exit boundary sets so clients do
// not hardcode the school day.
func (rc *ReservationController) HandleSlotGrid(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"entry_times": schedule.EntryTimes,
		"exit_times":  schedule.ExitTimes,
	})
}
