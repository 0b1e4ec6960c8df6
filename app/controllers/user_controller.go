package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carlimendez/aulareserva/app/models"
	"github.com/carlimendez/aulareserva/app/repository"
	"github.com/carlimendez/aulareserva/internal/pkg/apperr"
	"github.com/carlimendez/aulareserva/internal/pkg/rbac"
	"github.com/carlimendez/aulareserva/internal/pkg/usercontext"
)

// UserController handles user management requests.
type UserController struct {
	users repository.UserRepository
}

// NewUserController creates a user controller.
func NewUserController(users repository.UserRepository) *UserController {
	return &UserController{users: users}
}

type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// HandleList returns the user directory. Superadmins see everyone; admins do
// not see superadmin accounts.
func (uc *UserController) HandleList(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var (
		users []models.User
		err   error
	)
	if rbac.Allowed(userCtx.Role, rbac.CapSuperadminManage) {
		users, err = uc.users.GetAll()
	} else {
		users, err = uc.users.GetAllExcludingRole(models.ROLE_SUPERADMIN)
	}
	if err != nil {
		return respondError(c, apperr.Wrap(apperr.KindInfrastructure, "failed to load users", err))
	}
	return c.JSON(users)
}

// HandleTeachers returns the teacher directory used by the reservation form.
func (uc *UserController) HandleTeachers(c *fiber.Ctx) error {
	teachers, err := uc.users.GetByRole(models.ROLE_TEACHER)
	if err != nil {
		return respondError(c, apperr.Wrap(apperr.KindInfrastructure, "failed to load teachers", err))
	}

	out := make([]fiber.Map, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, fiber.Map{"id": t.ID, "name": t.Name})
	}
	return c.JSON(out)
}

// HandleCreate registers a new user account.
func (uc *UserController) HandleCreate(c *fiber.Ctx) error {
	var body userRequest
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, apperr.New(apperr.KindValidation, "invalid request body"))
	}
	if body.Name == "" || body.Email == "" || body.Password == "" || body.Role == "" {
		return respondError(c, apperr.New(apperr.KindValidation, "name, email, password and role are required"))
	}

	exists, err := uc.users.EmailExists(body.Email)
	if err != nil {
		return respondError(c, apperr.Wrap(apperr.KindInfrastructure, "failed to check email", err))
	}
	if exists {
		return respondError(c, apperr.New(apperr.KindConflict, "email is already registered"))
	}

	user, err := models.CreateUser(body.Name, body.Email, body.Password, body.Role)
	if err != nil {
		return respondError(c, apperr.Wrap(apperr.KindValidation, "invalid user data", err))
	}

	if err := uc.users.Create(user); err != nil {
		return respondError(c, apperr.Wrap(apperr.KindInfrastructure, "failed to save user", err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "user created"})
}

// HandleGet returns a single user for the edit form.
func (uc *UserController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	user, err := uc.users.GetByID(id)
	if err != nil {
		return respondError(c, apperr.New(apperr.KindNotFound, "user not found"))
	}
	return c.JSON(user)
}

// HandleEdit updates a user account. Only superadmins may touch superadmin
// accounts or change roles.
func (uc *UserController) HandleEdit(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	user, err := uc.users.GetByID(id)
	if err != nil {
		return respondError(c, apperr.New(apperr.KindNotFound, "user not found"))
	}
	if user.IsSuperAdmin() && !rbac.Allowed(userCtx.Role, rbac.CapSuperadminManage) {
		return respondError(c, apperr.New(apperr.KindAuthorization, "not allowed to edit superadmins"))
	}

	var body userRequest
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, apperr.New(apperr.KindValidation, "invalid request body"))
	}

	if body.Name != "" {
		user.Name = body.Name
	}
	if body.Email != "" {
		user.Email = body.Email
	}
	if body.Password != "" {
		if err := user.SetPassword(body.Password); err != nil {
			return respondError(c, apperr.Wrap(apperr.KindInfrastructure, "failed to hash password", err))
		}
	}
	if body.Role != "" && rbac.Allowed(userCtx.Role, rbac.CapRolesAssign) {
		user.Role = body.Role
	}

	if err := uc.users.Update(user); err != nil {
		return respondError(c, apperr.Wrap(apperr.KindInfrastructure, "failed to update user", err))
	}
	return c.JSON(fiber.Map{"message": "user updated"})
}

// HandleDelete removes a user account. Superadmin accounts are protected
// from non-superadmins, and nobody may delete their own account.
func (uc *UserController) HandleDelete(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	user, err := uc.users.GetByID(id)
	if err != nil {
		return respondError(c, apperr.New(apperr.KindNotFound, "user not found"))
	}
	if user.IsSuperAdmin() && !rbac.Allowed(userCtx.Role, rbac.CapSuperadminManage) {
		return respondError(c, apperr.New(apperr.KindAuthorization, "not allowed to delete superadmins"))
	}
	if user.ID == userCtx.UserID {
		return respondError(c, apperr.New(apperr.KindAuthorization, "cannot delete your own account"))
	}

	if err := uc.users.Delete(id); err != nil {
		return respondError(c, apperr.Wrap(apperr.KindInfrastructure, "failed to delete user", err))
	}
	return c.JSON(fiber.Map{"message": "user deleted"})
}
