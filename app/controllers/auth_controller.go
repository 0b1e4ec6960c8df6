package controllers

import (
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/carlimendez/aulareserva/app/repository"
	"github.com/carlimendez/aulareserva/internal/pkg/constants"
	"github.com/carlimendez/aulareserva/internal/pkg/env"
	"github.com/carlimendez/aulareserva/internal/pkg/mail"
	"github.com/carlimendez/aulareserva/internal/pkg/security"
	"github.com/carlimendez/aulareserva/internal/pkg/session"
	"github.com/carlimendez/aulareserva/internal/pkg/upload"
	"github.com/carlimendez/aulareserva/internal/pkg/usercontext"
	"github.com/carlimendez/aulareserva/internal/pkg/utils"
)

// HandleLogin renders the login page and processes login form submissions.
func HandleLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodGet {
		return c.Render("login", fiber.Map{
			"Flash": flash.Get(c),
		})
	}

	fm := fiber.Map{"type": "error"}

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByEmail(c.FormValue("email"))
	if err != nil || !user.CheckPassword(c.FormValue("password")) {
		// notice: in production you should not inform the user
		// with detailed messages about login failures
		fm["message"] = "There is a problem with the login process"

		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUsername, user.Name)
	sess.Set(usercontext.KeyUserRole, user.Role)

	err = sess.Save()
	if err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	now := time.Now()
	user.LastLoginAt = &now
	repo.Update(user)

	fm = fiber.Map{
		"type":    "success",
		"message": "Welcome back!",
	}

	return flash.WithSuccess(c, fm).Redirect(constants.DashboardRoute)
}

// HandleLogout destroys the session and returns to the login page.
func HandleLogout(c *fiber.Ctx) error {
	fm := fiber.Map{"type": "error"}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm["message"] = "logged out (no sess)"

		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	err = sess.Destroy()
	if err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect(constants.LoginRoute)
	}

	c.Locals(usercontext.KeyFromProtected, false)

	return c.Redirect(constants.LoginRoute)
}

// HandleForgotPassword emails a signed, time-limited reset link. The
// response does not reveal whether the address is registered.
func HandleForgotPassword(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil || body.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation_error",
			"message": "email is required",
		})
	}

	accepted := fiber.Map{
		"message": "If the address is registered, a reset email has been sent",
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByEmail(body.Email)
	if err != nil {
		return c.JSON(accepted)
	}

	token, err := security.GenerateResetToken(user.ID, user.Email, env.GetEnv("APP_SECRET", ""))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "could not create reset token",
		})
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", env.GetEnv("APP_URL", "http://localhost:4000"), token)
	go mail.SendPasswordResetMail(user.Email, user.Name, resetURL)

	return c.JSON(accepted)
}

// HandleResetPassword consumes a reset token and stores the new password.
func HandleResetPassword(c *fiber.Ctx) error {
	var body struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil || body.Token == "" || len(body.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation_error",
			"message": "token and a password of at least 6 characters are required",
		})
	}

	claims, err := security.VerifyResetToken(body.Token, env.GetEnv("APP_SECRET", ""))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation_error",
			"message": "invalid or expired reset token",
		})
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByID(claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "user not found",
		})
	}

	if err := user.SetPassword(body.Password); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "could not update password",
		})
	}
	if err := repo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "could not update password",
		})
	}

	return c.JSON(fiber.Map{"message": "password updated"})
}

// HandleChangePassword lets the logged-in user replace their password.
func HandleChangePassword(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var body struct {
		CurrentPassword    string `json:"currentPassword"`
		NewPassword        string `json:"newPassword"`
		ConfirmNewPassword string `json:"confirmNewPassword"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation_error",
			"message": "invalid request body",
		})
	}
	if body.NewPassword != body.ConfirmNewPassword {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation_error",
			"message": "new passwords do not match",
		})
	}
	if len(body.NewPassword) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation_error",
			"message": "password must be at least 6 characters",
		})
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByID(userCtx.UserID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "user not found",
		})
	}
	if !user.CheckPassword(body.CurrentPassword) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation_error",
			"message": "current password is incorrect",
		})
	}

	if err := user.SetPassword(body.NewPassword); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "could not update password",
		})
	}
	if err := repo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "could not update password",
		})
	}

	return c.JSON(fiber.Map{"message": "password changed"})
}

// HandleProfileUpdate updates the logged-in user's name, email and profile
// image. The image is stored inline as a data URL.
func HandleProfileUpdate(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByID(userCtx.UserID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "user not found",
		})
	}

	if name := c.FormValue("name"); name != "" {
		user.Name = name
	}
	if email := c.FormValue("email"); email != "" {
		user.Email = email
	}

	if fileHeader, err := c.FormFile("profileImage"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "validation_error",
				"message": "could not read uploaded file",
			})
		}
		defer file.Close()

		payload, err := io.ReadAll(file)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "validation_error",
				"message": "could not read uploaded file",
			})
		}
		mime, err := upload.ValidateImageBySniff(fileHeader.Filename, payload)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "validation_error",
				"message": err.Error(),
			})
		}
		user.ProfileImage = fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(payload))
	}

	if err := repo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "could not update profile",
		})
	}

	// Keep the session display name in sync
	session.SetSessionValue(c, usercontext.KeyUsername, user.Name)

	return c.JSON(fiber.Map{
		"name":          user.Name,
		"email":         user.Email,
		"profile_image": user.ProfileImage,
	})
}

// HandleCurrentUser returns the logged-in user's public profile.
func HandleCurrentUser(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	user, err := repository.GetGlobalFactory().GetUserRepository().GetByID(userCtx.UserID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "user not found",
		})
	}

	avatar := user.ProfileImage
	if avatar == "" {
		avatar = utils.GetGravatarURL(user.Email, utils.DefaultAvatarSize)
	}

	return c.JSON(fiber.Map{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"role":          user.Role,
		"profile_image": user.ProfileImage,
		"avatar":        avatar,
	})
}
