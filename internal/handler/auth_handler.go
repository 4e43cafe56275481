package handler

import (
	"errors"

	"go-retail-api/internal/model"
	"go-retail-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, 400, "Invalid JSON")
	}
	if body.Email == "" || body.Password == "" {
		return fail(c, 400, "Email and password are required")
	}

	resp, err := h.service.Login(body.Email, body.Password)
	if err != nil {
		return fail(c, 401, err.Error())
	}
	return ok(c, resp)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Role      string `json:"role"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	user := &model.User{
		Email:     body.Email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	}

	resp, err := h.service.Register(user, body.Password, body.Role)
	if err != nil {
		return failErr(c, 400, "Failed to register", err)
	}
	return created(c, "Account created successfully", resp)
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, err := parseUUID(getUserID(c))
	if err != nil {
		return fail(c, 401, "Not authenticated")
	}

	profile, err := h.service.Profile(userID)
	if err != nil {
		return fail(c, 404, "User not found")
	}
	return ok(c, profile)
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := parseUUID(getUserID(c))
	if err != nil {
		return fail(c, 401, "Not authenticated")
	}

	var body struct {
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	profile, err := h.service.UpdateProfile(userID, &model.User{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		PhoneNumber: body.PhoneNumber,
	})
	if err != nil {
		return failErr(c, 400, "Failed to update profile", err)
	}
	return okMessage(c, "Profile updated successfully", profile)
}

// ChangePassword handles PUT /auth/change-password. The current password is
// required; a bearer token alone is not enough to take over the account.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID, err := parseUUID(getUserID(c))
	if err != nil {
		return fail(c, 401, "Not authenticated")
	}

	var body struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, 400, "Invalid JSON")
	}
	if body.CurrentPassword == "" || body.NewPassword == "" {
		return fail(c, 400, "Current and new password are required")
	}

	if err := h.service.ChangePassword(userID, body.CurrentPassword, body.NewPassword); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			return fail(c, 400, "Current password is incorrect")
		}
		return failErr(c, 400, "Failed to change password", err)
	}
	return okMessage(c, "Password changed successfully, please log in again", nil)
}
