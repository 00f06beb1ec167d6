package handler

import (
	"net/http"

	"github.com/Astemirdum/tracklab-service/pkg/auth"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=Student Staff"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type profileRequest struct {
	Email      string `json:"email" validate:"omitempty,email"`
	Contact    string `json:"contact" validate:"max=20"`
	Department string `json:"department" validate:"max=100"`
}

type imageRequest struct {
	Path string `json:"path" validate:"required,max=255"`
}

type passwordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

func (h *Handler) Register(c echo.Context) error {
	return h.register(c, auth.Actor{})
}

// CreateUser lets an administrator register accounts of any role.
func (h *Handler) CreateUser(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	return h.register(c, a)
}

func (h *Handler) register(c echo.Context, a auth.Actor) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := h.svc.Register(c.Request().Context(), a, req.Username, req.Password, auth.Role(req.Role))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	sess, err := h.svc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) GetProfile(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	u, err := h.svc.GetProfile(c.Request().Context(), a)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req profileRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	if err = h.svc.UpdateProfile(c.Request().Context(), a, model.ProfileUpdate{
		Email:      req.Email,
		Contact:    req.Contact,
		Department: req.Department,
	}); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) UpdateProfileImage(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req imageRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	if err = h.svc.UpdateProfileImage(c.Request().Context(), a, req.Path); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ChangePassword(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req passwordRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	if err = h.svc.ChangePassword(c.Request().Context(), a, req.OldPassword, req.NewPassword); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
