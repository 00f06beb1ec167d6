package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	"github.com/labstack/echo/v4"
)

type equipmentRequest struct {
	Code        string `json:"code" validate:"required,max=50"`
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"max=50"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
	Condition   string `json:"condition"`
}

// equipmentUpdateRequest fields left out of the body keep their stored value.
type equipmentUpdateRequest struct {
	Category  *string          `json:"category" validate:"omitempty,max=50"`
	Quantity  *int             `json:"quantity" validate:"omitempty,gte=0"`
	Condition *model.Condition `json:"condition"`
}

func (h *Handler) AddEquipment(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req equipmentRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	id, err := h.svc.AddEquipment(c.Request().Context(), a, model.Equipment{
		Code:        req.Code,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Quantity:    req.Quantity,
		Condition:   model.Condition(req.Condition),
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handler) ListEquipment(c echo.Context) error {
	f := model.EquipmentFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("q"),
	}
	if v := c.QueryParam("available"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "available is invalid")
		}
		f.AvailableOnly = available
	}
	items, err := h.svc.ListEquipment(c.Request().Context(), f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetEquipment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	e, err := h.svc.GetEquipment(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler) UpdateEquipment(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req equipmentUpdateRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	if err = h.svc.UpdateEquipment(c.Request().Context(), a, id, model.EquipmentUpdate{
		Category:  req.Category,
		Quantity:  req.Quantity,
		Condition: req.Condition,
	}); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteEquipment(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err = h.svc.DeleteEquipment(c.Request().Context(), a, id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
