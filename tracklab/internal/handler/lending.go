package handler

import (
	"net/http"
	"time"

	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/service"
	"github.com/labstack/echo/v4"
)

type borrowRequest struct {
	EquipmentID        int64                   `json:"equipmentId" validate:"required,gt=0"`
	BorrowerID         int64                   `json:"borrowerId" validate:"gte=0"`
	Borrower           *model.BorrowerIdentity `json:"borrower"`
	BorrowDate         *time.Time              `json:"borrowDate"`
	ExpectedReturnDate *time.Time              `json:"expectedReturnDate"`
	Purpose            string                  `json:"purpose"`
	Quantity           int                     `json:"quantity" validate:"gte=0"`
}

type returnRequest struct {
	Condition string `json:"condition" validate:"required"`
	Remarks   string `json:"remarks"`
}

func (h *Handler) ResolveBorrower(c echo.Context) error {
	var req model.BorrowerIdentity
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := h.svc.ResolveBorrower(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"borrowerId": id})
}

func (h *Handler) GetBorrower(c echo.Context) error {
	b, err := h.svc.GetBorrowerByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) Borrow(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req borrowRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	br := model.BorrowRequest{
		EquipmentID:        req.EquipmentID,
		BorrowerID:         req.BorrowerID,
		Borrower:           req.Borrower,
		ExpectedReturnDate: req.ExpectedReturnDate,
		Purpose:            req.Purpose,
		Quantity:           req.Quantity,
	}
	if req.BorrowDate != nil {
		br.BorrowDate = *req.BorrowDate
	}

	res, err := h.svc.Borrow(c.Request().Context(), a, br)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) Return(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req returnRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	res, err := h.svc.Return(c.Request().Context(), a, model.ReturnRequest{
		BorrowID:  id,
		Condition: model.Condition(req.Condition),
		Remarks:   req.Remarks,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) Void(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err = h.svc.Void(c.Request().Context(), a, id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ActiveBorrows filters by ?borrower=<code>, or by the caller's own code with ?mine=true.
func (h *Handler) ActiveBorrows(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	code := c.QueryParam("borrower")
	if c.QueryParam("mine") == "true" {
		code = service.FormatExternalCode(a.Role, a.UserID)
	}
	items, err := h.svc.ActiveBorrows(c.Request().Context(), code)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetBorrow(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	d, err := h.svc.GetBorrow(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, d)
}
