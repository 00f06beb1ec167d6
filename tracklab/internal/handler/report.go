package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	"github.com/labstack/echo/v4"
)

const (
	dateLayout       = "2006-01-02"
	defaultRangeDays = 30
)

// dateRange reads inclusive ?from= and ?to= days, defaulting to the last 30 days.
func dateRange(c echo.Context) (model.DateRange, error) {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -defaultRangeDays)
	var err error
	if v := c.QueryParam("from"); v != "" {
		if from, err = time.Parse(dateLayout, v); err != nil {
			return model.DateRange{}, echo.NewHTTPError(http.StatusBadRequest, "from is invalid")
		}
	}
	if v := c.QueryParam("to"); v != "" {
		if to, err = time.Parse(dateLayout, v); err != nil {
			return model.DateRange{}, echo.NewHTTPError(http.StatusBadRequest, "to is invalid")
		}
	}
	if to.Before(from) {
		return model.DateRange{}, echo.NewHTTPError(http.StatusBadRequest, "to is before from")
	}
	return model.DayRange(from, to), nil
}

func (h *Handler) History(c echo.Context) error {
	r, err := dateRange(c)
	if err != nil {
		return err
	}
	items, err := h.svc.History(c.Request().Context(), r)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Damages(c echo.Context) error {
	r, err := dateRange(c)
	if err != nil {
		return err
	}
	items, err := h.svc.Damages(c.Request().Context(), r)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Overdue(c echo.Context) error {
	items, err := h.svc.Overdue(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Inventory(c echo.Context) error {
	items, err := h.svc.Inventory(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) DailyCounts(c echo.Context) error {
	r, err := dateRange(c)
	if err != nil {
		return err
	}
	items, err := h.svc.DailyCounts(c.Request().Context(), r)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Dashboard(c echo.Context) error {
	d, err := h.svc.Dashboard(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) ListActivity(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit is invalid")
		}
	}
	items, err := h.svc.ListActivity(c.Request().Context(), a, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}
