package handler

import (
	"net/http"
	"strconv"

	md "github.com/Astemirdum/tracklab-service/pkg/middleware"

	"github.com/Astemirdum/tracklab-service/pkg/auth"
	"github.com/Astemirdum/tracklab-service/pkg/validate"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	svc     TrackLabService
	tokens  md.TokenParser
	metrics http.Handler
	log     *zap.Logger
}

// New builds the HTTP handler. metrics may be nil, then /metrics is not served.
func New(svc TrackLabService, tokens md.TokenParser, metrics http.Handler, log *zap.Logger) *Handler {
	return &Handler{
		svc:     svc,
		tokens:  tokens,
		metrics: metrics,
		log:     log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	if h.metrics != nil {
		base.GET("/metrics", echo.WrapHandler(h.metrics))
	}

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	authed := api.Group("", md.Authenticate(h.tokens))

	authed.GET("/profile", h.GetProfile)
	authed.PATCH("/profile", h.UpdateProfile)
	authed.PUT("/profile/image", h.UpdateProfileImage)
	authed.PUT("/profile/password", h.ChangePassword)
	authed.POST("/users", h.CreateUser, md.RequireAdmin)

	authed.GET("/equipment", h.ListEquipment)
	authed.GET("/equipment/:id", h.GetEquipment)
	authed.POST("/equipment", h.AddEquipment, md.RequireAdmin)
	authed.PATCH("/equipment/:id", h.UpdateEquipment, md.RequireAdmin)
	authed.DELETE("/equipment/:id", h.DeleteEquipment, md.RequireAdmin)

	authed.POST("/borrowers/resolve", h.ResolveBorrower)
	authed.GET("/borrowers/:code", h.GetBorrower)

	authed.POST("/borrows", h.Borrow)
	authed.GET("/borrows/active", h.ActiveBorrows)
	authed.GET("/borrows/:id", h.GetBorrow)
	authed.POST("/borrows/:id/return", h.Return)
	authed.DELETE("/borrows/:id", h.Void, md.RequireAdmin)

	authed.GET("/reports/history", h.History)
	authed.GET("/reports/damages", h.Damages)
	authed.GET("/reports/overdue", h.Overdue)
	authed.GET("/reports/inventory", h.Inventory)
	authed.GET("/reports/daily", h.DailyCounts)
	authed.GET("/dashboard", h.Dashboard)
	authed.GET("/activity", h.ListActivity, md.RequireAdmin)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func actor(c echo.Context) (auth.Actor, error) {
	a, err := auth.ActorFromContext(c.Request().Context())
	if err != nil {
		return auth.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return a, nil
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// httpError maps service errors onto status codes.
func httpError(err error) *echo.HTTPError {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidArgument):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrAlreadyReturned),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrDuplicateIdentity):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrUnauthorized), errors.Is(err, errs.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrStorageUnavailable):
		code = http.StatusServiceUnavailable
	}
	return echo.NewHTTPError(code, err.Error())
}
