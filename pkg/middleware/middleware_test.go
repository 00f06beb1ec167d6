package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Astemirdum/tracklab-service/pkg/auth"
	"github.com/Astemirdum/tracklab-service/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	staff, _, err := tm.Issue(auth.Actor{UserID: 1, Username: "admin", Role: auth.RoleStaff})
	require.NoError(t, err)
	student, _, err := tm.Issue(auth.Actor{UserID: 2, Username: "ana", Role: auth.RoleStudent})
	require.NoError(t, err)

	e := echo.New()
	g := e.Group("", middleware.Authenticate(tm))
	g.GET("/me", func(c echo.Context) error {
		a, err := auth.ActorFromContext(c.Request().Context())
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, a.Username)
	})
	g.GET("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, middleware.RequireAdmin)

	tests := []struct {
		name   string
		path   string
		header string
		code   int
		body   string
	}{
		{name: "no header", path: "/me", code: http.StatusUnauthorized},
		{name: "not bearer", path: "/me", header: "Basic abc", code: http.StatusUnauthorized},
		{name: "garbage token", path: "/me", header: "Bearer abc", code: http.StatusUnauthorized},
		{name: "ok", path: "/me", header: "Bearer " + student, code: http.StatusOK, body: "ana"},
		{name: "student on admin route", path: "/admin", header: "Bearer " + student, code: http.StatusForbidden},
		{name: "staff on admin route", path: "/admin", header: "Bearer " + staff, code: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			if tt.header != "" {
				req.Header.Set(middleware.AuthorizationHeader, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, req)
			assert.Equal(t, tt.code, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}
