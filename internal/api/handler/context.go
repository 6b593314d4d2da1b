package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Context keys set by middleware.Auth.
const (
	CtxHostID = "host_id"
	CtxEmail  = "email"
)

// ctxHostID returns the authenticated host's ID. An empty value means the
// Auth middleware did not run or the token lacked the claim.
func ctxHostID(c echo.Context) (string, error) {
	hostID, _ := c.Get(CtxHostID).(string)
	if hostID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return hostID, nil
}
