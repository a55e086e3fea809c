package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/esatic/assignment-app/internal/core/ports"
)

// pageRequest reads the ?page=&limit= query parameters. Missing or malformed
// values fall back to the defaults applied by PageRequest.Normalize.
func pageRequest(c echo.Context) ports.PageRequest {
	var req ports.PageRequest
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		req.Page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		req.Limit = v
	}
	return req.Normalize()
}

// ctxUserID extracts the authenticated user's id injected by the Auth
// middleware. Presence proves the middleware ran.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
