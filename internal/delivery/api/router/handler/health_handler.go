package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root answers the bare liveness probe used by the storefront.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "Server is running")
}

// HealthCheck reports that the API process is serving.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
