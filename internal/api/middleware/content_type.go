package middleware

import "github.com/labstack/echo/v4"

// ContentTypeJSON defaults every response to application/json. Handlers that
// render another type still override it.
func ContentTypeJSON() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			return next(c)
		}
	}
}
