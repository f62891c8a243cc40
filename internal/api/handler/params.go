package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var idValidator = validator.New()

// pathID reads an id path parameter. Ids that are not well-formed store keys
// are reported as notFound, the same as ids that match nothing.
func pathID(c echo.Context, name string, notFound error) (string, error) {
	id := c.Param(name)
	if err := idValidator.Var(id, "required,mongodb"); err != nil {
		return "", notFound
	}
	return id, nil
}
