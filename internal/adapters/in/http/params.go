package http

import (
	"fmt"
	"net/http"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// pathUUID binds a uuid path parameter the way generated oapi servers do.
// Failures are always a 400 *echo.HTTPError.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	kid, err := toKernel(name, id)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return kid, nil
}

func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return nil
}

func toKernel(name string, id uuid.UUID) (kernel.UUID, error) {
	if id == uuid.Nil {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}
	return kernel.UUIDFromBytes(id[:])
}
