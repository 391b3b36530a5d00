package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/selebrow/dbquota/pkg/dto"
	"github.com/selebrow/dbquota/pkg/models"
	"github.com/selebrow/dbquota/pkg/quota"
)

// UsageController measures every database on the server on demand, nothing is enforced.
type UsageController struct {
	sizes quota.SizeInspector
	limit int64
}

func NewUsageController(sizes quota.SizeInspector, limit int64) *UsageController {
	return &UsageController{sizes: sizes, limit: limit}
}

func (u *UsageController) Usage(c echo.Context) error {
	sizes, err := u.sizes.SizeOfAll(c.Request().Context())
	if err != nil {
		err = models.WrapCancelledErr(err)
		if _, ok := unwrapErrorWithCode(err); ok {
			return err
		}
		return models.NewServiceUnavailableError(errors.Wrap(err, "failed to measure databases"))
	}

	return c.JSON(http.StatusOK, &dto.Usage{
		MaxDBSize: u.limit,
		Databases: sizes,
	})
}
