package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ines300405/luxury-wheels/internal/services"
	"github.com/ines300405/luxury-wheels/internal/utils"
	"github.com/ines300405/luxury-wheels/internal/validators"
)

// writeServiceError translates the service error taxonomy into the HTTP
// envelope: validation failures are 400, missing rows 404, uniqueness
// conflicts 409, anything else 500.
func writeServiceError(c *gin.Context, resource string, err error) {
	var validationErrs validators.ValidationErrors
	if errors.As(err, &validationErrs) {
		utils.ValidationErrorResponse(c, validationErrs.Details())
		return
	}
	if services.IsConflict(err) {
		utils.ConflictResponse(c, err.Error())
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		utils.NotFoundResponse(c, resource)
		return
	}
	utils.InternalServerErrorResponse(c)
}

// parseIDParam reads the :id path segment. A non-numeric or non-positive
// value is reported as a bad request and ok is false.
func parseIDParam(c *gin.Context, resource string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.BadRequestResponse(c, "Invalid "+resource+" ID")
		return 0, false
	}
	return id, true
}
