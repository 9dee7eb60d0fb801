package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

// pathID parses a numeric path parameter. Non-numeric and non-positive
// values are validation failures.
func pathID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid " + name)
	}
	return id, nil
}
