// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/edunexus/schoolrecords/internal/app/models/dto"
	"github.com/edunexus/schoolrecords/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
)

// parseIDParam reads the :id path parameter. It answers 404 itself when the id is not a number.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Not found.")
		ctx.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// optionalInt64Query reads an integer filter from the query string. Empty means no filter.
func optionalInt64Query(ctx *gin.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(ctx.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperrors.NewValidationError(name, "A valid integer is required.")
	}
	return &v, nil
}
