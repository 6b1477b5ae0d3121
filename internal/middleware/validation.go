package middleware

import (
	"net/http"

	"github.com/edunexus/schoolrecords/internal/app/models/dto"
	"github.com/gin-gonic/gin"
)

// HandleBindingError answers 400 with per-field messages for a failed ShouldBind call
func HandleBindingError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}
