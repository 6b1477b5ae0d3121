package controllers

import (
	"net/http"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/app/models/dto"
	"github.com/edunexus/schoolrecords/internal/app/services"
	"github.com/edunexus/schoolrecords/internal/middleware"
	"github.com/gin-gonic/gin"
)

// EnrollmentController handles enrollment-related operations
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// ListEnrollments retrieves enrollments
// @Summary List enrollments
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param student query int false "Filter by student ID"
// @Param course query int false "Filter by course ID"
// @Param status query string false "Filter by status" Enums(Enrolled, Dropped, Completed)
// @Success 200 {array} dto.EnrollmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /enrollments/ [get]
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	studentID, err := optionalInt64Query(ctx, "student")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	courseID, err := optionalInt64Query(ctx, "course")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	enrollments, err := c.enrollmentService.ListEnrollments(ctx.Request.Context(), models.EnrollmentFilter{
		StudentID: studentID,
		CourseID:  courseID,
		Status:    models.EnrollmentStatus(ctx.Query("status")),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnrollmentListResponse(enrollments))
}

// CreateEnrollment handles enrollment creation
// @Summary Create a new enrollment
// @Description The enrollment date is set to today. Status defaults to Enrolled.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.EnrollmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown reference"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Duplicate value"
// @Router /enrollments/ [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	enrollment := req.ToModel()

	if err := c.enrollmentService.CreateEnrollment(ctx.Request.Context(), enrollment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEnrollmentResponse(enrollment))
}

// GetEnrollment retrieves a enrollment by ID
// @Summary Get enrollment by ID
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.EnrollmentResponse
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id}/ [get]
func (c *EnrollmentController) GetEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollment(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnrollmentResponse(enrollment))
}

// UpdateEnrollment replaces an existing enrollment
// @Summary Update a enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param request body dto.UpdateEnrollmentRequest true "Enrollment information"
// @Success 200 {object} dto.EnrollmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown reference"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate value"
// @Router /enrollments/{id}/ [put]
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	enrollment := req.ToModel()
	enrollment.ID = id

	if err := c.enrollmentService.UpdateEnrollment(ctx.Request.Context(), enrollment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnrollmentResponse(enrollment))
}

// PatchEnrollment changes only the supplied fields
// @Summary Partially update a enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param request body dto.PatchEnrollmentRequest true "Fields to change"
// @Success 200 {object} dto.EnrollmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown reference"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id}/ [patch]
func (c *EnrollmentController) PatchEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.PatchEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	enrollment, err := c.enrollmentService.PatchEnrollment(ctx.Request.Context(), id, req.ApplyTo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnrollmentResponse(enrollment))
}

// DeleteEnrollment deletes a enrollment
// @Summary Delete a enrollment
// @Tags enrollments
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 204 "Enrollment deleted"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id}/ [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
