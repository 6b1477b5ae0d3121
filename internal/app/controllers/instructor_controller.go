package controllers

import (
	"net/http"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/app/models/dto"
	"github.com/edunexus/schoolrecords/internal/app/services"
	"github.com/edunexus/schoolrecords/internal/middleware"
	"github.com/gin-gonic/gin"
)

// InstructorController handles instructor-related operations
type InstructorController struct {
	instructorService *services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService *services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// ListInstructors retrieves instructors
// @Summary List instructors
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Param department query int false "Filter by department ID"
// @Param search query string false "Matches first name, last name or email"
// @Success 200 {array} dto.InstructorResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /instructors/ [get]
func (c *InstructorController) ListInstructors(ctx *gin.Context) {
	departmentID, err := optionalInt64Query(ctx, "department")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	instructors, err := c.instructorService.ListInstructors(ctx.Request.Context(), models.InstructorFilter{
		DepartmentID: departmentID,
		Search:       ctx.Query("search"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewInstructorListResponse(instructors))
}

// CreateInstructor handles instructor creation
// @Summary Create a new instructor
// @Tags instructors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInstructorRequest true "Instructor information"
// @Success 201 {object} dto.InstructorResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown reference"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Duplicate value"
// @Router /instructors/ [post]
func (c *InstructorController) CreateInstructor(ctx *gin.Context) {
	var req dto.CreateInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	instructor, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.instructorService.CreateInstructor(ctx.Request.Context(), instructor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewInstructorResponse(instructor))
}

// GetInstructor retrieves a instructor by ID
// @Summary Get instructor by ID
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.InstructorResponse
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructors/{id}/ [get]
func (c *InstructorController) GetInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	instructor, err := c.instructorService.GetInstructor(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewInstructorResponse(instructor))
}

// UpdateInstructor replaces an existing instructor
// @Summary Update a instructor
// @Tags instructors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Instructor ID"
// @Param request body dto.UpdateInstructorRequest true "Instructor information"
// @Success 200 {object} dto.InstructorResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown reference"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate value"
// @Router /instructors/{id}/ [put]
func (c *InstructorController) UpdateInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	instructor, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	instructor.ID = id

	if err := c.instructorService.UpdateInstructor(ctx.Request.Context(), instructor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewInstructorResponse(instructor))
}

// PatchInstructor changes only the supplied fields
// @Summary Partially update a instructor
// @Tags instructors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Instructor ID"
// @Param request body dto.PatchInstructorRequest true "Fields to change"
// @Success 200 {object} dto.InstructorResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown reference"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructors/{id}/ [patch]
func (c *InstructorController) PatchInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.PatchInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	instructor, err := c.instructorService.PatchInstructor(ctx.Request.Context(), id, req.ApplyTo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewInstructorResponse(instructor))
}

// DeleteInstructor deletes a instructor
// @Summary Delete a instructor
// @Description Courses taught by the instructor keep existing with no instructor
// @Tags instructors
// @Security BearerAuth
// @Param id path int true "Instructor ID"
// @Success 204 "Instructor deleted"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructors/{id}/ [delete]
func (c *InstructorController) DeleteInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.instructorService.DeleteInstructor(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
