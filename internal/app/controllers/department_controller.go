package controllers

import (
	"net/http"

	"github.com/edunexus/schoolrecords/internal/app/models"
	"github.com/edunexus/schoolrecords/internal/app/models/dto"
	"github.com/edunexus/schoolrecords/internal/app/services"
	"github.com/edunexus/schoolrecords/internal/middleware"
	"github.com/gin-gonic/gin"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// ListDepartments retrieves all departments
// @Summary List departments
// @Description Retrieves departments ordered by id, optionally filtered by name or code
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches name or code"
// @Success 200 {array} dto.DepartmentResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /departments/ [get]
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.ListDepartments(ctx.Request.Context(), models.DepartmentFilter{
		Search: ctx.Query("search"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDepartmentListResponse(departments))
}

// CreateDepartment handles department creation
// @Summary Create a new department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDepartmentRequest true "Department information"
// @Success 201 {object} dto.DepartmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /departments/ [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	department, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.departmentService.CreateDepartment(ctx.Request.Context(), department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDepartmentResponse(department))
}

// GetDepartment retrieves a department by ID
// @Summary Get department by ID
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id}/ [get]
func (c *DepartmentController) GetDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	department, err := c.departmentService.GetDepartment(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDepartmentResponse(department))
}

// UpdateDepartment replaces an existing department
// @Summary Update a department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param request body dto.UpdateDepartmentRequest true "Department information"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id}/ [put]
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	department, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	department.ID = id

	if err := c.departmentService.UpdateDepartment(ctx.Request.Context(), department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDepartmentResponse(department))
}

// PatchDepartment changes only the supplied fields
// @Summary Partially update a department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param request body dto.PatchDepartmentRequest true "Fields to change"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id}/ [patch]
func (c *DepartmentController) PatchDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.PatchDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	department, err := c.departmentService.PatchDepartment(ctx.Request.Context(), id, req.ApplyTo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDepartmentResponse(department))
}

// DeleteDepartment deletes a department with its instructors and students
// @Summary Delete a department
// @Description Deleting a department also deletes its instructors, students and their enrollments
// @Tags departments
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 204 "Department deleted"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id}/ [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.departmentService.DeleteDepartment(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
