package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupanel/campuscore/internal/app/models/dto"
	"github.com/edupanel/campuscore/internal/app/services"
	"github.com/edupanel/campuscore/internal/middleware"
)

// DepartmentController handles visit-department endpoints
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// ListDepartments retrieves all departments
// @Summary List departments
// @Description Retrieves all visit departments sorted by name ascending
// @Tags departments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Department}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [get]
func (ctl *DepartmentController) ListDepartments(c *gin.Context) {
	departments, err := ctl.departmentService.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(departments))
}

// GetDepartment retrieves a department by ID
// @Summary Get department by ID
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 400 {object} dto.ErrorResponse "Invalid department ID"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments/{id} [get]
func (ctl *DepartmentController) GetDepartment(c *gin.Context) {
	id, ok := parsePathID(c, "department")
	if !ok {
		return
	}

	department, err := ctl.departmentService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(department))
}

// CreateDepartment creates a new department
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDepartmentRequest true "Department data"
// @Success 201 {object} dto.APIResponse{data=models.Department}
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate name"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [post]
func (ctl *DepartmentController) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	department, err := ctl.departmentService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewDataResponse(department))
}

// UpdateDepartment applies a sparse patch to a department
// @Summary Update a department
// @Description Updates only the fields present in the request body
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param request body dto.UpdateDepartmentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate name"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments/{id} [put]
func (ctl *DepartmentController) UpdateDepartment(c *gin.Context) {
	id, ok := parsePathID(c, "department")
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	department, err := ctl.departmentService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(department))
}

// DeleteDepartment deletes a department
// @Summary Delete a department
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid department ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments/{id} [delete]
func (ctl *DepartmentController) DeleteDepartment(c *gin.Context) {
	id, ok := parsePathID(c, "department")
	if !ok {
		return
	}

	if err := ctl.departmentService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "Department deleted successfully"}))
}
