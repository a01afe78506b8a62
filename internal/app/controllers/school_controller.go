package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupanel/campuscore/internal/app/models/dto"
	"github.com/edupanel/campuscore/internal/app/services"
	"github.com/edupanel/campuscore/internal/middleware"
)

// SchoolController handles school endpoints
type SchoolController struct {
	schoolService services.SchoolService
}

// NewSchoolController creates a new SchoolController
func NewSchoolController(schoolService services.SchoolService) *SchoolController {
	return &SchoolController{schoolService: schoolService}
}

// ListSchools retrieves all schools
// @Summary List schools
// @Tags schools
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.School}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools [get]
func (ctl *SchoolController) ListSchools(c *gin.Context) {
	schools, err := ctl.schoolService.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(schools))
}

// GetSchool retrieves a school by ID
// @Summary Get school by ID
// @Tags schools
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {object} dto.APIResponse{data=models.School}
// @Failure 400 {object} dto.ErrorResponse "Invalid school ID"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Router /schools/{id} [get]
func (ctl *SchoolController) GetSchool(c *gin.Context) {
	id, ok := parsePathID(c, "school")
	if !ok {
		return
	}

	school, err := ctl.schoolService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(school))
}

// CreateSchool creates a new school
// @Summary Create a school
// @Tags schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSchoolRequest true "School data"
// @Success 201 {object} dto.APIResponse{data=models.School}
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate name"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /schools [post]
func (ctl *SchoolController) CreateSchool(c *gin.Context) {
	var req dto.CreateSchoolRequest
	if !bindJSON(c, &req) {
		return
	}

	school, err := ctl.schoolService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewDataResponse(school))
}

// UpdateSchool applies a sparse patch to a school
// @Summary Update a school
// @Tags schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "School ID"
// @Param request body dto.UpdateSchoolRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.School}
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate name"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Router /schools/{id} [put]
func (ctl *SchoolController) UpdateSchool(c *gin.Context) {
	id, ok := parsePathID(c, "school")
	if !ok {
		return
	}

	var req dto.UpdateSchoolRequest
	if !bindJSON(c, &req) {
		return
	}

	school, err := ctl.schoolService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(school))
}

// DeleteSchool deletes a school
// @Summary Delete a school
// @Description Fails with 409 while courses still reference the school
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Param id path int true "School ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 409 {object} dto.ErrorResponse "School has associated courses"
// @Router /schools/{id} [delete]
func (ctl *SchoolController) DeleteSchool(c *gin.Context) {
	id, ok := parsePathID(c, "school")
	if !ok {
		return
	}

	if err := ctl.schoolService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "School deleted successfully"}))
}
