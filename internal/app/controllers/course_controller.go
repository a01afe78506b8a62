package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edupanel/campuscore/internal/app/models/dto"
	"github.com/edupanel/campuscore/internal/app/services"
	"github.com/edupanel/campuscore/internal/middleware"
)

// CourseController handles course endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// ListCourses retrieves courses, optionally filtered by school and/or session
// @Summary List courses
// @Tags courses
// @Produce json
// @Param schoolId query int false "Filter by school ID"
// @Param sessionId query int false "Filter by session ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (ctl *CourseController) ListCourses(c *gin.Context) {
	schoolID, _ := strconv.ParseInt(c.DefaultQuery("schoolId", "0"), 10, 64)
	sessionID, _ := strconv.ParseInt(c.DefaultQuery("sessionId", "0"), 10, 64)

	courses, err := ctl.courseService.List(c.Request.Context(), schoolID, sessionID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(courses))
}

// GetCourse retrieves a course by ID
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (ctl *CourseController) GetCourse(c *gin.Context) {
	id, ok := parsePathID(c, "course")
	if !ok {
		return
	}

	course, err := ctl.courseService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(course))
}

// CreateCourse creates a new course
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course data"
// @Success 201 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate code"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /courses [post]
func (ctl *CourseController) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if !bindJSON(c, &req) {
		return
	}

	course, err := ctl.courseService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewDataResponse(course))
}

// UpdateCourse applies a sparse patch to a course
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate code"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [put]
func (ctl *CourseController) UpdateCourse(c *gin.Context) {
	id, ok := parsePathID(c, "course")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if !bindJSON(c, &req) {
		return
	}

	course, err := ctl.courseService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(course))
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [delete]
func (ctl *CourseController) DeleteCourse(c *gin.Context) {
	id, ok := parsePathID(c, "course")
	if !ok {
		return
	}

	if err := ctl.courseService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "Course deleted successfully"}))
}
