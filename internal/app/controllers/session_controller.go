package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupanel/campuscore/internal/app/models/dto"
	"github.com/edupanel/campuscore/internal/app/services"
	"github.com/edupanel/campuscore/internal/middleware"
)

// SessionController handles academic-session endpoints
type SessionController struct {
	sessionService services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService services.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// ListSessions retrieves all academic sessions
// @Summary List academic sessions
// @Tags sessions
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Session}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions [get]
func (ctl *SessionController) ListSessions(c *gin.Context) {
	sessions, err := ctl.sessionService.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(sessions))
}

// GetSession retrieves an academic session by ID
// @Summary Get academic session by ID
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} dto.APIResponse{data=models.Session}
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (ctl *SessionController) GetSession(c *gin.Context) {
	id, ok := parsePathID(c, "session")
	if !ok {
		return
	}

	session, err := ctl.sessionService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(session))
}

// CreateSession creates a new academic session
// @Summary Create an academic session
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSessionRequest true "Session data"
// @Success 201 {object} dto.APIResponse{data=models.Session}
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate name"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /sessions [post]
func (ctl *SessionController) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := ctl.sessionService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewDataResponse(session))
}

// UpdateSession applies a sparse patch to an academic session
// @Summary Update an academic session
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Param request body dto.UpdateSessionRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Session}
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate name"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [put]
func (ctl *SessionController) UpdateSession(c *gin.Context) {
	id, ok := parsePathID(c, "session")
	if !ok {
		return
	}

	var req dto.UpdateSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := ctl.sessionService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(session))
}

// DeleteSession deletes an academic session
// @Summary Delete an academic session
// @Description Fails with 409 while courses still reference the session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session has associated courses"
// @Router /sessions/{id} [delete]
func (ctl *SessionController) DeleteSession(c *gin.Context) {
	id, ok := parsePathID(c, "session")
	if !ok {
		return
	}

	if err := ctl.sessionService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "Academic session deleted successfully"}))
}
