package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portssvc "github.com/oryxgate/realty_cms/internal/core/ports/services"
	"github.com/oryxgate/realty_cms/internal/dto"
	"github.com/oryxgate/realty_cms/internal/middleware"
)

// teamMemberHandler handles HTTP requests related to team members.
type teamMemberHandler struct {
	memberSvc portssvc.TeamMemberSvcFacade
}

func newTeamMemberHandler(memberSvc portssvc.TeamMemberSvcFacade) *teamMemberHandler {
	return &teamMemberHandler{memberSvc: memberSvc}
}

func registerPublicTeamMemberRoutes(rg *gin.RouterGroup, memberSvc portssvc.TeamMemberSvcFacade) {
	h := newTeamMemberHandler(memberSvc)
	rg.GET("/team-members", h.listPublishedTeamMembers)
}

func registerAdminTeamMemberRoutes(rg *gin.RouterGroup, memberSvc portssvc.TeamMemberSvcFacade) {
	h := newTeamMemberHandler(memberSvc)

	members := rg.Group("/team-members")
	{
		members.POST("", h.createTeamMember)
		members.GET("", h.listTeamMembers)
		members.GET("/:id", h.getTeamMemberByID)
		members.PUT("/:id", h.updateTeamMember)
		members.DELETE("/:id", h.deleteTeamMember)
	}
}

// listPublishedTeamMembers godoc
// @Summary List published team members
// @Tags team-members
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.TeamMemberResponse]
// @Router /team-members [get]
func (h *teamMemberHandler) listPublishedTeamMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, meta := parseListParams(c)

	published := domain.StatusPublished
	members, total, err := h.memberSvc.ListTeamMembers(c.Request.Context(), &published, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list team members")
		return
	}

	meta.Total = total
	c.JSON(http.StatusOK, dto.ListResponse[dto.TeamMemberResponse]{
		Data: dto.ToListTeamMemberResponse(members, middleware.GetDisplayContext(c)),
		Meta: meta,
	})
}

// createTeamMember godoc
// @Summary Create a team member
// @Tags team-members
// @Accept json
// @Produce json
// @Param member body dto.CreateTeamMemberRequest true "Team member details"
// @Success 201 {object} dto.TeamMemberResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /admin/team-members [post]
func (h *teamMemberHandler) createTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	member, err := h.memberSvc.CreateTeamMember(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create team member")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTeamMemberResponse(member, middleware.GetDisplayContext(c)))
}

// listTeamMembers godoc
// @Summary List team members (admin)
// @Tags team-members
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.TeamMemberResponse]
// @Security BearerAuth
// @Router /admin/team-members [get]
func (h *teamMemberHandler) listTeamMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, meta := parseListParams(c)

	var status *domain.Status
	if raw := c.Query("status"); raw != "" {
		if parsed, err := domain.ParseStatus(raw); err == nil {
			status = &parsed
		}
	}

	members, total, err := h.memberSvc.ListTeamMembers(c.Request.Context(), status, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list team members")
		return
	}

	meta.Total = total
	c.JSON(http.StatusOK, dto.ListResponse[dto.TeamMemberResponse]{
		Data: dto.ToListTeamMemberResponse(members, middleware.GetDisplayContext(c)),
		Meta: meta,
	})
}

// getTeamMemberByID godoc
// @Summary Get a team member by ID
// @Tags team-members
// @Produce json
// @Param id path string true "Team member ID"
// @Success 200 {object} dto.TeamMemberResponse
// @Failure 404 {object} map[string]string "Team member not found"
// @Security BearerAuth
// @Router /admin/team-members/{id} [get]
func (h *teamMemberHandler) getTeamMemberByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	member, err := h.memberSvc.GetTeamMemberByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve team member")
		return
	}
	c.JSON(http.StatusOK, dto.ToTeamMemberResponse(member, middleware.GetDisplayContext(c)))
}

// updateTeamMember godoc
// @Summary Update a team member
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team member ID"
// @Param member body dto.UpdateTeamMemberRequest true "Fields to update"
// @Success 200 {object} dto.TeamMemberResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Team member not found"
// @Security BearerAuth
// @Router /admin/team-members/{id} [put]
func (h *teamMemberHandler) updateTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	member, err := h.memberSvc.UpdateTeamMember(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update team member")
		return
	}
	c.JSON(http.StatusOK, dto.ToTeamMemberResponse(member, middleware.GetDisplayContext(c)))
}

// deleteTeamMember godoc
// @Summary Delete a team member
// @Tags team-members
// @Param id path string true "Team member ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Team member not found"
// @Security BearerAuth
// @Router /admin/team-members/{id} [delete]
func (h *teamMemberHandler) deleteTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.memberSvc.DeleteTeamMember(c.Request.Context(), c.Param("id"), deleterUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete team member")
		return
	}
	c.Status(http.StatusNoContent)
}
