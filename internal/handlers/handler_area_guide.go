package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portssvc "github.com/oryxgate/realty_cms/internal/core/ports/services"
	"github.com/oryxgate/realty_cms/internal/dto"
	"github.com/oryxgate/realty_cms/internal/middleware"
)

// areaGuideHandler handles HTTP requests related to area guides.
type areaGuideHandler struct {
	guideSvc portssvc.AreaGuideSvcFacade
}

func newAreaGuideHandler(guideSvc portssvc.AreaGuideSvcFacade) *areaGuideHandler {
	return &areaGuideHandler{guideSvc: guideSvc}
}

// registerPublicAreaGuideRoutes registers the read-only area guide routes.
func registerPublicAreaGuideRoutes(rg *gin.RouterGroup, guideSvc portssvc.AreaGuideSvcFacade) {
	h := newAreaGuideHandler(guideSvc)

	guides := rg.Group("/area-guides")
	{
		guides.GET("", h.listPublishedAreaGuides)
		guides.GET("/:slug", h.getAreaGuideBySlug)
	}
}

// registerAdminAreaGuideRoutes registers the area guide management routes.
func registerAdminAreaGuideRoutes(rg *gin.RouterGroup, guideSvc portssvc.AreaGuideSvcFacade) {
	h := newAreaGuideHandler(guideSvc)

	guides := rg.Group("/area-guides")
	{
		guides.POST("", h.createAreaGuide)
		guides.GET("", h.listAreaGuides)
		guides.GET("/:id", h.getAreaGuideByID)
		guides.PUT("/:id", h.updateAreaGuide)
		guides.DELETE("/:id", h.deleteAreaGuide)
		guides.PATCH("/:id/status", h.updateAreaGuideStatus)
		guides.POST("/:id/toggle-popular", h.toggleAreaGuidePopular)
		guides.PUT("/:id/projects", h.syncAreaGuideProjects)
	}
}

// listPublishedAreaGuides godoc
// @Summary List published area guides
// @Tags area-guides
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.AreaGuideResponse]
// @Router /area-guides [get]
func (h *areaGuideHandler) listPublishedAreaGuides(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, meta := parseListParams(c)

	published := domain.StatusPublished
	guides, total, err := h.guideSvc.ListAreaGuides(c.Request.Context(), &published, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list area guides")
		return
	}

	meta.Total = total
	c.JSON(http.StatusOK, dto.ListResponse[dto.AreaGuideResponse]{
		Data: dto.ToListAreaGuideResponse(guides, middleware.GetDisplayContext(c)),
		Meta: meta,
	})
}

// getAreaGuideBySlug godoc
// @Summary Get a published area guide by slug
// @Tags area-guides
// @Produce json
// @Param slug path string true "Area guide slug"
// @Success 200 {object} dto.AreaGuideResponse
// @Failure 404 {object} map[string]string "Area guide not found"
// @Router /area-guides/{slug} [get]
func (h *areaGuideHandler) getAreaGuideBySlug(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rc := middleware.GetDisplayContext(c)

	guide, err := h.guideSvc.GetAreaGuideBySlug(c.Request.Context(), rc.Locale, c.Param("slug"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve area guide")
		return
	}
	if guide.Status != domain.StatusPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAreaGuideResponse(guide, rc))
}

// createAreaGuide godoc
// @Summary Create an area guide
// @Tags area-guides
// @Accept json
// @Produce json
// @Param guide body dto.CreateAreaGuideRequest true "Area guide details"
// @Success 201 {object} dto.AreaGuideResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /admin/area-guides [post]
func (h *areaGuideHandler) createAreaGuide(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAreaGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	guide, err := h.guideSvc.CreateAreaGuide(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create area guide")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAreaGuideResponse(guide, middleware.GetDisplayContext(c)))
}

// listAreaGuides godoc
// @Summary List area guides (admin)
// @Tags area-guides
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.AreaGuideResponse]
// @Security BearerAuth
// @Router /admin/area-guides [get]
func (h *areaGuideHandler) listAreaGuides(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, meta := parseListParams(c)

	var status *domain.Status
	if raw := c.Query("status"); raw != "" {
		if parsed, err := domain.ParseStatus(raw); err == nil {
			status = &parsed
		}
	}

	guides, total, err := h.guideSvc.ListAreaGuides(c.Request.Context(), status, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list area guides")
		return
	}

	meta.Total = total
	c.JSON(http.StatusOK, dto.ListResponse[dto.AreaGuideResponse]{
		Data: dto.ToListAreaGuideResponse(guides, middleware.GetDisplayContext(c)),
		Meta: meta,
	})
}

// getAreaGuideByID godoc
// @Summary Get an area guide by ID
// @Tags area-guides
// @Produce json
// @Param id path string true "Area guide ID"
// @Success 200 {object} dto.AreaGuideResponse
// @Failure 404 {object} map[string]string "Area guide not found"
// @Security BearerAuth
// @Router /admin/area-guides/{id} [get]
func (h *areaGuideHandler) getAreaGuideByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	guide, err := h.guideSvc.GetAreaGuideByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve area guide")
		return
	}
	c.JSON(http.StatusOK, dto.ToAreaGuideResponse(guide, middleware.GetDisplayContext(c)))
}

// updateAreaGuide godoc
// @Summary Update an area guide
// @Tags area-guides
// @Accept json
// @Produce json
// @Param id path string true "Area guide ID"
// @Param guide body dto.UpdateAreaGuideRequest true "Fields to update"
// @Success 200 {object} dto.AreaGuideResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Area guide not found"
// @Security BearerAuth
// @Router /admin/area-guides/{id} [put]
func (h *areaGuideHandler) updateAreaGuide(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateAreaGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	guide, err := h.guideSvc.UpdateAreaGuide(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update area guide")
		return
	}
	c.JSON(http.StatusOK, dto.ToAreaGuideResponse(guide, middleware.GetDisplayContext(c)))
}

// deleteAreaGuide godoc
// @Summary Delete an area guide
// @Tags area-guides
// @Param id path string true "Area guide ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Area guide not found"
// @Security BearerAuth
// @Router /admin/area-guides/{id} [delete]
func (h *areaGuideHandler) deleteAreaGuide(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.guideSvc.DeleteAreaGuide(c.Request.Context(), c.Param("id"), deleterUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete area guide")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateAreaGuideStatus godoc
// @Summary Update an area guide's status
// @Tags area-guides
// @Accept json
// @Produce json
// @Param id path string true "Area guide ID"
// @Param status body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.AreaGuideResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Security BearerAuth
// @Router /admin/area-guides/{id}/status [patch]
func (h *areaGuideHandler) updateAreaGuideStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	guide, err := h.guideSvc.UpdateAreaGuideStatus(c.Request.Context(), c.Param("id"), req.Status, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update area guide status")
		return
	}
	c.JSON(http.StatusOK, dto.ToAreaGuideResponse(guide, middleware.GetDisplayContext(c)))
}

// toggleAreaGuidePopular godoc
// @Summary Toggle an area guide's popular flag
// @Tags area-guides
// @Produce json
// @Param id path string true "Area guide ID"
// @Success 200 {object} dto.AreaGuideResponse
// @Security BearerAuth
// @Router /admin/area-guides/{id}/toggle-popular [post]
func (h *areaGuideHandler) toggleAreaGuidePopular(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	guide, err := h.guideSvc.ToggleAreaGuidePopular(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to toggle area guide popular flag")
		return
	}
	c.JSON(http.StatusOK, dto.ToAreaGuideResponse(guide, middleware.GetDisplayContext(c)))
}

// syncAreaGuideProjects godoc
// @Summary Replace the projects attached to an area guide
// @Tags area-guides
// @Accept json
// @Param id path string true "Area guide ID"
// @Param projects body dto.SyncProjectsRequest true "Project IDs"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Area guide or project not found"
// @Security BearerAuth
// @Router /admin/area-guides/{id}/projects [put]
func (h *areaGuideHandler) syncAreaGuideProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SyncProjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.guideSvc.SyncAreaGuideProjects(c.Request.Context(), c.Param("id"), req.ProjectIDs); err != nil {
		respondServiceError(c, logger, err, "Failed to sync area guide projects")
		return
	}
	c.Status(http.StatusNoContent)
}
