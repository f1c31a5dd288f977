package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/oryxgate/realty_cms/internal/core/ports/services"
	"github.com/oryxgate/realty_cms/internal/dto"
	"github.com/oryxgate/realty_cms/internal/middleware"
)

// socialMediaLinkHandler handles HTTP requests related to social media links.
type socialMediaLinkHandler struct {
	linkSvc portssvc.SocialMediaLinkSvcFacade
}

func newSocialMediaLinkHandler(linkSvc portssvc.SocialMediaLinkSvcFacade) *socialMediaLinkHandler {
	return &socialMediaLinkHandler{linkSvc: linkSvc}
}

func registerPublicSocialMediaLinkRoutes(rg *gin.RouterGroup, linkSvc portssvc.SocialMediaLinkSvcFacade) {
	h := newSocialMediaLinkHandler(linkSvc)
	rg.GET("/social-media-links", h.listActiveSocialMediaLinks)
}

func registerAdminSocialMediaLinkRoutes(rg *gin.RouterGroup, linkSvc portssvc.SocialMediaLinkSvcFacade) {
	h := newSocialMediaLinkHandler(linkSvc)

	links := rg.Group("/social-media-links")
	{
		links.POST("", h.createSocialMediaLink)
		links.GET("", h.listSocialMediaLinks)
		links.POST("/reorder", h.reorderSocialMediaLinks)
		links.GET("/:id", h.getSocialMediaLinkByID)
		links.PUT("/:id", h.updateSocialMediaLink)
		links.DELETE("/:id", h.deleteSocialMediaLink)
	}
}

// listActiveSocialMediaLinks godoc
// @Summary List active social media links
// @Tags social-media-links
// @Produce json
// @Success 200 {array} dto.SocialMediaLinkResponse
// @Router /social-media-links [get]
func (h *socialMediaLinkHandler) listActiveSocialMediaLinks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	links, err := h.linkSvc.ListSocialMediaLinks(c.Request.Context(), true)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list social media links")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSocialMediaLinkResponse(links, middleware.GetDisplayContext(c)))
}

// createSocialMediaLink godoc
// @Summary Create a social media link
// @Tags social-media-links
// @Accept json
// @Produce json
// @Param link body dto.CreateSocialMediaLinkRequest true "Link details"
// @Success 201 {object} dto.SocialMediaLinkResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /admin/social-media-links [post]
func (h *socialMediaLinkHandler) createSocialMediaLink(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSocialMediaLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	link, err := h.linkSvc.CreateSocialMediaLink(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create social media link")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSocialMediaLinkResponse(link, middleware.GetDisplayContext(c)))
}

// listSocialMediaLinks godoc
// @Summary List social media links (admin)
// @Tags social-media-links
// @Produce json
// @Success 200 {array} dto.SocialMediaLinkResponse
// @Security BearerAuth
// @Router /admin/social-media-links [get]
func (h *socialMediaLinkHandler) listSocialMediaLinks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	links, err := h.linkSvc.ListSocialMediaLinks(c.Request.Context(), false)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list social media links")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSocialMediaLinkResponse(links, middleware.GetDisplayContext(c)))
}

// getSocialMediaLinkByID godoc
// @Summary Get a social media link by ID
// @Tags social-media-links
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {object} dto.SocialMediaLinkResponse
// @Failure 404 {object} map[string]string "Link not found"
// @Security BearerAuth
// @Router /admin/social-media-links/{id} [get]
func (h *socialMediaLinkHandler) getSocialMediaLinkByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	link, err := h.linkSvc.GetSocialMediaLinkByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve social media link")
		return
	}
	c.JSON(http.StatusOK, dto.ToSocialMediaLinkResponse(link, middleware.GetDisplayContext(c)))
}

// updateSocialMediaLink godoc
// @Summary Update a social media link
// @Tags social-media-links
// @Accept json
// @Produce json
// @Param id path string true "Link ID"
// @Param link body dto.UpdateSocialMediaLinkRequest true "Fields to update"
// @Success 200 {object} dto.SocialMediaLinkResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Link not found"
// @Security BearerAuth
// @Router /admin/social-media-links/{id} [put]
func (h *socialMediaLinkHandler) updateSocialMediaLink(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSocialMediaLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	link, err := h.linkSvc.UpdateSocialMediaLink(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update social media link")
		return
	}
	c.JSON(http.StatusOK, dto.ToSocialMediaLinkResponse(link, middleware.GetDisplayContext(c)))
}

// reorderSocialMediaLinks godoc
// @Summary Reorder social media links
// @Description Applies new display positions to several links in one call
// @Tags social-media-links
// @Accept json
// @Param order body dto.ReorderSocialMediaLinksRequest true "New link order"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Link not found"
// @Security BearerAuth
// @Router /admin/social-media-links/reorder [post]
func (h *socialMediaLinkHandler) reorderSocialMediaLinks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReorderSocialMediaLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.linkSvc.ReorderSocialMediaLinks(c.Request.Context(), req, updaterUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to reorder social media links")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteSocialMediaLink godoc
// @Summary Delete a social media link
// @Tags social-media-links
// @Param id path string true "Link ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Link not found"
// @Security BearerAuth
// @Router /admin/social-media-links/{id} [delete]
func (h *socialMediaLinkHandler) deleteSocialMediaLink(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.linkSvc.DeleteSocialMediaLink(c.Request.Context(), c.Param("id"), deleterUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete social media link")
		return
	}
	c.Status(http.StatusNoContent)
}
