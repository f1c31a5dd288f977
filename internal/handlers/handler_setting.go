package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/oryxgate/realty_cms/internal/core/ports/services"
	"github.com/oryxgate/realty_cms/internal/dto"
	"github.com/oryxgate/realty_cms/internal/middleware"
)

// settingHandler handles HTTP requests for the site settings row.
type settingHandler struct {
	settingSvc portssvc.SettingSvcFacade
}

func newSettingHandler(settingSvc portssvc.SettingSvcFacade) *settingHandler {
	return &settingHandler{settingSvc: settingSvc}
}

func registerPublicSettingRoutes(rg *gin.RouterGroup, settingSvc portssvc.SettingSvcFacade) {
	h := newSettingHandler(settingSvc)
	rg.GET("/settings", h.getSetting)
}

func registerAdminSettingRoutes(rg *gin.RouterGroup, settingSvc portssvc.SettingSvcFacade) {
	h := newSettingHandler(settingSvc)
	rg.PUT("/settings", h.upsertSetting)
}

// getSetting godoc
// @Summary Get the active site settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingResponse
// @Failure 404 {object} map[string]string "Settings not found"
// @Router /settings [get]
func (h *settingHandler) getSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	setting, err := h.settingSvc.GetSetting(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingResponse(setting, middleware.GetDisplayContext(c)))
}

// upsertSetting godoc
// @Summary Create or update the site settings
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpsertSettingRequest true "Settings payload"
// @Success 200 {object} dto.SettingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /admin/settings [put]
func (h *settingHandler) upsertSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	setting, err := h.settingSvc.UpsertSetting(c.Request.Context(), req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to save settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingResponse(setting, middleware.GetDisplayContext(c)))
}
