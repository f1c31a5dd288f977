package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portssvc "github.com/oryxgate/realty_cms/internal/core/ports/services"
	"github.com/oryxgate/realty_cms/internal/dto"
	"github.com/oryxgate/realty_cms/internal/middleware"
)

// serviceHandler handles HTTP requests related to service offerings.
type serviceHandler struct {
	serviceSvc portssvc.ServiceSvcFacade
}

func newServiceHandler(serviceSvc portssvc.ServiceSvcFacade) *serviceHandler {
	return &serviceHandler{serviceSvc: serviceSvc}
}

func registerPublicServiceRoutes(rg *gin.RouterGroup, serviceSvc portssvc.ServiceSvcFacade) {
	h := newServiceHandler(serviceSvc)

	services := rg.Group("/services")
	{
		services.GET("", h.listPublishedServices)
		services.GET("/:slug", h.getServiceBySlug)
	}
}

func registerAdminServiceRoutes(rg *gin.RouterGroup, serviceSvc portssvc.ServiceSvcFacade) {
	h := newServiceHandler(serviceSvc)

	services := rg.Group("/services")
	{
		services.POST("", h.createService)
		services.GET("", h.listServices)
		services.GET("/:id", h.getServiceByID)
		services.PUT("/:id", h.updateService)
		services.DELETE("/:id", h.deleteService)
	}
}

// listPublishedServices godoc
// @Summary List published services
// @Tags services
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.ServiceResponse]
// @Router /services [get]
func (h *serviceHandler) listPublishedServices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, meta := parseListParams(c)

	published := domain.StatusPublished
	services, total, err := h.serviceSvc.ListServices(c.Request.Context(), &published, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list services")
		return
	}

	meta.Total = total
	c.JSON(http.StatusOK, dto.ListResponse[dto.ServiceResponse]{
		Data: dto.ToListServiceResponse(services, middleware.GetDisplayContext(c)),
		Meta: meta,
	})
}

// getServiceBySlug godoc
// @Summary Get a published service by slug
// @Tags services
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} map[string]string "Service not found"
// @Router /services/{slug} [get]
func (h *serviceHandler) getServiceBySlug(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rc := middleware.GetDisplayContext(c)

	svc, err := h.serviceSvc.GetServiceBySlug(c.Request.Context(), rc.Locale, c.Param("slug"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve service")
		return
	}
	if svc.Status != domain.StatusPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(svc, rc))
}

// createService godoc
// @Summary Create a service
// @Tags services
// @Accept json
// @Produce json
// @Param service body dto.CreateServiceRequest true "Service details"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /admin/services [post]
func (h *serviceHandler) createService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	svc, err := h.serviceSvc.CreateService(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create service")
		return
	}
	c.JSON(http.StatusCreated, dto.ToServiceResponse(svc, middleware.GetDisplayContext(c)))
}

// listServices godoc
// @Summary List services (admin)
// @Tags services
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.ServiceResponse]
// @Security BearerAuth
// @Router /admin/services [get]
func (h *serviceHandler) listServices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, meta := parseListParams(c)

	var status *domain.Status
	if raw := c.Query("status"); raw != "" {
		if parsed, err := domain.ParseStatus(raw); err == nil {
			status = &parsed
		}
	}

	services, total, err := h.serviceSvc.ListServices(c.Request.Context(), status, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list services")
		return
	}

	meta.Total = total
	c.JSON(http.StatusOK, dto.ListResponse[dto.ServiceResponse]{
		Data: dto.ToListServiceResponse(services, middleware.GetDisplayContext(c)),
		Meta: meta,
	})
}

// getServiceByID godoc
// @Summary Get a service by ID
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} map[string]string "Service not found"
// @Security BearerAuth
// @Router /admin/services/{id} [get]
func (h *serviceHandler) getServiceByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	svc, err := h.serviceSvc.GetServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve service")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(svc, middleware.GetDisplayContext(c)))
}

// updateService godoc
// @Summary Update a service
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param service body dto.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Service not found"
// @Security BearerAuth
// @Router /admin/services/{id} [put]
func (h *serviceHandler) updateService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	svc, err := h.serviceSvc.UpdateService(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update service")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(svc, middleware.GetDisplayContext(c)))
}

// deleteService godoc
// @Summary Delete a service
// @Tags services
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Service not found"
// @Security BearerAuth
// @Router /admin/services/{id} [delete]
func (h *serviceHandler) deleteService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.serviceSvc.DeleteService(c.Request.Context(), c.Param("id"), deleterUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete service")
		return
	}
	c.Status(http.StatusNoContent)
}
