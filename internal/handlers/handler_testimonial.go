package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portssvc "github.com/oryxgate/realty_cms/internal/core/ports/services"
	"github.com/oryxgate/realty_cms/internal/dto"
	"github.com/oryxgate/realty_cms/internal/middleware"
)

// testimonialHandler handles HTTP requests related to testimonials.
type testimonialHandler struct {
	testimonialSvc portssvc.TestimonialSvcFacade
}

func newTestimonialHandler(testimonialSvc portssvc.TestimonialSvcFacade) *testimonialHandler {
	return &testimonialHandler{testimonialSvc: testimonialSvc}
}

func registerPublicTestimonialRoutes(rg *gin.RouterGroup, testimonialSvc portssvc.TestimonialSvcFacade) {
	h := newTestimonialHandler(testimonialSvc)
	rg.GET("/testimonials", h.listPublishedTestimonials)
}

func registerAdminTestimonialRoutes(rg *gin.RouterGroup, testimonialSvc portssvc.TestimonialSvcFacade) {
	h := newTestimonialHandler(testimonialSvc)

	testimonials := rg.Group("/testimonials")
	{
		testimonials.POST("", h.createTestimonial)
		testimonials.GET("", h.listTestimonials)
		testimonials.GET("/:id", h.getTestimonialByID)
		testimonials.PUT("/:id", h.updateTestimonial)
		testimonials.DELETE("/:id", h.deleteTestimonial)
	}
}

// listPublishedTestimonials godoc
// @Summary List published testimonials
// @Tags testimonials
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.TestimonialResponse]
// @Router /testimonials [get]
func (h *testimonialHandler) listPublishedTestimonials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, meta := parseListParams(c)

	published := domain.StatusPublished
	items, total, err := h.testimonialSvc.ListTestimonials(c.Request.Context(), &published, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list testimonials")
		return
	}

	meta.Total = total
	c.JSON(http.StatusOK, dto.ListResponse[dto.TestimonialResponse]{
		Data: dto.ToListTestimonialResponse(items, middleware.GetDisplayContext(c)),
		Meta: meta,
	})
}

// createTestimonial godoc
// @Summary Create a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param testimonial body dto.CreateTestimonialRequest true "Testimonial details"
// @Success 201 {object} dto.TestimonialResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /admin/testimonials [post]
func (h *testimonialHandler) createTestimonial(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.testimonialSvc.CreateTestimonial(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create testimonial")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTestimonialResponse(item, middleware.GetDisplayContext(c)))
}

// listTestimonials godoc
// @Summary List testimonials (admin)
// @Tags testimonials
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.TestimonialResponse]
// @Security BearerAuth
// @Router /admin/testimonials [get]
func (h *testimonialHandler) listTestimonials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, meta := parseListParams(c)

	var status *domain.Status
	if raw := c.Query("status"); raw != "" {
		if parsed, err := domain.ParseStatus(raw); err == nil {
			status = &parsed
		}
	}

	items, total, err := h.testimonialSvc.ListTestimonials(c.Request.Context(), status, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list testimonials")
		return
	}

	meta.Total = total
	c.JSON(http.StatusOK, dto.ListResponse[dto.TestimonialResponse]{
		Data: dto.ToListTestimonialResponse(items, middleware.GetDisplayContext(c)),
		Meta: meta,
	})
}

// getTestimonialByID godoc
// @Summary Get a testimonial by ID
// @Tags testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} dto.TestimonialResponse
// @Failure 404 {object} map[string]string "Testimonial not found"
// @Security BearerAuth
// @Router /admin/testimonials/{id} [get]
func (h *testimonialHandler) getTestimonialByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	item, err := h.testimonialSvc.GetTestimonialByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve testimonial")
		return
	}
	c.JSON(http.StatusOK, dto.ToTestimonialResponse(item, middleware.GetDisplayContext(c)))
}

// updateTestimonial godoc
// @Summary Update a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param testimonial body dto.UpdateTestimonialRequest true "Fields to update"
// @Success 200 {object} dto.TestimonialResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Testimonial not found"
// @Security BearerAuth
// @Router /admin/testimonials/{id} [put]
func (h *testimonialHandler) updateTestimonial(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.testimonialSvc.UpdateTestimonial(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update testimonial")
		return
	}
	c.JSON(http.StatusOK, dto.ToTestimonialResponse(item, middleware.GetDisplayContext(c)))
}

// deleteTestimonial godoc
// @Summary Delete a testimonial
// @Tags testimonials
// @Param id path string true "Testimonial ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Testimonial not found"
// @Security BearerAuth
// @Router /admin/testimonials/{id} [delete]
func (h *testimonialHandler) deleteTestimonial(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.testimonialSvc.DeleteTestimonial(c.Request.Context(), c.Param("id"), deleterUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete testimonial")
		return
	}
	c.Status(http.StatusNoContent)
}
