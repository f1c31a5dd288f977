package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portssvc "github.com/oryxgate/realty_cms/internal/core/ports/services"
	"github.com/oryxgate/realty_cms/internal/dto"
	"github.com/oryxgate/realty_cms/internal/middleware"
)

// blogHandler handles HTTP requests related to blog articles.
type blogHandler struct {
	blogSvc portssvc.BlogSvcFacade
}

func newBlogHandler(blogSvc portssvc.BlogSvcFacade) *blogHandler {
	return &blogHandler{blogSvc: blogSvc}
}

// registerPublicBlogRoutes registers the read-only blog routes.
func registerPublicBlogRoutes(rg *gin.RouterGroup, blogSvc portssvc.BlogSvcFacade) {
	h := newBlogHandler(blogSvc)

	blogs := rg.Group("/blogs")
	{
		blogs.GET("", h.listPublishedBlogs)
		blogs.GET("/:slug", h.getBlogBySlug)
	}
}

// registerAdminBlogRoutes registers the blog management routes.
func registerAdminBlogRoutes(rg *gin.RouterGroup, blogSvc portssvc.BlogSvcFacade) {
	h := newBlogHandler(blogSvc)

	blogs := rg.Group("/blogs")
	{
		blogs.POST("", h.createBlog)
		blogs.GET("", h.listBlogs)
		blogs.GET("/:id", h.getBlogByID)
		blogs.PUT("/:id", h.updateBlog)
		blogs.DELETE("/:id", h.deleteBlog)
		blogs.PATCH("/:id/status", h.updateBlogStatus)
		blogs.POST("/:id/toggle-featured", h.toggleBlogFeatured)
	}
}

// listPublishedBlogs godoc
// @Summary List published blog articles
// @Tags blogs
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} dto.ListResponse[dto.BlogResponse]
// @Router /blogs [get]
func (h *blogHandler) listPublishedBlogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, meta := parseListParams(c)

	published := domain.StatusPublished
	blogs, total, err := h.blogSvc.ListBlogs(c.Request.Context(), &published, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list blogs")
		return
	}

	meta.Total = total
	c.JSON(http.StatusOK, dto.ListResponse[dto.BlogResponse]{
		Data: dto.ToListBlogResponse(blogs, middleware.GetDisplayContext(c)),
		Meta: meta,
	})
}

// getBlogBySlug godoc
// @Summary Get a published blog article by slug
// @Tags blogs
// @Produce json
// @Param slug path string true "Blog slug"
// @Success 200 {object} dto.BlogResponse
// @Failure 404 {object} map[string]string "Blog not found"
// @Router /blogs/{slug} [get]
func (h *blogHandler) getBlogBySlug(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rc := middleware.GetDisplayContext(c)

	blog, err := h.blogSvc.GetBlogBySlug(c.Request.Context(), rc.Locale, c.Param("slug"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve blog")
		return
	}
	if blog.Status != domain.StatusPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToBlogResponse(blog, rc))
}

// createBlog godoc
// @Summary Create a blog article
// @Tags blogs
// @Accept json
// @Produce json
// @Param blog body dto.CreateBlogRequest true "Blog details"
// @Success 201 {object} dto.BlogResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /admin/blogs [post]
func (h *blogHandler) createBlog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	blog, err := h.blogSvc.CreateBlog(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create blog")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBlogResponse(blog, middleware.GetDisplayContext(c)))
}

// listBlogs godoc
// @Summary List blog articles (admin)
// @Tags blogs
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.BlogResponse]
// @Security BearerAuth
// @Router /admin/blogs [get]
func (h *blogHandler) listBlogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, meta := parseListParams(c)

	var status *domain.Status
	if raw := c.Query("status"); raw != "" {
		if parsed, err := domain.ParseStatus(raw); err == nil {
			status = &parsed
		}
	}

	blogs, total, err := h.blogSvc.ListBlogs(c.Request.Context(), status, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list blogs")
		return
	}

	meta.Total = total
	c.JSON(http.StatusOK, dto.ListResponse[dto.BlogResponse]{
		Data: dto.ToListBlogResponse(blogs, middleware.GetDisplayContext(c)),
		Meta: meta,
	})
}

// getBlogByID godoc
// @Summary Get a blog article by ID
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} dto.BlogResponse
// @Failure 404 {object} map[string]string "Blog not found"
// @Security BearerAuth
// @Router /admin/blogs/{id} [get]
func (h *blogHandler) getBlogByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	blog, err := h.blogSvc.GetBlogByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve blog")
		return
	}
	c.JSON(http.StatusOK, dto.ToBlogResponse(blog, middleware.GetDisplayContext(c)))
}

// updateBlog godoc
// @Summary Update a blog article
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Param blog body dto.UpdateBlogRequest true "Fields to update"
// @Success 200 {object} dto.BlogResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Blog not found"
// @Security BearerAuth
// @Router /admin/blogs/{id} [put]
func (h *blogHandler) updateBlog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	blog, err := h.blogSvc.UpdateBlog(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update blog")
		return
	}
	c.JSON(http.StatusOK, dto.ToBlogResponse(blog, middleware.GetDisplayContext(c)))
}

// deleteBlog godoc
// @Summary Delete a blog article
// @Tags blogs
// @Param id path string true "Blog ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Blog not found"
// @Security BearerAuth
// @Router /admin/blogs/{id} [delete]
func (h *blogHandler) deleteBlog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.blogSvc.DeleteBlog(c.Request.Context(), c.Param("id"), deleterUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete blog")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateBlogStatus godoc
// @Summary Update a blog article's status
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Param status body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.BlogResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Security BearerAuth
// @Router /admin/blogs/{id}/status [patch]
func (h *blogHandler) updateBlogStatus(c *gin.Context) {
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

	blog, err := h.blogSvc.UpdateBlogStatus(c.Request.Context(), c.Param("id"), req.Status, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update blog status")
		return
	}
	c.JSON(http.StatusOK, dto.ToBlogResponse(blog, middleware.GetDisplayContext(c)))
}

// toggleBlogFeatured godoc
// @Summary Toggle a blog article's featured flag
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} dto.BlogResponse
// @Security BearerAuth
// @Router /admin/blogs/{id}/toggle-featured [post]
func (h *blogHandler) toggleBlogFeatured(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	blog, err := h.blogSvc.ToggleBlogFeatured(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to toggle blog featured flag")
		return
	}
	c.JSON(http.StatusOK, dto.ToBlogResponse(blog, middleware.GetDisplayContext(c)))
}
