package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portssvc "github.com/oryxgate/realty_cms/internal/core/ports/services"
	"github.com/oryxgate/realty_cms/internal/dto"
	"github.com/oryxgate/realty_cms/internal/middleware"
)

// projectHandler handles HTTP requests related to projects.
type projectHandler struct {
	projectSvc portssvc.ProjectSvcFacade
	conversion portssvc.CurrencyConversionSvc
	areaConv   portssvc.AreaUnitConversionSvc
}

func newProjectHandler(projectSvc portssvc.ProjectSvcFacade, conversion portssvc.CurrencyConversionSvc, areaConv portssvc.AreaUnitConversionSvc) *projectHandler {
	return &projectHandler{
		projectSvc: projectSvc,
		conversion: conversion,
		areaConv:   areaConv,
	}
}

// registerPublicProjectRoutes registers the read-only project routes.
// Public listings only ever see published projects.
func registerPublicProjectRoutes(rg *gin.RouterGroup, projectSvc portssvc.ProjectSvcFacade, conversion portssvc.CurrencyConversionSvc, areaConv portssvc.AreaUnitConversionSvc) {
	h := newProjectHandler(projectSvc, conversion, areaConv)

	projects := rg.Group("/projects")
	{
		projects.GET("", h.listPublishedProjects)
		projects.GET("/:slug", h.getProjectBySlug)
	}
}

// registerAdminProjectRoutes registers the project management routes.
func registerAdminProjectRoutes(rg *gin.RouterGroup, projectSvc portssvc.ProjectSvcFacade, conversion portssvc.CurrencyConversionSvc, areaConv portssvc.AreaUnitConversionSvc) {
	h := newProjectHandler(projectSvc, conversion, areaConv)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProjectByID)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
		projects.PATCH("/:id/status", h.updateProjectStatus)
		projects.POST("/:id/publish", h.publishProject)
		projects.POST("/:id/unpublish", h.unpublishProject)
		projects.POST("/:id/toggle-featured", h.toggleProjectFeatured)
	}
}

// render converts stored base figures into the request's display currency
// and unit, then resolves translations.
func (h *projectHandler) render(c *gin.Context, p *domain.Project) dto.ProjectResponse {
	rc := middleware.GetDisplayContext(c)
	price := h.conversion.ConvertFromBase(c.Request.Context(), p.PriceAED, rc.Currency)
	area := h.areaConv.ConvertFromBase(p.AreaSqm, rc.AreaUnit)
	return dto.ToProjectResponse(p, rc, price, area)
}

func (h *projectHandler) renderList(c *gin.Context, projects []domain.Project) []dto.ProjectResponse {
	res := make([]dto.ProjectResponse, len(projects))
	for i := range projects {
		res[i] = h.render(c, &projects[i])
	}
	return res
}

func parseProjectFilter(c *gin.Context) domain.ProjectFilter {
	var filter domain.ProjectFilter
	if raw := c.Query("status"); raw != "" {
		if status, err := domain.ParseStatus(raw); err == nil {
			filter.Status = &status
		}
	}
	if raw := c.Query("property_type"); raw != "" {
		pt := domain.PropertyType(raw)
		filter.PropertyType = &pt
	}
	if raw := c.Query("is_featured"); raw != "" {
		featured := raw == "true" || raw == "1"
		filter.IsFeatured = &featured
	}
	filter.AreaGuideID = c.Query("area_guide_id")
	return filter
}

// listPublishedProjects godoc
// @Summary List published projects
// @Description Lists published projects with converted pricing and area blocks
// @Tags projects
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param property_type query string false "Filter by property type"
// @Param is_featured query bool false "Filter by featured flag"
// @Param area_guide_id query string false "Filter by area guide"
// @Success 200 {object} dto.ListResponse[dto.ProjectResponse]
// @Router /projects [get]
func (h *projectHandler) listPublishedProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, meta := parseListParams(c)

	filter := parseProjectFilter(c)
	published := domain.StatusPublished
	filter.Status = &published

	projects, total, err := h.projectSvc.ListProjects(c.Request.Context(), filter, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list projects")
		return
	}

	meta.Total = total
	c.JSON(http.StatusOK, dto.ListResponse[dto.ProjectResponse]{
		Data: h.renderList(c, projects),
		Meta: meta,
	})
}

// getProjectBySlug godoc
// @Summary Get a published project by slug
// @Description Resolves a project by its slug in the request locale
// @Tags projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Router /projects/{slug} [get]
func (h *projectHandler) getProjectBySlug(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rc := middleware.GetDisplayContext(c)

	project, err := h.projectSvc.GetProjectBySlug(c.Request.Context(), rc.Locale, c.Param("slug"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve project")
		return
	}
	if project.Status != domain.StatusPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}
	c.JSON(http.StatusOK, h.render(c, project))
}

// createProject godoc
// @Summary Create a project
// @Description Creates a project; slugs are derived per locale from the name
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /admin/projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	project, err := h.projectSvc.CreateProject(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, h.render(c, project))
}

// listProjects godoc
// @Summary List projects (admin)
// @Description Lists projects in any status
// @Tags projects
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.ProjectResponse]
// @Security BearerAuth
// @Router /admin/projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, meta := parseListParams(c)

	projects, total, err := h.projectSvc.ListProjects(c.Request.Context(), parseProjectFilter(c), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list projects")
		return
	}

	meta.Total = total
	c.JSON(http.StatusOK, dto.ListResponse[dto.ProjectResponse]{
		Data: h.renderList(c, projects),
		Meta: meta,
	})
}

// getProjectByID godoc
// @Summary Get a project by ID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /admin/projects/{id} [get]
func (h *projectHandler) getProjectByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	project, err := h.projectSvc.GetProjectByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve project")
		return
	}
	c.JSON(http.StatusOK, h.render(c, project))
}

// updateProject godoc
// @Summary Update a project
// @Description Applies a partial update; slugs recompute for the locales the name payload carries
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /admin/projects/{id} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	project, err := h.projectSvc.UpdateProject(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, h.render(c, project))
}

// deleteProject godoc
// @Summary Delete a project
// @Tags projects
// @Param id path string true "Project ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /admin/projects/{id} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.projectSvc.DeleteProject(c.Request.Context(), c.Param("id"), deleterUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete project")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateProjectStatus godoc
// @Summary Update a project's status
// @Description Moves a project between draft and published; other values are rejected
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param status body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Security BearerAuth
// @Router /admin/projects/{id}/status [patch]
func (h *projectHandler) updateProjectStatus(c *gin.Context) {
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

	project, err := h.projectSvc.UpdateProjectStatus(c.Request.Context(), c.Param("id"), req.Status, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update project status")
		return
	}
	c.JSON(http.StatusOK, h.render(c, project))
}

// publishProject godoc
// @Summary Publish a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Security BearerAuth
// @Router /admin/projects/{id}/publish [post]
func (h *projectHandler) publishProject(c *gin.Context) {
	h.workflowAction(c, h.projectSvc.PublishProject, "Failed to publish project")
}

// unpublishProject godoc
// @Summary Unpublish a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Security BearerAuth
// @Router /admin/projects/{id}/unpublish [post]
func (h *projectHandler) unpublishProject(c *gin.Context) {
	h.workflowAction(c, h.projectSvc.UnpublishProject, "Failed to unpublish project")
}

// toggleProjectFeatured godoc
// @Summary Toggle a project's featured flag
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Security BearerAuth
// @Router /admin/projects/{id}/toggle-featured [post]
func (h *projectHandler) toggleProjectFeatured(c *gin.Context) {
	h.workflowAction(c, h.projectSvc.ToggleProjectFeatured, "Failed to toggle project featured flag")
}

type projectAction func(ctx context.Context, projectID, userID string) (*domain.Project, error)

// workflowAction runs a single-record workflow operation (publish,
// unpublish, toggle) and renders the result.
func (h *projectHandler) workflowAction(c *gin.Context, action projectAction, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	project, err := action(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, fallbackMsg)
		return
	}
	c.JSON(http.StatusOK, h.render(c, project))
}
