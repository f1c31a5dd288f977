package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
	portssvc "github.com/oryxgate/realty_cms/internal/core/ports/services"
	"github.com/oryxgate/realty_cms/internal/dto"
	"github.com/oryxgate/realty_cms/internal/middleware"
)

// contactHandler handles HTTP requests for the contact form and inbox.
type contactHandler struct {
	contactSvc portssvc.ContactSvcFacade
}

func newContactHandler(contactSvc portssvc.ContactSvcFacade) *contactHandler {
	return &contactHandler{contactSvc: contactSvc}
}

func registerPublicContactRoutes(rg *gin.RouterGroup, contactSvc portssvc.ContactSvcFacade) {
	h := newContactHandler(contactSvc)
	rg.POST("/contacts", h.submitContact)
}

func registerAdminContactRoutes(rg *gin.RouterGroup, contactSvc portssvc.ContactSvcFacade) {
	h := newContactHandler(contactSvc)

	contacts := rg.Group("/contacts")
	{
		contacts.GET("", h.listContacts)
		contacts.GET("/:id", h.getContactByID)
		contacts.PATCH("/:id/status", h.updateContactStatus)
		contacts.POST("/:id/mark-as-read", h.markContactRead)
		contacts.POST("/:id/mark-as-closed", h.markContactClosed)
		contacts.DELETE("/:id", h.deleteContact)
	}
}

// submitContact godoc
// @Summary Submit a contact form message
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body dto.CreateContactRequest true "Contact message"
// @Success 201 {object} dto.ContactResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /contacts [post]
func (h *contactHandler) submitContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.contactSvc.SubmitContact(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to submit contact message")
		return
	}
	c.JSON(http.StatusCreated, dto.ToContactResponse(item))
}

// listContacts godoc
// @Summary List contact messages (admin)
// @Tags contacts
// @Produce json
// @Param status query string false "Filter by inbox status (new, read, closed)"
// @Param email query string false "Filter by sender email"
// @Param search query string false "Search name, email and subject"
// @Success 200 {object} dto.ListResponse[dto.ContactResponse]
// @Security BearerAuth
// @Router /admin/contacts [get]
func (h *contactHandler) listContacts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, meta := parseListParams(c)

	filter := portsrepo.ContactFilter{
		Email:  c.Query("email"),
		Search: c.Query("search"),
	}
	if raw := c.Query("status"); raw != "" {
		if parsed, err := domain.ParseContactStatus(raw); err == nil {
			filter.Status = &parsed
		}
	}

	items, total, err := h.contactSvc.ListContacts(c.Request.Context(), filter, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list contact messages")
		return
	}

	meta.Total = total
	c.JSON(http.StatusOK, dto.ListResponse[dto.ContactResponse]{
		Data: dto.ToListContactResponse(items),
		Meta: meta,
	})
}

// getContactByID godoc
// @Summary Get a contact message by ID
// @Description Opening a new message marks it as read.
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} dto.ContactResponse
// @Failure 404 {object} map[string]string "Contact not found"
// @Security BearerAuth
// @Router /admin/contacts/{id} [get]
func (h *contactHandler) getContactByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	item, err := h.contactSvc.GetContactByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve contact message")
		return
	}

	// Opening a fresh message counts as reading it.
	if item.Status == domain.ContactStatusNew {
		if readerUserID, ok := middleware.GetUserIDFromContext(c); ok {
			if marked, err := h.contactSvc.MarkContactRead(c.Request.Context(), item.ContactID, readerUserID); err == nil {
				item = marked
			}
		}
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(item))
}

// updateContactStatus godoc
// @Summary Update a contact message's inbox status
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param status body dto.UpdateContactStatusRequest true "New status"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 404 {object} map[string]string "Contact not found"
// @Security BearerAuth
// @Router /admin/contacts/{id}/status [patch]
func (h *contactHandler) updateContactStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.contactSvc.UpdateContactStatus(c.Request.Context(), c.Param("id"), req.Status, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update contact status")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(item))
}

// markContactRead godoc
// @Summary Mark a contact message as read
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} dto.ContactResponse
// @Failure 404 {object} map[string]string "Contact not found"
// @Security BearerAuth
// @Router /admin/contacts/{id}/mark-as-read [post]
func (h *contactHandler) markContactRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.contactSvc.MarkContactRead(c.Request.Context(), c.Param("id"), updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to mark contact as read")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(item))
}

// markContactClosed godoc
// @Summary Mark a contact message as closed
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} dto.ContactResponse
// @Failure 404 {object} map[string]string "Contact not found"
// @Security BearerAuth
// @Router /admin/contacts/{id}/mark-as-closed [post]
func (h *contactHandler) markContactClosed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.contactSvc.MarkContactClosed(c.Request.Context(), c.Param("id"), updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to mark contact as closed")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(item))
}

// deleteContact godoc
// @Summary Delete a contact message
// @Tags contacts
// @Param id path string true "Contact ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Contact not found"
// @Security BearerAuth
// @Router /admin/contacts/{id} [delete]
func (h *contactHandler) deleteContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.contactSvc.DeleteContact(c.Request.Context(), c.Param("id"), deleterUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete contact message")
		return
	}
	c.Status(http.StatusNoContent)
}
