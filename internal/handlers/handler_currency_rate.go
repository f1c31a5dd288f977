package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/oryxgate/realty_cms/internal/core/ports/services"
	"github.com/oryxgate/realty_cms/internal/dto"
	"github.com/oryxgate/realty_cms/internal/middleware"
)

// currencyRateHandler handles HTTP requests related to currency rates.
type currencyRateHandler struct {
	rateSvc    portssvc.CurrencyRateSvcFacade
	conversion portssvc.CurrencyConversionSvc
}

func newCurrencyRateHandler(rateSvc portssvc.CurrencyRateSvcFacade, conversion portssvc.CurrencyConversionSvc) *currencyRateHandler {
	return &currencyRateHandler{rateSvc: rateSvc, conversion: conversion}
}

// registerPublicCurrencyRoutes exposes the active currency list for site
// currency pickers.
func registerPublicCurrencyRoutes(rg *gin.RouterGroup, rateSvc portssvc.CurrencyRateSvcFacade, conversion portssvc.CurrencyConversionSvc) {
	h := newCurrencyRateHandler(rateSvc, conversion)
	rg.GET("/currencies", h.listActiveCurrencies)
}

// registerAdminCurrencyRateRoutes registers the rate management routes.
func registerAdminCurrencyRateRoutes(rg *gin.RouterGroup, rateSvc portssvc.CurrencyRateSvcFacade, conversion portssvc.CurrencyConversionSvc) {
	h := newCurrencyRateHandler(rateSvc, conversion)

	rates := rg.Group("/currency-rates")
	{
		rates.POST("", h.createCurrencyRate)
		rates.GET("", h.listCurrencyRates)
		rates.GET("/:code", h.getCurrencyRateByCode)
		rates.PUT("/:id", h.updateCurrencyRate)
		rates.POST("/:id/activate", h.activateCurrencyRate)
		rates.POST("/:id/deactivate", h.deactivateCurrencyRate)
	}
}

// listActiveCurrencies godoc
// @Summary List active currencies
// @Description Lists the currencies available for display conversion
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyRateResponse
// @Router /currencies [get]
func (h *currencyRateHandler) listActiveCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.conversion.ListActiveCurrencies(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyRateResponse(rates))
}

// createCurrencyRate godoc
// @Summary Register a currency rate
// @Description Adds a currency with its exchange rate against the base currency
// @Tags currency-rates
// @Accept json
// @Produce json
// @Param rate body dto.CreateCurrencyRateRequest true "Currency rate details"
// @Success 201 {object} dto.CurrencyRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Currency code already exists"
// @Security BearerAuth
// @Router /admin/currency-rates [post]
func (h *currencyRateHandler) createCurrencyRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.rateSvc.CreateCurrencyRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create currency rate")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCurrencyRateResponse(rate))
}

// listCurrencyRates godoc
// @Summary List all currency rates
// @Description Lists every rate including deactivated ones
// @Tags currency-rates
// @Produce json
// @Success 200 {array} dto.CurrencyRateResponse
// @Security BearerAuth
// @Router /admin/currency-rates [get]
func (h *currencyRateHandler) listCurrencyRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateSvc.ListCurrencyRates(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list currency rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyRateResponse(rates))
}

// getCurrencyRateByCode godoc
// @Summary Get an active currency rate by code
// @Tags currency-rates
// @Produce json
// @Param code path string true "Currency code (3 letters)"
// @Success 200 {object} dto.CurrencyRateResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Security BearerAuth
// @Router /admin/currency-rates/{code} [get]
func (h *currencyRateHandler) getCurrencyRateByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")
	if len(code) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	rate, err := h.rateSvc.GetCurrencyRateByCode(c.Request.Context(), code)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve currency rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyRateResponse(rate))
}

// updateCurrencyRate godoc
// @Summary Update a currency rate
// @Tags currency-rates
// @Accept json
// @Produce json
// @Param id path string true "Currency rate ID"
// @Param rate body dto.UpdateCurrencyRateRequest true "Fields to update"
// @Success 200 {object} dto.CurrencyRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency rate not found"
// @Security BearerAuth
// @Router /admin/currency-rates/{id} [put]
func (h *currencyRateHandler) updateCurrencyRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateCurrencyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.rateSvc.UpdateCurrencyRate(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update currency rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyRateResponse(rate))
}

// activateCurrencyRate godoc
// @Summary Activate a currency rate
// @Tags currency-rates
// @Param id path string true "Currency rate ID"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /admin/currency-rates/{id}/activate [post]
func (h *currencyRateHandler) activateCurrencyRate(c *gin.Context) {
	h.setActive(c, true, "Failed to activate currency rate")
}

// deactivateCurrencyRate godoc
// @Summary Deactivate a currency rate
// @Description Deactivated rates vanish from conversion; prices fall back to base amounts
// @Tags currency-rates
// @Param id path string true "Currency rate ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Cannot deactivate the base currency"
// @Security BearerAuth
// @Router /admin/currency-rates/{id}/deactivate [post]
func (h *currencyRateHandler) deactivateCurrencyRate(c *gin.Context) {
	h.setActive(c, false, "Failed to deactivate currency rate")
}

func (h *currencyRateHandler) setActive(c *gin.Context, active bool, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.rateSvc.SetCurrencyRateActive(c.Request.Context(), c.Param("id"), active, updaterUserID); err != nil {
		respondServiceError(c, logger, err, fallbackMsg)
		return
	}
	c.Status(http.StatusNoContent)
}
