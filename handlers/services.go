package handlers

import (
	"net/http"

	"flowerdecor/models"
	"flowerdecor/services/content"
	"flowerdecor/utils"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves services, events, testimonials and dashboard stats.
type ContentHandler struct {
	Content content.ContentService
}

func NewContentHandler(svc content.ContentService) *ContentHandler {
	return &ContentHandler{Content: svc}
}

// ListServicesHandler handles GET /api/services and GET /api/admin/services.
func (h *ContentHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Content.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Failed to fetch services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateServiceHandler handles POST /api/admin/services.
func (h *ContentHandler) CreateServiceHandler(c *gin.Context) {
	var input models.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	created, err := h.Content.CreateService(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "", "Failed to create service")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateServiceHandler handles PUT /api/admin/services/:id. Absent fields are left unchanged.
func (h *ContentHandler) UpdateServiceHandler(c *gin.Context) {
	var input models.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	updated, err := h.Content.UpdateService(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err, "Service not found", "Update failed")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteServiceHandler handles DELETE /api/admin/services/:id.
func (h *ContentHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Content.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Service not found", "Delete failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// StatsHandler handles GET /api/admin/stats.
func (h *ContentHandler) StatsHandler(c *gin.Context) {
	stats, err := h.Content.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Failed to fetch stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
