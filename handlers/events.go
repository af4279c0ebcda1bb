package handlers

import (
	"net/http"

	"flowerdecor/models"
	"flowerdecor/utils"

	"github.com/gin-gonic/gin"
)

func (h *ContentHandler) ListEventsHandler(c *gin.Context) {
	events, err := h.Content.ListEvents(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Failed to fetch events")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *ContentHandler) CreateEventHandler(c *gin.Context) {
	var input models.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	created, err := h.Content.CreateEvent(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "", "Failed to add event")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Event added successfully", "event": created})
}

func (h *ContentHandler) UpdateEventHandler(c *gin.Context) {
	var input models.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	updated, err := h.Content.UpdateEvent(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err, "Event not found", "Update failed")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteEventHandler handles DELETE /api/delete/events/:id; the stored image goes with it.
func (h *ContentHandler) DeleteEventHandler(c *gin.Context) {
	if err := h.Content.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Event not found", "Delete failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
