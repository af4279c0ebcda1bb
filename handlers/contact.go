package handlers

import (
	"context"
	"net/http"

	"flowerdecor/models"
	"flowerdecor/services/contact"

	"github.com/gin-gonic/gin"
)

// ContactRelay forwards one contact-form message.
type ContactRelay interface {
	Handle(ctx context.Context, req models.ContactRequest) contact.Outcome
}

type ContactHandler struct {
	Relay ContactRelay
}

func NewContactHandler(relay ContactRelay) *ContactHandler {
	return &ContactHandler{Relay: relay}
}

// SendContactHandler handles POST /api/contact.
func (h *ContactHandler) SendContactHandler(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ContactResponse{Success: false, Error: "Invalid request body"})
		return
	}
	out := h.Relay.Handle(c.Request.Context(), req)
	c.JSON(out.Status, out.Body)
}
