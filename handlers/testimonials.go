package handlers

import (
	"net/http"

	"flowerdecor/models"
	"flowerdecor/utils"

	"github.com/gin-gonic/gin"
)

func (h *ContentHandler) ListTestimonialsHandler(c *gin.Context) {
	testimonials, err := h.Content.ListTestimonials(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Failed to fetch testimonials")
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

func (h *ContentHandler) CreateTestimonialHandler(c *gin.Context) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Rating  int    `json:"rating"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	created, err := h.Content.CreateTestimonial(c.Request.Context(), models.Testimonial{
		Name:    input.Name,
		Email:   input.Email,
		Rating:  input.Rating,
		Message: input.Message,
	})
	if err != nil {
		respondError(c, err, "", "Failed to save testimonial")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "testimonial": created})
}
