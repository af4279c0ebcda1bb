package handlers

import (
	"errors"
	"net/http"

	"flowerdecor/models"
	"flowerdecor/services/admin"
	"flowerdecor/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles dashboard sign-in.
type AdminHandler struct {
	AdminService admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{AdminService: svc}
}

// LoginHandler handles POST /api/admin/login.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Username and password are required", err)
		return
	}

	resp, err := h.AdminService.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, admin.ErrMissingCredentials):
		utils.JSONError(c, http.StatusBadRequest, "Username and password are required", err)
	case errors.Is(err, admin.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", err)
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", err)
	default:
		c.JSON(http.StatusOK, resp)
	}
}
