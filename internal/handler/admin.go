package handler

import (
	"net/http"

	"minecoin/internal/middleware"
	"minecoin/internal/model"
	"minecoin/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles the master-tier destructive operations.
type AdminHandler struct {
	admin *service.AdminService
}

func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// ResetUserData purges every non-MASTER account and all transactions,
// leaving news and settings untouched. Master only.
// @Router /admin/reset-user-data [post]
func (h *AdminHandler) ResetUserData(c *gin.Context) {
	user := middleware.CurrentUser(c)
	summary, err := h.admin.ResetUserData(c.Request.Context(), user.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("User data reset", summary))
}

// ResetAll wipes the whole dataset back to bootstrap defaults. Master only.
// @Router /admin/reset-all [post]
func (h *AdminHandler) ResetAll(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if err := h.admin.ResetAll(c.Request.Context(), user.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Store reset to defaults", nil))
}
