package handler

import (
	"net/http"

	"minecoin/internal/model"
	"minecoin/internal/service"

	"github.com/gin-gonic/gin"
)

// SiteConfigHandler handles the singleton site settings.
type SiteConfigHandler struct {
	config *service.SiteConfigService
}

func NewSiteConfigHandler(config *service.SiteConfigService) *SiteConfigHandler {
	return &SiteConfigHandler{config: config}
}

// Get returns the current site configuration (coin price, deposit
// instructions, marketing copy). Public.
// @Router /config [get]
func (h *SiteConfigHandler) Get(c *gin.Context) {
	cfg, err := h.config.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", cfg))
}

// Update merges partial settings onto the singleton. Admin only.
// @Router /config [patch]
func (h *SiteConfigHandler) Update(c *gin.Context) {
	var update model.SiteConfigUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	cfg, err := h.config.Update(c.Request.Context(), &update)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Settings saved", cfg))
}
