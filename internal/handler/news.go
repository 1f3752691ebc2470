package handler

import (
	"net/http"

	"minecoin/internal/model"
	"minecoin/internal/service"

	"github.com/gin-gonic/gin"
)

// NewsHandler handles announcements.
type NewsHandler struct {
	news *service.NewsService
}

func NewNewsHandler(news *service.NewsService) *NewsHandler {
	return &NewsHandler{news: news}
}

// List returns all announcements, newest first. Public.
// @Router /news [get]
func (h *NewsHandler) List(c *gin.Context) {
	items, err := h.news.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", items))
}

// Add publishes an announcement. Admin only.
// @Router /news [post]
func (h *NewsHandler) Add(c *gin.Context) {
	var req model.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	item, err := h.news.Add(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("News published", item))
}

// Delete removes an announcement. Admin only.
// @Router /news/:id [delete]
func (h *NewsHandler) Delete(c *gin.Context) {
	deleted, err := h.news.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("News item not found", ""))
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("News deleted", nil))
}
