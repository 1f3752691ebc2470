package handler

import (
	"net/http"

	"minecoin/internal/middleware"
	"minecoin/internal/model"
	"minecoin/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles member administration and self-service profile edits.
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List returns all accounts. Admin only.
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	out := make([]model.UserResponse, len(users))
	for i := range users {
		out[i] = users[i].ToResponse()
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", out))
}

// UpdateStatus sets a member's approval status. Admin only.
// @Router /users/:id/status [patch]
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status model.UserStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	if err := h.users.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Status updated", nil))
}

// Update merges profile fields onto an account. Members may edit only their
// own record; admins may edit anyone's.
// @Router /users/:id [patch]
func (h *UserHandler) Update(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id := c.Param("id")
	if actor.Role == model.RoleUser && actor.ID != id {
		c.JSON(http.StatusForbidden, model.NewErrorResponse("Cannot edit another member's profile", ""))
		return
	}

	var update model.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, &update)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Profile updated", user.ToResponse()))
}

// Delete removes an account. The MASTER account is refused. Admin only.
// @Router /users/:id [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	deleted, err := h.users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusForbidden, model.NewErrorResponse("Account cannot be deleted", ""))
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Account deleted", nil))
}
