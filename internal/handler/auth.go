package handler

import (
	"errors"
	"net/http"
	"strings"

	"minecoin/internal/middleware"
	"minecoin/internal/model"
	"minecoin/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	maxUsernameLength = 64
	maxNameLength     = 100
)

// AuthHandler handles registration, login and session lifecycle.
type AuthHandler struct {
	users    *service.UserService
	sessions *service.SessionService
}

func NewAuthHandler(users *service.UserService, sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

// Register handles public user signup. New accounts start PENDING and
// cannot log in until an admin approves them.
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	req, ok := bindRegisterRequest(c)
	if !ok {
		return
	}

	user, err := h.users.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewSuccessResponse(
		"Signup submitted. You can log in after admin approval.",
		user.ToResponse(),
	))
}

// RegisterAdmin creates a pre-approved ADMIN account. Admin only.
// @Router /admin/register [post]
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	req, ok := bindRegisterRequest(c)
	if !ok {
		return
	}

	user, err := h.users.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewSuccessResponse("Admin account created", user.ToResponse()))
}

// Login authenticates and issues a session token.
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	user, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := h.sessions.Create(user)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Logged in", gin.H{
		"token": token,
		"user":  user.ToResponse(),
	}))
}

// Logout revokes the current session token.
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if v, ok := c.Get(middleware.ContextTokenKey); ok {
		if token, ok := v.(string); ok {
			h.sessions.Delete(token)
		}
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Logged out", nil))
}

// Me returns the authenticated user's record.
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse("Not authenticated", ""))
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", user.ToResponse()))
}

func bindRegisterRequest(c *gin.Context) (*model.RegisterRequest, bool) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return nil, false
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Name = strings.TrimSpace(req.Name)
	if req.Username == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Username is required", ""))
		return nil, false
	}
	if len(req.Username) > maxUsernameLength {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Username exceeds maximum length", ""))
		return nil, false
	}
	if len(req.Name) > maxNameLength {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Name exceeds maximum length", ""))
		return nil, false
	}
	return &req, true
}

// respondServiceError maps service errors to HTTP responses. Validation
// errors surface directly; infrastructure failures become a generic retry
// message (the wrapped cause is already logged at the service boundary).
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, model.NewErrorResponse(err.Error(), ""))
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrPendingApproval),
		errors.Is(err, service.ErrRejected),
		errors.Is(err, service.ErrInvalidSession):
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse(err.Error(), ""))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, model.NewErrorResponse(err.Error(), ""))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, model.NewErrorResponse(err.Error(), ""))
	default:
		c.JSON(http.StatusServiceUnavailable, model.NewErrorResponse(
			"Temporary storage failure, please try again", ""))
	}
}
