package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yutasaki/todo-list-api/internal/errors"
	"github.com/yutasaki/todo-list-api/internal/services"
)

// UserHandler coordinates profile and account management HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// UpdatePhoto sets or clears the user's profile photo.
func (h *UserHandler) UpdatePhoto(c *gin.Context) {
	type UpdatePhotoRequest struct {
		UserID uint64 `json:"userId" binding:"required"`
		Photo  string `json:"photo"`
	}

	var req UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "User ID is required")
		return
	}

	user, err := h.userService.UpdatePhoto(req.UserID, req.Photo)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Profile photo updated",
		"profilePhoto": user.ProfilePhoto,
	})
}

// DeleteAccount removes the user and every task they own.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.DeleteAccount(userID); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account deleted successfully",
	})
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
