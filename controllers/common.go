package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "petstay/errors"
	"petstay/response"
	"petstay/services"
)

// currentUser resolves the caller from the Authorization header. When it
// returns false, the 401 response has already been written.
func currentUser(c *gin.Context) (uint, int, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return 0, 0, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	userID, userRole, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return 0, 0, false
	}

	return userID, userRole, true
}

// handleServiceError maps service errors onto HTTP responses.
func handleServiceError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeRoomUnavailable:
		response.NotFoundWithMessage(c, appErr.Message)
	case apperrors.ErrCodeDBNotFound:
		response.NotFoundWithMessage(c, appErr.Message)
	case apperrors.ErrCodeUnauthorized:
		response.Forbidden(c)
	case apperrors.ErrCodeValidation,
		apperrors.ErrCodeRequiredField,
		apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidPassword,
		apperrors.ErrCodePetIncompatible,
		apperrors.ErrCodePetAlreadyBooked,
		apperrors.ErrCodeInvalidOperation:
		response.BadRequest(c, appErr.Message)
	default:
		response.ServerError(c)
	}
}
