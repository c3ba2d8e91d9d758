package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/nkurunziza/erinda/internal/app/models/dto"
	"github.com/nkurunziza/erinda/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto HTTP statuses with the
// uniform {detail} body. Handlers call this instead of classifying
// errors themselves.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrIdentityTaken):
		c.JSON(400, dto.NewErrorResponse("Username or Email already exists"))
	case errors.Is(err, apperrors.ErrInvalidRole),
		errors.Is(err, apperrors.ErrInvalidDateOfBirth),
		errors.Is(err, apperrors.ErrInvalidReportStatus),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse("Invalid credentials"))
	case errors.Is(err, apperrors.ErrTokenMissing):
		c.JSON(401, dto.NewErrorResponse("Token missing"))
	case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(403, dto.NewErrorResponse("Invalid or expired token"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.NewErrorResponse("Insufficient permissions"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(404, dto.NewErrorResponse("User not found"))
	case errors.Is(err, apperrors.ErrReportNotFound):
		c.JSON(404, dto.NewErrorResponse("Report not found"))
	case errors.Is(err, apperrors.ErrAttendanceNotFound), errors.Is(err, apperrors.ErrNoOpenCheckIn):
		c.JSON(404, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse(err.Error()))
	default:
		c.JSON(500, dto.NewErrorResponse(err.Error()))
	}
}
