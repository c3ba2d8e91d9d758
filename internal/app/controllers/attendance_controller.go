package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nkurunziza/erinda/internal/app/models/dto"
	"github.com/nkurunziza/erinda/internal/app/services"
	"github.com/nkurunziza/erinda/internal/middleware"
)

// AttendanceController handles attendance check-in/out and history
type AttendanceController struct {
	attendanceService services.AttendanceService
	logger            zerolog.Logger
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService, logger zerolog.Logger) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
		logger:            logger,
	}
}

// CheckIn records a Present attendance event
func (c *AttendanceController) CheckIn(ctx *gin.Context) {
	var req dto.CheckInRequest
	// An empty body is a valid self check-in
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
			return
		}
	}

	callerID, _, _ := middleware.Identity(ctx)
	record, err := c.attendanceService.CheckIn(ctx.Request.Context(), callerID, req.UserID, req.Remarks)
	if err != nil {
		c.logger.Error().Err(err).Int64("callerId", callerID).Msg("Check-in failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// CheckOut closes the caller's latest open check-in
func (c *AttendanceController) CheckOut(ctx *gin.Context) {
	callerID, _, _ := middleware.Identity(ctx)

	record, err := c.attendanceService.CheckOut(ctx.Request.Context(), callerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// List returns attendance history, scoped by the caller's role
func (c *AttendanceController) List(ctx *gin.Context) {
	callerID, _, role := middleware.Identity(ctx)

	records, err := c.attendanceService.List(ctx.Request.Context(), callerID, role)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list attendance records")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}
