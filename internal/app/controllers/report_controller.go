package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nkurunziza/erinda/internal/app/models/dto"
	"github.com/nkurunziza/erinda/internal/app/services"
	"github.com/nkurunziza/erinda/internal/middleware"
)

// ReportController handles incident report requests
type ReportController struct {
	reportService services.ReportService
	logger        zerolog.Logger
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService, logger zerolog.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

// Create persists a new incident report with status Pending
func (c *ReportController) Create(ctx *gin.Context) {
	var req dto.CreateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	_, username, _ := middleware.Identity(ctx)
	report, err := c.reportService.Create(ctx.Request.Context(), username, &req)
	if err != nil {
		c.logger.Error().Err(err).Str("submittedBy", username).Msg("Failed to create report")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, report)
}

// List returns all reports newest first
func (c *ReportController) List(ctx *gin.Context) {
	reports, err := c.reportService.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list reports")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reports)
}

// UpdateStatus overwrites a report's status
func (c *ReportController) UpdateStatus(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid report id"))
		return
	}

	var req dto.UpdateReportStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	report, err := c.reportService.UpdateStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		c.logger.Warn().Err(err).Int64("reportId", id).Msg("Failed to update report status")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, report)
}
