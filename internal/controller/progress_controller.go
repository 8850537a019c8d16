package controller

import (
	"pawlearn_backend/internal/service"
	"pawlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary Mark a lesson step complete
// @Description Idempotent per (user, lesson, step); user_id defaults to the guest user
// @Tags progress
// @Accept json
// @Produce json
// @Param progress body service.MarkStepRequest true "Completion mark"
// @Success 200 {object} util.MessageResponse
// @Failure 400 {object} util.MessageResponse
// @Router /api/lesson-progress [post]
func (c *ProgressController) MarkStepComplete(ctx *gin.Context) {
	var req service.MarkStepRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// Presence check before any query runs.
	if req.LessonID == 0 || req.StepID == 0 {
		util.BadRequest(ctx, "lesson_id and step_id are required")
		return
	}

	if err := c.ProgressService.MarkStepComplete(req); err != nil {
		util.DBError(ctx, err)
		return
	}

	util.Message(ctx, "Step completed")
}
