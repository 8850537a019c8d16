package controller

import (
	"strconv"

	"pawlearn_backend/internal/service"
	"pawlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// @Summary Completed lesson steps of a user
// @Description Most recent first
// @Tags progress
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} model.LessonCompletionRow
// @Failure 500 {object} util.ErrorResponse
// @Router /api/progress/lessons/{userId} [get]
func (c *DashboardController) LessonCompletions(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid user ID")
		return
	}

	rows, err := c.DashboardService.LessonCompletions(uint(userID))
	if err != nil {
		util.DBError(ctx, err)
		return
	}
	util.OK(ctx, rows)
}

// @Summary Quiz attempts of a user
// @Description Most recent first
// @Tags progress
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} model.QuizAttemptRow
// @Failure 500 {object} util.ErrorResponse
// @Router /api/progress/quizzes/{userId} [get]
func (c *DashboardController) QuizAttempts(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid user ID")
		return
	}

	rows, err := c.DashboardService.QuizAttempts(uint(userID))
	if err != nil {
		util.DBError(ctx, err)
		return
	}
	util.OK(ctx, rows)
}

// @Summary Badges earned by a user
// @Description Most recent first
// @Tags progress
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} model.EarnedBadgeRow
// @Failure 500 {object} util.ErrorResponse
// @Router /api/progress/badges/{userId} [get]
func (c *DashboardController) EarnedBadges(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid user ID")
		return
	}

	rows, err := c.DashboardService.EarnedBadges(uint(userID))
	if err != nil {
		util.DBError(ctx, err)
		return
	}
	util.OK(ctx, rows)
}
