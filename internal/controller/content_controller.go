package controller

import (
	"errors"
	"strconv"

	"pawlearn_backend/internal/service"
	"pawlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// @Summary List courses
// @Description All courses with per-course lesson counts
// @Tags courses
// @Produce json
// @Success 200 {array} model.Course
// @Failure 500 {object} util.ErrorResponse
// @Router /api/courses [get]
func (c *ContentController) ListCourses(ctx *gin.Context) {
	courses, err := c.ContentService.ListCourses(ctx.Request.Context())
	if err != nil {
		util.DBError(ctx, err)
		return
	}
	util.OK(ctx, courses)
}

// @Summary List lessons of a course
// @Tags courses
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {array} model.Lesson
// @Failure 500 {object} util.ErrorResponse
// @Router /api/courses/{courseId}/lessons [get]
func (c *ContentController) ListLessons(ctx *gin.Context) {
	courseID, err := strconv.ParseUint(ctx.Param("courseId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	lessons, err := c.ContentService.ListLessons(uint(courseID))
	if err != nil {
		util.DBError(ctx, err)
		return
	}
	util.OK(ctx, lessons)
}

// @Summary Get lesson metadata
// @Tags lessons
// @Produce json
// @Param lessonId path int true "Lesson ID"
// @Success 200 {object} model.Lesson
// @Failure 404 {object} util.MessageResponse
// @Router /api/lessons/{lessonId} [get]
func (c *ContentController) GetLesson(ctx *gin.Context) {
	lessonID, err := strconv.ParseUint(ctx.Param("lessonId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid lesson ID")
		return
	}

	lesson, err := c.ContentService.GetLesson(uint(lessonID))
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.DBError(ctx, err)
		return
	}
	util.OK(ctx, lesson)
}

// @Summary List steps of a lesson
// @Description Steps ordered by step_order
// @Tags lessons
// @Produce json
// @Param lessonId path int true "Lesson ID"
// @Success 200 {array} model.LessonStep
// @Failure 500 {object} util.ErrorResponse
// @Router /api/lessons/{lessonId}/steps [get]
func (c *ContentController) ListSteps(ctx *gin.Context) {
	lessonID, err := strconv.ParseUint(ctx.Param("lessonId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid lesson ID")
		return
	}

	steps, err := c.ContentService.ListSteps(uint(lessonID))
	if err != nil {
		util.DBError(ctx, err)
		return
	}
	util.OK(ctx, steps)
}
