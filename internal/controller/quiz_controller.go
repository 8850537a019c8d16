package controller

import (
	"errors"
	"strconv"

	"pawlearn_backend/internal/service"
	"pawlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// @Summary Get the standalone quick quiz
// @Description The lowest-id quiz with no course association
// @Tags quizzes
// @Produce json
// @Success 200 {object} model.Quiz
// @Failure 404 {object} util.MessageResponse
// @Router /api/quizzes/standalone [get]
func (c *QuizController) GetStandalone(ctx *gin.Context) {
	quiz, err := c.QuizService.Standalone()
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.DBError(ctx, err)
		return
	}
	util.OK(ctx, quiz)
}

// @Summary Get a quiz by id
// @Tags quizzes
// @Produce json
// @Param quizId path int true "Quiz ID"
// @Success 200 {object} model.Quiz
// @Failure 404 {object} util.MessageResponse
// @Router /api/quizzes/{quizId} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quizId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	quiz, err := c.QuizService.Get(uint(quizID))
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.DBError(ctx, err)
		return
	}
	util.OK(ctx, quiz)
}

// @Summary Get the quiz of a course
// @Tags quizzes
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} model.Quiz
// @Failure 404 {object} util.MessageResponse
// @Router /api/courses/{courseId}/quiz [get]
func (c *QuizController) GetByCourse(ctx *gin.Context) {
	courseID, err := strconv.ParseUint(ctx.Param("courseId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	quiz, err := c.QuizService.ByCourse(uint(courseID))
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.DBError(ctx, err)
		return
	}
	util.OK(ctx, quiz)
}

// @Summary List quiz questions with options
// @Description One record per question with its options; correctness flags are never exposed
// @Tags quizzes
// @Produce json
// @Param quizId path int true "Quiz ID"
// @Success 200 {array} model.QuestionWithOptions
// @Failure 500 {object} util.ErrorResponse
// @Router /api/quizzes/{quizId}/questions [get]
func (c *QuizController) Questions(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quizId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	questions, err := c.QuizService.Questions(uint(quizID))
	if err != nil {
		util.DBError(ctx, err)
		return
	}
	util.OK(ctx, questions)
}

// @Summary Attempt a quiz
// @Description Scores the answers, stores the attempt and awards eligible badges
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quizId path int true "Quiz ID"
// @Param attempt body service.AttemptRequest true "Submitted answers"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.MessageResponse
// @Router /api/quizzes/{quizId}/attempt [post]
func (c *QuizController) Attempt(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quizId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	var req service.AttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.Attempt(uint(quizID), req)
	if err != nil {
		if errors.Is(err, util.ErrEmptyAnswerKey) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.DBError(ctx, err)
		return
	}

	ctx.JSON(200, gin.H{"score": result.Score, "passed": result.Passed})
}

// @Summary Submit a quiz
// @Description Same server-side scoring as attempt; responds with an acknowledgement and the number of badges newly awarded
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quizId path int true "Quiz ID"
// @Param submission body service.AttemptRequest true "Submitted answers"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.MessageResponse
// @Router /api/quizzes/{quizId}/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quizId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	var req service.AttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.Attempt(uint(quizID), req)
	if err != nil {
		if errors.Is(err, util.ErrEmptyAnswerKey) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.DBError(ctx, err)
		return
	}

	ctx.JSON(200, gin.H{
		"message":        "Quiz submitted",
		"score":          result.Score,
		"badges_awarded": result.BadgesAwarded,
	})
}
