package controller

import (
	"errors"
	"strconv"

	"pawlearn_backend/internal/service"
	"pawlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnimalController struct {
	AnimalService *service.AnimalService
}

func NewAnimalController(animalService *service.AnimalService) *AnimalController {
	return &AnimalController{AnimalService: animalService}
}

// @Summary List animals
// @Description Every animal with derived age in months and its front image path
// @Tags animals
// @Produce json
// @Success 200 {array} model.AnimalSummary
// @Failure 500 {object} util.ErrorResponse
// @Router /api/animals [get]
func (c *AnimalController) List(ctx *gin.Context) {
	animals, err := c.AnimalService.List()
	if err != nil {
		util.DBError(ctx, err)
		return
	}
	util.OK(ctx, animals)
}

// @Summary Get an animal profile
// @Description Full row plus derived age and all associated images
// @Tags animals
// @Produce json
// @Param id path int true "Animal ID"
// @Success 200 {object} model.AnimalProfile
// @Failure 404 {object} util.MessageResponse
// @Router /api/animals/{id} [get]
func (c *AnimalController) Get(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid animal ID")
		return
	}

	profile, err := c.AnimalService.Get(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrAnimalNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.DBError(ctx, err)
		return
	}
	util.OK(ctx, profile)
}

// @Summary Create an animal
// @Description Inserts the animal and, when image_path is supplied, its front image
// @Tags animals
// @Accept json
// @Produce json
// @Param animal body service.AnimalRequest true "Animal fields"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} util.ErrorResponse
// @Router /api/animals [post]
func (c *AnimalController) Create(ctx *gin.Context) {
	var req service.AnimalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	animalID, err := c.AnimalService.Create(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateOfBirth) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.DBError(ctx, err)
		return
	}

	ctx.JSON(200, gin.H{"message": "Animal added", "animal_id": animalID})
}

// @Summary Update an animal
// @Description Full-row update; upserts the front image when image_path is supplied
// @Tags animals
// @Accept json
// @Produce json
// @Param id path int true "Animal ID"
// @Param animal body service.AnimalRequest true "Animal fields"
// @Success 200 {object} util.MessageResponse
// @Failure 404 {object} util.MessageResponse
// @Router /api/animals/{id} [put]
func (c *AnimalController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid animal ID")
		return
	}

	var req service.AnimalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AnimalService.Update(uint(id), req); err != nil {
		switch {
		case errors.Is(err, util.ErrAnimalNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, service.ErrInvalidDateOfBirth):
			util.BadRequest(ctx, err.Error())
		default:
			util.DBError(ctx, err)
		}
		return
	}

	util.Message(ctx, "Animal updated")
}

// @Summary Delete an animal
// @Description Removes the animal and its images together
// @Tags animals
// @Produce json
// @Param id path int true "Animal ID"
// @Success 200 {object} util.MessageResponse
// @Failure 404 {object} util.MessageResponse
// @Router /api/animals/{id} [delete]
func (c *AnimalController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid animal ID")
		return
	}

	if err := c.AnimalService.Delete(uint(id)); err != nil {
		if errors.Is(err, util.ErrAnimalNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.DBError(ctx, err)
		return
	}

	util.Message(ctx, "Animal deleted")
}
