package repository

import (
	"errors"

	"pawlearn_backend/internal/model"
	"pawlearn_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnimalRepository struct {
	DB *gorm.DB
}

func NewAnimalRepository(db *gorm.DB) *AnimalRepository {
	return &AnimalRepository{DB: db}
}

func (r *AnimalRepository) FindAll() ([]model.Animal, error) {
	var animals []model.Animal
	err := r.DB.Preload("Images").Order("animal_id").Find(&animals).Error
	return animals, err
}

func (r *AnimalRepository) FindByID(id uint) (*model.Animal, error) {
	var animal model.Animal
	err := r.DB.Preload("Images").Where("animal_id = ?", id).First(&animal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAnimalNotFound
		}
		return nil, err
	}
	return &animal, nil
}

// CreateWithFrontImage inserts the animal and, when a non-empty image path was
// supplied, its front image row, atomically.
func (r *AnimalRepository) CreateWithFrontImage(animal *model.Animal, imagePath string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(animal).Error; err != nil {
			return err
		}
		if imagePath == "" {
			return nil
		}
		return tx.Create(&model.AnimalImage{
			AnimalID:  animal.AnimalID,
			ImageType: model.ImageTypeFront,
			ImagePath: imagePath,
		}).Error
	})
}

// UpdateWithFrontImage rewrites the full animal row and upserts the front
// image when a path was supplied. Returns ErrAnimalNotFound when the id does
// not exist; nothing is written in that case.
func (r *AnimalRepository) UpdateWithFrontImage(animal *model.Animal, imagePath string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.Animal
		if err := tx.Select("animal_id").Where("animal_id = ?", animal.AnimalID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrAnimalNotFound
			}
			return err
		}

		err := tx.Model(&model.Animal{}).
			Where("animal_id = ?", animal.AnimalID).
			Select("name", "species", "breed", "date_of_birth", "gender", "temperament",
				"ideal_home", "lifestyle_needs", "vaccination_status", "health_issues", "adoption_status").
			Updates(animal).Error
		if err != nil {
			return err
		}

		if imagePath == "" {
			return nil
		}

		// Replace-on-conflict against the (animal_id, image_type) unique index.
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "animal_id"}, {Name: "image_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"image_path"}),
		}).Create(&model.AnimalImage{
			AnimalID:  animal.AnimalID,
			ImageType: model.ImageTypeFront,
			ImagePath: imagePath,
		}).Error
	})
}

// DeleteCascade removes the animal's images and then the animal itself in one
// transaction. A missing animal rolls everything back and reports not found.
func (r *AnimalRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("animal_id = ?", id).Delete(&model.AnimalImage{}).Error; err != nil {
			return err
		}

		res := tx.Where("animal_id = ?", id).Delete(&model.Animal{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.ErrAnimalNotFound
		}
		return nil
	})
}
