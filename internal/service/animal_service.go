package service

import (
	"errors"
	"strings"
	"time"

	"pawlearn_backend/internal/model"
	"pawlearn_backend/internal/repository"
	"pawlearn_backend/internal/util"
)

var ErrInvalidDateOfBirth = errors.New("invalid date_of_birth, expected YYYY-MM-DD")

type AnimalService struct {
	AnimalRepo *repository.AnimalRepository
}

func NewAnimalService(animalRepo *repository.AnimalRepository) *AnimalService {
	return &AnimalService{AnimalRepo: animalRepo}
}

// AnimalRequest carries the writable animal fields. ImagePath, when present
// and non-blank, maintains the animal's front image alongside the row.
type AnimalRequest struct {
	Name              string `json:"name"`
	Species           string `json:"species"`
	Breed             string `json:"breed"`
	DateOfBirth       string `json:"date_of_birth"`
	Gender            string `json:"gender"`
	Temperament       string `json:"temperament"`
	IdealHome         string `json:"ideal_home"`
	LifestyleNeeds    string `json:"lifestyle_needs"`
	VaccinationStatus string `json:"vaccination_status"`
	HealthIssues      string `json:"health_issues"`
	AdoptionStatus    string `json:"adoption_status"`
	ImagePath         string `json:"image_path"`
}

func (req *AnimalRequest) toModel() (*model.Animal, error) {
	dob, err := time.Parse(util.DateFormat, req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateOfBirth
	}
	return &model.Animal{
		Name:              req.Name,
		Species:           req.Species,
		Breed:             req.Breed,
		DateOfBirth:       dob,
		Gender:            req.Gender,
		Temperament:       req.Temperament,
		IdealHome:         req.IdealHome,
		LifestyleNeeds:    req.LifestyleNeeds,
		VaccinationStatus: req.VaccinationStatus,
		HealthIssues:      req.HealthIssues,
		AdoptionStatus:    req.AdoptionStatus,
	}, nil
}

// List returns every animal as a summary row with the derived age in months
// and its front image path, nil when the animal has none.
func (s *AnimalService) List() ([]model.AnimalSummary, error) {
	animals, err := s.AnimalRepo.FindAll()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summaries := make([]model.AnimalSummary, 0, len(animals))
	for _, animal := range animals {
		summary := model.AnimalSummary{
			AnimalID:          animal.AnimalID,
			Name:              animal.Name,
			Species:           animal.Species,
			Breed:             animal.Breed,
			AgeMonths:         util.MonthsSince(animal.DateOfBirth, now),
			Gender:            animal.Gender,
			AdoptionStatus:    animal.AdoptionStatus,
			VaccinationStatus: animal.VaccinationStatus,
			Temperament:       animal.Temperament,
		}
		for _, img := range animal.Images {
			if img.ImageType == model.ImageTypeFront {
				path := img.ImagePath
				summary.Image = &path
				break
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *AnimalService) Get(id uint) (*model.AnimalProfile, error) {
	animal, err := s.AnimalRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	images := animal.Images
	if images == nil {
		images = []model.AnimalImage{}
	}
	animal.Images = nil

	return &model.AnimalProfile{
		Animal:    *animal,
		AgeMonths: util.MonthsSince(animal.DateOfBirth, time.Now()),
		Images:    images,
	}, nil
}

func (s *AnimalService) Create(req AnimalRequest) (uint, error) {
	animal, err := req.toModel()
	if err != nil {
		return 0, err
	}

	if err := s.AnimalRepo.CreateWithFrontImage(animal, strings.TrimSpace(req.ImagePath)); err != nil {
		return 0, err
	}
	return animal.AnimalID, nil
}

func (s *AnimalService) Update(id uint, req AnimalRequest) error {
	animal, err := req.toModel()
	if err != nil {
		return err
	}
	animal.AnimalID = id

	return s.AnimalRepo.UpdateWithFrontImage(animal, strings.TrimSpace(req.ImagePath))
}

func (s *AnimalService) Delete(id uint) error {
	return s.AnimalRepo.DeleteCascade(id)
}
