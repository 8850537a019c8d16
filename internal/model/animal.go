package model

import "time"

// Animal is an adoptable animal profile. Age is never stored: it is derived
// from DateOfBirth whenever the row is read.
type Animal struct {
	AnimalID          uint      `gorm:"column:animal_id;primaryKey;autoIncrement" json:"animal_id"`
	Name              string    `gorm:"size:100;not null" json:"name"`
	Species           string    `gorm:"size:50" json:"species"`
	Breed             string    `gorm:"size:100" json:"breed"`
	DateOfBirth       time.Time `gorm:"column:date_of_birth;type:date" json:"date_of_birth"`
	Gender            string    `gorm:"size:10" json:"gender"`
	Temperament       string    `gorm:"size:255" json:"temperament"`
	IdealHome         string    `gorm:"type:text" json:"ideal_home"`
	LifestyleNeeds    string    `gorm:"type:text" json:"lifestyle_needs"`
	VaccinationStatus string    `gorm:"size:50" json:"vaccination_status"`
	HealthIssues      string    `gorm:"type:text" json:"health_issues"`
	AdoptionStatus    string    `gorm:"size:50" json:"adoption_status"`

	Images []AnimalImage `gorm:"foreignKey:AnimalID" json:"images,omitempty"`
}

func (Animal) TableName() string {
	return "animals"
}
