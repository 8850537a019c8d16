package model

// ImageTypeFront marks the designated primary display image of an animal.
const ImageTypeFront = "front"

// AnimalImage stores one typed image path per animal. The unique index on
// (animal_id, image_type) is what makes the front-image upsert replace
// instead of duplicate.
type AnimalImage struct {
	ImageID   uint   `gorm:"column:image_id;primaryKey;autoIncrement" json:"image_id"`
	AnimalID  uint   `gorm:"column:animal_id;uniqueIndex:idx_animal_image_type;not null" json:"animal_id"`
	ImageType string `gorm:"column:image_type;size:30;uniqueIndex:idx_animal_image_type;not null" json:"image_type"`
	ImagePath string `gorm:"column:image_path;size:255;not null" json:"image_path"`
}

func (AnimalImage) TableName() string {
	return "animal_images"
}
