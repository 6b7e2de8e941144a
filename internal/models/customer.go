package models

type Customer struct {
	ID       string `gorm:"type:uuid;primaryKey"`
	Name     string `gorm:"size:255;not null"`
	Email    string `gorm:"size:255;not null"`
	ImageURL string `gorm:"column:image_url;size:255;not null"`
}
