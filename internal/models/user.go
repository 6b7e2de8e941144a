package models

type User struct {
	ID       string `gorm:"type:uuid;primaryKey"`
	Name     string `gorm:"size:255;not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
}
