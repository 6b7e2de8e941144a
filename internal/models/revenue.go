package models

type Revenue struct {
	Month   string `gorm:"size:4;uniqueIndex;not null"`
	Revenue int    `gorm:"not null"`
}

func (Revenue) TableName() string {
	return "revenue"
}
