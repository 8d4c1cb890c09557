package model

type Note struct {
	NotesId     string `gorm:"type:varchar(64);primaryKey"`
	Email       string `gorm:"type:varchar(255);not null;index"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	DateAdded   string `gorm:"type:varchar(64);not null"`
	Marked      bool   `gorm:"not null;default:false"`
}

func (Note) TableName() string {
	return "notes"
}
