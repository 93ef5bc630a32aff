package models

import "gorm.io/datatypes"

type Question struct {
	ID            uint                        `gorm:"primaryKey" json:"id"`
	QuizID        uint                        `gorm:"not null;index" json:"quiz_id"`
	Text          string                      `gorm:"type:text;not null" json:"text"`
	Options       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"options"`
	CorrectAnswer string                      `gorm:"size:500;not null" json:"correct_answer"`
}
