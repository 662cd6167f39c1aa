package repository

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

type Form struct {
	ID          string     `gorm:"primaryKey;size:36"`
	Author      string     `gorm:"type:varchar(255);index;not null"`
	Name        string     `gorm:"not null"`
	Description string     `gorm:"not null;default:''"`
	Questions   []Question `gorm:"foreignKey:FormID;references:ID"`
	CreatedAt   time.Time  `gorm:"not null"`
}

// Question names are unique within a form. Seq keeps questions in insertion order.
type Question struct {
	Seq             uint                        `gorm:"primaryKey;autoIncrement"`
	ID              string                      `gorm:"size:36;uniqueIndex;not null"`
	FormID          string                      `gorm:"size:36;uniqueIndex:idx_form_question_name;not null"`
	Name            string                      `gorm:"uniqueIndex:idx_form_question_name;not null"`
	TypeOfInput     string                      `gorm:"size:16;not null;default:'text'"`
	PossibleAnswers datatypes.JSONSlice[string] `gorm:"not null"`
	Answers         []Answer                    `gorm:"foreignKey:QuestionID;references:ID"`
	CreatedAt       time.Time                   `gorm:"not null"`
}

type Answer struct {
	Seq        uint      `gorm:"primaryKey;autoIncrement"`
	QuestionID string    `gorm:"size:36;index;not null"`
	Value      string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null"`
}
