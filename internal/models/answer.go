package models

import "time"

type Answer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CandidateID   uint      `gorm:"not null;index" json:"candidate_id"`
	Candidate     Candidate `gorm:"foreignKey:CandidateID" json:"-"`
	Question      string    `gorm:"type:text;not null" json:"question"`
	UserAnswer    string    `gorm:"size:1;not null" json:"user_answer"`
	CorrectAnswer string    `gorm:"size:1;not null" json:"correct_answer"`
	IsCorrect     bool      `gorm:"not null;default:false" json:"is_correct"`
	CreatedAt     time.Time `json:"created_at"`
}
