package models

import "time"

type Candidate struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FullName   string    `gorm:"size:255;not null" json:"full_name"`
	Email      string    `gorm:"size:255;not null" json:"email"`
	Phone      string    `gorm:"size:50;not null" json:"phone"`
	Experience int       `gorm:"not null;default:0" json:"experience"`
	Position   string    `gorm:"size:100;not null" json:"position"`
	Location   string    `gorm:"size:255;not null" json:"location"`
	TechStack  string    `gorm:"type:text;not null" json:"tech_stack"`
	CreatedAt  time.Time `json:"created_at"`
}

// Positions is the fixed set offered on the intake form.
var Positions = []string{
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"Data Scientist",
	"DevOps Engineer",
	"Mobile App Developer",
	"QA Engineer",
	"UI/UX Designer",
	"Product Manager",
}

func ValidPosition(p string) bool {
	for _, pos := range Positions {
		if pos == p {
			return true
		}
	}
	return false
}
