package employee

import (
	"time"

	"github.com/google/uuid"
)

// Genders is the closed set accepted for the gender field.
var Genders = []string{"Male", "Female", "Other"}

func ValidGender(s string) bool {
	for _, g := range Genders {
		if s == g {
			return true
		}
	}
	return false
}

type Employee struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName     string    `gorm:"type:varchar(255);not null"`
	LastName      string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"` // stored lowercase
	Gender        string    `gorm:"type:varchar(16);not null"`
	Designation   string    `gorm:"type:varchar(255);not null"`
	Salary        float64   `gorm:"not null"`
	DateOfJoining time.Time `gorm:"not null"`
	Department    string    `gorm:"type:varchar(255);not null"`
	EmployeePhoto *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
