package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"` // stored lowercase
	Password  string    `gorm:"type:varchar(255);not null"`             // bcrypt hash
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ComparePassword checks a plaintext password against the stored hash.
func (a *Account) ComparePassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(plain)) == nil
}
