package domain

import "time"

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                                   // Primary key
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`             // Unique, lower-cased email
	Password  string    `gorm:"not null" json:"-"`                                      // Bcrypt hash, never serialized
	CreatedAt time.Time `json:"created_at"`                                             // Registration time
	Wallet    Wallet    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // One-to-one relationship with Wallet
}
