package domain

// StartingBalance is credited to every wallet on registration without a transaction row.
const StartingBalance int64 = 1000

// Wallet Model
type Wallet struct {
	UserID  uint  `gorm:"primaryKey;autoIncrement:false" json:"user_id"` // Owning user, one wallet per user
	Balance int64 `gorm:"not null;default:0" json:"balance"`             // Wallet balance in whole units
}
