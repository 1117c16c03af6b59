package types

import "time"

// Project is a community-submitted entity eligible for ranked voting.
// Votes is a denormalized counter maintained in the same transaction as
// vote insertion; it must equal the number of Vote rows for the project.
type Project struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:128;not null"`
	Description string `gorm:"type:text"`
	Votes       int64  `gorm:"not null;default:0"`
	SubmittedBy string `gorm:"size:64;index"`
	CreatedAt   time.Time
}

// Service is a user-submitted offering awaiting admin review. Rows are
// created on submission and never mutated by the bot; Active defaults on.
type Service struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	UserID      string `gorm:"size:64;not null;index"`
	Category    string `gorm:"size:32;not null"`
	Description string `gorm:"type:text"`
	Price       string `gorm:"size:64"`
	Active      bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

// Vote records that a user voted for a project. The composite primary key
// is the whole payload: at most one row per (user, project).
type Vote struct {
	UserID    string `gorm:"primaryKey;size:64"`
	ProjectID uint64 `gorm:"primaryKey"`
}

// Wallet is a static coin/address pair shown for informational purposes.
type Wallet struct {
	Coin    string `gorm:"primaryKey;size:16"`
	Address string `gorm:"size:128;not null"`
}
