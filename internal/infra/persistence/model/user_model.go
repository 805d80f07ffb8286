package model

import "time"

// UserModel mirrors the 'users' table. The primary key is the chat platform's user id,
// so it is never generated by the database.
type UserModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement:false"`
	FirstName   string `gorm:"type:varchar(255);not null"`
	IsSuperuser bool   `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
