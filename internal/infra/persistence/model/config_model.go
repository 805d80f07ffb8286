package model

import "time"

// ConfigModel mirrors the 'configs' table holding the superuser password hash.
type ConfigModel struct {
	ID                uint   `gorm:"primaryKey"`
	SuperuserPassword string `gorm:"type:varchar(60);not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConfigModel) TableName() string {
	return "configs"
}
