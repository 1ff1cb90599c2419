// Package model holds the GORM table mappings for the auth store.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	DisplayName  string    `gorm:"type:varchar(100)"`
	AvatarURL    string    `gorm:"type:varchar(512)"`
	Bio          string    `gorm:"type:text"`
	AuthProvider string    `gorm:"type:varchar(20);not null;default:local"`
	ProviderID   string    `gorm:"type:varchar(255)"`
	Confirmed    bool      `gorm:"not null;default:false"`
	Blocked      bool      `gorm:"not null;default:false"`
	RoleID       *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Role          *RoleModel          `gorm:"foreignKey:RoleID"`
	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name string    `gorm:"type:varchar(50);not null"`
	Code string    `gorm:"type:varchar(50);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}
