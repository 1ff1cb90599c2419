package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel mirrors the 'refresh_tokens' table. Rows are
// soft-revoked; physical deletion is an out-of-band sweep.
type RefreshTokenModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash     string    `gorm:"type:varchar(64);unique;not null"`
	DeviceType    string    `gorm:"type:varchar(10);not null"`
	DeviceInfo    string    `gorm:"type:varchar(512)"`
	IPAddress     string    `gorm:"type:varchar(45)"`
	ExpiresAt     time.Time `gorm:"not null;index"`
	LastUsedAt    time.Time `gorm:"not null"`
	Revoked       bool      `gorm:"not null;default:false"`
	RevokedAt     *time.Time
	RevokedReason string `gorm:"type:varchar(20)"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// OtpCodeModel mirrors the 'otp_codes' table.
type OtpCodeModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);not null;index"`
	CodeHash     string    `gorm:"type:varchar(64);not null"`
	ExpiresAt    time.Time `gorm:"not null"`
	AttemptCount int       `gorm:"not null;default:0"`
	Used         bool      `gorm:"not null;default:false"`
	UsedAt       *time.Time
	CreatedAt    time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OtpCodeModel) TableName() string {
	return "otp_codes"
}
