package model

import "time"

// One row per issued OTP. Rows are single-use and expire 30 minutes after
// CreatedAt; expired rows are ignored rather than reaped.
type PasswordResetTokenModel struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;index" json:"email"`
	OTP       string    `gorm:"type:varchar(6);not null;index" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	Used      bool      `gorm:"not null;default:false" json:"used"`
}

func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
