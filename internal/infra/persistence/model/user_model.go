package model

import "time"

// UserModel mirrors the 'users' table. The id comes from a bigserial
// sequence, so identifiers are assigned once and never reused within the
// store lifetime, even after deletes. The password column holds the bcrypt
// hash, never the plaintext.
type UserModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
