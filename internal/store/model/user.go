package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID  `gorm:"primaryKey;column:id;type:VARCHAR(255);"`
	Name      string     `gorm:"column:name;type:VARCHAR(255);not null"`
	Email     string     `gorm:"column:email;type:VARCHAR(255);uniqueIndex:users_email_key"`
	CompanyID *uuid.UUID `gorm:"type:VARCHAR(255)"`
	CreatedAt time.Time  `gorm:"not null"`
}

type UserList []User
