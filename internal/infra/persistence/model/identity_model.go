package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// IdentityModel mirrors the 'identities' table. IDs are UUIDv7 assigned on create.
type IdentityModel struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Email          string                      `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash   string                      `gorm:"type:varchar(255);not null"`
	FirstName      string                      `gorm:"type:varchar(100);not null"`
	LastName       string                      `gorm:"type:varchar(100);not null"`
	Phone          string                      `gorm:"type:varchar(32)"`
	DateOfBirth    datatypes.Date              `gorm:"type:date"`
	ProfilePicture string                      `gorm:"type:text"`
	Preferences    datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (IdentityModel) TableName() string {
	return "identities"
}

// BeforeCreate assigns a time-ordered ID when the caller did not.
func (m *IdentityModel) BeforeCreate(*gorm.DB) error {
	if m.ID != uuid.Nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	m.ID = id

	return nil
}
