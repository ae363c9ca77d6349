package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// Zipcode is the natural key; ID only exists for foreign keys and ordering stability.
type AddressModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Zipcode      int            `gorm:"not null;uniqueIndex:uq_addresses_zipcode"`
	StateID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	CityID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Neighborhood string         `gorm:"type:varchar(255);not null"`
	Complement   *string        `gorm:"type:varchar(255)"`
	Coordinates  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	State StateModel `gorm:"foreignKey:StateID"`
	City  CityModel  `gorm:"foreignKey:CityID"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
