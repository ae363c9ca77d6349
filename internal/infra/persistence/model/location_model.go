package model

import (
	"time"

	"github.com/google/uuid"
)

// StateModel mirrors the 'states' table. Rows are seeded by migration and read-only at runtime.
type StateModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Acronym string    `gorm:"type:char(2);not null;uniqueIndex:uq_states_acronym"`
	Name    string    `gorm:"type:varchar(64);not null"`
}

// TableName explicitly sets the table name for GORM.
func (StateModel) TableName() string {
	return "states"
}

// CityModel mirrors the 'cities' table, keyed naturally by IBGE code.
type CityModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	IBGE      int       `gorm:"column:ibge;not null;uniqueIndex:uq_cities_ibge"`
	Name      string    `gorm:"type:varchar(255);not null"`
	DDD       *int      `gorm:"column:ddd"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}
