package repository

import (
	"context"

	"cepcache/internal/domain/entity"
	"cepcache/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for reference data lookups.
var (
	// ErrStateNotFound is returned when no state is stored under an acronym.
	ErrStateNotFound = errors.New("state not found")
	// ErrCityNotFound is returned when no city is stored under an IBGE code.
	ErrCityNotFound = errors.New("city not found")
)

// StoredID is the surrogate key of a stored reference row.
type StoredID = uuid.UUID

// StateRepository reads the pre-seeded federative units. States are never created at runtime.
type StateRepository interface {
	// FindStateByAcronym returns the stored state and its row ID.
	// Returns ErrStateNotFound if the acronym is not seeded.
	FindStateByAcronym(ctx context.Context, acronym entity.StateAcronym) (*entity.State, StoredID, error)
}

// CityRepository reads and creates cities keyed by IBGE code.
type CityRepository interface {
	// FindCityByIBGE returns the stored city and its row ID.
	// Returns ErrCityNotFound if no city has that code.
	FindCityByIBGE(ctx context.Context, ibge int) (*entity.City, StoredID, error)

	// FindOrCreateCity returns the city stored under city.IBGE, creating it first when absent.
	// Safe under concurrent callers for the same code.
	FindOrCreateCity(ctx context.Context, city *entity.City) (*entity.City, StoredID, error)
}
